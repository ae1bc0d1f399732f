package models_test

import (
	"github.com/schoolfunds/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestContributionBalance() {
	contributionType := suite.createTestContributionType(models.ContributionType{Name: "PTA fee"})
	student := suite.createTestStudent(models.Student{})

	_ = suite.createTestPayment(models.Payment{
		StudentID:          student.ID,
		ContributionTypeID: contributionType.ID,
		Amount:             decimal.NewFromFloat(250),
	})
	_ = suite.createTestPayment(models.Payment{
		StudentID:          student.ID,
		ContributionTypeID: contributionType.ID,
		Amount:             decimal.NewFromFloat(100),
	})

	ctID := contributionType.ID
	err := models.DB.Create(&models.Expense{
		Category:           "Supplies",
		Amount:             decimal.NewFromFloat(120),
		ContributionTypeID: &ctID,
	}).Error
	suite.Require().Nil(err)

	source, err := models.ContributionBalance(models.DB, contributionType)
	suite.Require().Nil(err)

	suite.Assert().True(source.TotalPayments.Equal(decimal.NewFromFloat(350)), source.TotalPayments.String())
	suite.Assert().True(source.TotalExpenses.Equal(decimal.NewFromFloat(120)), source.TotalExpenses.String())
	suite.Assert().True(source.Available.Equal(decimal.NewFromFloat(230)), source.Available.String())
}

// A pool that is overdrawn reports its real totals, but the spendable
// balance is floored at zero.
func (suite *TestSuiteStandard) TestContributionBalanceFloored() {
	contributionType := suite.createTestContributionType(models.ContributionType{})
	student := suite.createTestStudent(models.Student{})

	_ = suite.createTestPayment(models.Payment{
		StudentID:          student.ID,
		ContributionTypeID: contributionType.ID,
		Amount:             decimal.NewFromFloat(50),
	})

	ctID := contributionType.ID
	err := models.DB.Create(&models.Expense{
		Category:           "Supplies",
		Amount:             decimal.NewFromFloat(80),
		ContributionTypeID: &ctID,
	}).Error
	suite.Require().Nil(err)

	source, err := models.ContributionBalance(models.DB, contributionType)
	suite.Require().Nil(err)

	suite.Assert().True(source.TotalExpenses.Equal(decimal.NewFromFloat(80)), source.TotalExpenses.String())
	suite.Assert().True(source.Available.IsZero(), source.Available.String())
}

func (suite *TestSuiteStandard) TestCashPoolBalance() {
	_ = suite.createTestDonation(models.Donation{Amount: decimal.NewFromFloat(1000)})
	_ = suite.createTestDonation(models.Donation{
		Type:            models.DonationInKind,
		ItemName:        "Chairs",
		DonatedQuantity: 10,
	})

	err := models.DB.Create(&models.Expense{
		Category: "Repairs",
		Amount:   decimal.NewFromFloat(300),
	}).Error
	suite.Require().Nil(err)

	pool, err := models.CashPoolBalance(models.DB)
	suite.Require().Nil(err)

	suite.Assert().True(pool.IsCashPool())
	suite.Assert().True(pool.TotalPayments.Equal(decimal.NewFromFloat(1000)), pool.TotalPayments.String())
	suite.Assert().True(pool.TotalExpenses.Equal(decimal.NewFromFloat(300)), pool.TotalExpenses.String())
	suite.Assert().True(pool.Available.Equal(decimal.NewFromFloat(700)), pool.Available.String())
}

func (suite *TestSuiteStandard) TestFundingSourcesCatalog() {
	_ = suite.createTestContributionType(models.ContributionType{Name: "Zebra fund"})
	_ = suite.createTestContributionType(models.ContributionType{Name: "Athletics fee"})
	_ = suite.createTestContributionType(models.ContributionType{Name: "Old fee", Archived: true})

	sources, err := models.FundingSources(models.DB)
	suite.Require().Nil(err)
	suite.Require().Len(sources, 3)

	suite.Assert().Equal("Athletics fee", sources[0].Name)
	suite.Assert().Equal("Zebra fund", sources[1].Name)
	suite.Assert().True(sources[2].IsCashPool(), "the cash pool has to be the last catalog entry")
}
