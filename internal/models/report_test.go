package models_test

import (
	"time"

	"github.com/schoolfunds/backend/internal/models"
	"github.com/schoolfunds/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestBuildReportEmpty() {
	report, err := models.BuildReport(models.DB)
	suite.Require().Nil(err)

	// Only the cash pool exists on a fresh instance
	suite.Require().Len(report.Sources, 1)
	suite.Assert().True(report.Sources[0].IsCashPool())

	suite.Assert().Empty(report.ExpensesByCategory)
	suite.Assert().Empty(report.ExpensesByMonth)
	suite.Assert().Empty(report.InKind)
	suite.Assert().Empty(report.Enrollment)
}

func (suite *TestSuiteStandard) TestBuildReportExpenseTotals() {
	_ = suite.createTestDonation(models.Donation{Amount: decimal.NewFromFloat(1000)})

	for _, draft := range []models.ExpenseDraft{
		{Category: "Supplies", Amount: decimal.NewFromFloat(100), Date: time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC), Source: models.SourceCashPool},
		{Category: "Supplies", Amount: decimal.NewFromFloat(50), Date: time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC), Source: models.SourceCashPool},
		{Category: "Repairs", Amount: decimal.NewFromFloat(200), Date: time.Date(2025, 7, 21, 0, 0, 0, 0, time.UTC), Source: models.SourceCashPool},
	} {
		_, err := models.CreateFundedExpense(models.DB, draft)
		suite.Require().Nil(err)
	}

	report, err := models.BuildReport(models.DB)
	suite.Require().Nil(err)

	suite.Require().Len(report.ExpensesByCategory, 2)
	suite.Assert().Equal("Repairs", report.ExpensesByCategory[0].Category)
	suite.Assert().True(report.ExpensesByCategory[0].Total.Equal(decimal.NewFromFloat(200)))
	suite.Assert().Equal("Supplies", report.ExpensesByCategory[1].Category)
	suite.Assert().True(report.ExpensesByCategory[1].Total.Equal(decimal.NewFromFloat(150)))

	suite.Require().Len(report.ExpensesByMonth, 2)
	suite.Assert().Equal(types.NewMonth(2025, time.July), report.ExpensesByMonth[0].Month)
	suite.Assert().True(report.ExpensesByMonth[0].Total.Equal(decimal.NewFromFloat(300)))
	suite.Assert().Equal(types.NewMonth(2025, time.August), report.ExpensesByMonth[1].Month)
	suite.Assert().True(report.ExpensesByMonth[1].Total.Equal(decimal.NewFromFloat(50)))
}

func (suite *TestSuiteStandard) TestBuildReportInKindStock() {
	donation := suite.createTestDonation(models.Donation{
		Type:            models.DonationInKind,
		ItemName:        "Ceiling fans",
		DonatedQuantity: 8,
		UsedQuantity:    3,
		DamagedQuantity: 1,
	})

	report, err := models.BuildReport(models.DB)
	suite.Require().Nil(err)

	suite.Require().Len(report.InKind, 1)
	suite.Assert().Equal(donation.ID, report.InKind[0].DonationID)
	suite.Assert().Equal("Ceiling fans", report.InKind[0].ItemName)
	suite.Assert().Equal(uint(4), report.InKind[0].RemainingUsable)
}

func (suite *TestSuiteStandard) TestBuildReportEnrollment() {
	gradeLevel := suite.createTestGradeLevel(models.GradeLevel{Name: "Grade 8"})
	section := suite.createTestSection(models.Section{GradeLevelID: gradeLevel.ID})

	_ = suite.createTestStudent(models.Student{SectionID: section.ID, SchoolYearID: section.SchoolYearID})
	_ = suite.createTestStudent(models.Student{SectionID: section.ID, SchoolYearID: section.SchoolYearID})
	_ = suite.createTestStudent(models.Student{
		SectionID:    section.ID,
		SchoolYearID: section.SchoolYearID,
		Status:       models.StudentTransferred,
	})

	report, err := models.BuildReport(models.DB)
	suite.Require().Nil(err)

	suite.Require().Len(report.Enrollment, 1)
	suite.Assert().Equal("Grade 8", report.Enrollment[0].GradeLevel)
	suite.Assert().Equal(int64(2), report.Enrollment[0].Students, "only enrolled students are counted")
}
