package v1_test

import (
	"net/http"

	v1 "github.com/schoolfunds/backend/internal/controllers/v1"
	"github.com/schoolfunds/backend/internal/models"
	"github.com/schoolfunds/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestReportsGet() {
	_ = createTestDonation(suite.T(), v1.DonationEditable{Amount: decimal.NewFromFloat(1000)})
	_ = createTestDonation(suite.T(), v1.DonationEditable{
		Type:            models.DonationInKind,
		ItemName:        "Ceiling fans",
		DonatedQuantity: 8,
	})

	_ = createTestExpense(suite.T(), v1.ExpenseCreate{
		Category: "Repairs",
		Amount:   decimal.NewFromFloat(300),
		Source:   models.SourceCashPool,
	})

	_ = createTestStudent(suite.T(), v1.StudentEditable{})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ReportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)

	suite.Require().Len(response.Data.ExpensesByCategory, 1)
	suite.Assert().Equal("Repairs", response.Data.ExpensesByCategory[0].Category)
	suite.Assert().True(response.Data.ExpensesByCategory[0].Total.Equal(decimal.NewFromFloat(300)))

	suite.Require().Len(response.Data.InKind, 1)
	suite.Assert().Equal("Ceiling fans", response.Data.InKind[0].ItemName)

	suite.Require().Len(response.Data.Enrollment, 1)
	suite.Assert().Equal(int64(1), response.Data.Enrollment[0].Students)

	// Cash pool balance reflects the expense
	pool := response.Data.Sources[len(response.Data.Sources)-1]
	suite.Assert().True(pool.IsCashPool())
	suite.Assert().True(pool.Available.Equal(decimal.NewFromFloat(700)), pool.Available.String())
}

func (suite *TestSuiteStandard) TestReportsOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/reports", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestReportsDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
