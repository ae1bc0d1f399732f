package v1_test

import (
	"net/http"

	v1 "github.com/schoolfunds/backend/internal/controllers/v1"
	"github.com/schoolfunds/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestFundingSourcesGet() {
	contributionType := createTestContributionType(suite.T(), v1.ContributionTypeEditable{Name: "PTA fee"})
	fundContributionType(suite.T(), contributionType, 350)
	_ = createTestDonation(suite.T(), v1.DonationEditable{Amount: decimal.NewFromFloat(1000)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/funding-sources", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.FundingSourceListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("PTA fee", response.Data[0].Name)
	suite.Assert().True(response.Data[0].Available.Equal(decimal.NewFromFloat(350)))
	suite.Assert().True(response.Data[1].IsCashPool(), "the cash pool is the last entry")
	suite.Assert().True(response.Data[1].Available.Equal(decimal.NewFromFloat(1000)))
}

func (suite *TestSuiteStandard) TestFundingSourcesOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/funding-sources", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestFundingSourcesDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/funding-sources", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
