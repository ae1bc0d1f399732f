package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/schoolfunds/backend/internal/controllers/v1"
	"github.com/schoolfunds/backend/internal/models"
	"github.com/schoolfunds/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestDonationsCreateCash() {
	donation := createTestDonation(suite.T(), v1.DonationEditable{
		DonorName: "Barangay Council",
		Amount:    decimal.NewFromFloat(1500),
	})

	assert.Equal(suite.T(), models.DonationCash, donation.Data.Type, "the type defaults to CASH")
	assert.True(suite.T(), donation.Data.Amount.Equal(decimal.NewFromFloat(1500)))
}

func (suite *TestSuiteStandard) TestDonationsCreateInKind() {
	donation := createTestDonation(suite.T(), v1.DonationEditable{
		DonorName:       "Alumni Association",
		Type:            models.DonationInKind,
		ItemName:        "Reams of bond paper",
		DonatedQuantity: 20,
		DamagedQuantity: 2,
	})

	assert.Equal(suite.T(), uint(18), donation.Data.RemainingUsable)
}

func (suite *TestSuiteStandard) TestDonationsCreateCashWithoutAmount() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/donations", []v1.DonationEditable{
		{DonorName: "Anonymous", Type: models.DonationCash},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDonationsCreateInvalidType() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/donations", []v1.DonationEditable{
		{DonorName: "Anonymous", Type: "SECURITIES"},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDonationsGetFilter() {
	_ = createTestDonation(suite.T(), v1.DonationEditable{
		DonorName: "Barangay Council",
		Note:      "For the reading corner",
	})

	_ = createTestDonation(suite.T(), v1.DonationEditable{
		DonorName:       "Alumni Association",
		Type:            models.DonationInKind,
		ItemName:        "Monobloc chairs",
		DonatedQuantity: 30,
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Fuzzy donor name", "donorName=council", 1},
		{"Fuzzy item name", "itemName=chairs", 1},
		{"Fuzzy note", "note=reading", 1},
		{"All", "", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/donations?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.DonationListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Len(t, response.Data, tt.len)
		})
	}
}

// Updating stock quantities changes the remaining usable stock.
func (suite *TestSuiteStandard) TestDonationsUpdateQuantities() {
	donation := createTestDonation(suite.T(), v1.DonationEditable{
		Type:            models.DonationInKind,
		ItemName:        "Whiteboard markers",
		DonatedQuantity: 50,
	})

	r := test.Request(suite.T(), http.MethodPatch, donation.Data.Links.Self, map[string]any{
		"damagedQuantity": 5,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.DonationResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), uint(45), updated.Data.RemainingUsable)
}

func (suite *TestSuiteStandard) TestDonationsDelete() {
	donation := createTestDonation(suite.T(), v1.DonationEditable{})

	r := test.Request(suite.T(), http.MethodDelete, donation.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, donation.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
