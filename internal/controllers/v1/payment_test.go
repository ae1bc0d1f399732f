package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	v1 "github.com/schoolfunds/backend/internal/controllers/v1"
	"github.com/schoolfunds/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestPaymentsCreate() {
	student := createTestStudent(suite.T(), v1.StudentEditable{})
	contributionType := createTestContributionType(suite.T(), v1.ContributionTypeEditable{})

	payment := createTestPayment(suite.T(), v1.PaymentEditable{
		StudentID:          student.Data.ID,
		ContributionTypeID: contributionType.Data.ID,
		Amount:             decimal.NewFromFloat(250),
		ReceiptNumber:      "OR-2025-0042",
	})

	assert.True(suite.T(), payment.Data.Amount.Equal(decimal.NewFromFloat(250)))
	assert.Equal(suite.T(), "OR-2025-0042", payment.Data.ReceiptNumber)
}

func (suite *TestSuiteStandard) TestPaymentsCreateBrokenReferences() {
	_ = createTestPayment(suite.T(), v1.PaymentEditable{
		StudentID:          uuid.New(),
		ContributionTypeID: createTestContributionType(suite.T(), v1.ContributionTypeEditable{}).Data.ID,
	}, http.StatusNotFound)

	_ = createTestPayment(suite.T(), v1.PaymentEditable{
		StudentID:          createTestStudent(suite.T(), v1.StudentEditable{}).Data.ID,
		ContributionTypeID: uuid.New(),
	}, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestPaymentsGetFilter() {
	student := createTestStudent(suite.T(), v1.StudentEditable{})
	contributionType := createTestContributionType(suite.T(), v1.ContributionTypeEditable{})

	_ = createTestPayment(suite.T(), v1.PaymentEditable{
		StudentID:          student.Data.ID,
		ContributionTypeID: contributionType.Data.ID,
		Note:               "First installment",
	})

	_ = createTestPayment(suite.T(), v1.PaymentEditable{
		StudentID:          student.Data.ID,
		ContributionTypeID: contributionType.Data.ID,
		Note:               "Second installment",
	})

	_ = createTestPayment(suite.T(), v1.PaymentEditable{})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Student", fmt.Sprintf("student=%s", student.Data.ID), 2},
		{"Contribution type", fmt.Sprintf("contributionType=%s", contributionType.Data.ID), 2},
		{"Student not existing", fmt.Sprintf("student=%s", uuid.New()), 0},
		{"Fuzzy note", "note=installment", 2},
		{"All", "", 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/payments?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.PaymentListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Len(t, response.Data, tt.len)
		})
	}
}

// Payments are sorted by their date, newest first.
func (suite *TestSuiteStandard) TestPaymentsGetSorted() {
	older := createTestPayment(suite.T(), v1.PaymentEditable{
		Date: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	})
	newer := createTestPayment(suite.T(), v1.PaymentEditable{
		Date: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/payments", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PaymentListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), newer.Data.ID, response.Data[0].ID)
	assert.Equal(suite.T(), older.Data.ID, response.Data[1].ID)
}

func (suite *TestSuiteStandard) TestPaymentsUpdate() {
	payment := createTestPayment(suite.T(), v1.PaymentEditable{})

	r := test.Request(suite.T(), http.MethodPatch, payment.Data.Links.Self, map[string]any{
		"amount": 300,
		"note":   "Corrected amount",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.PaymentResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.True(suite.T(), updated.Data.Amount.Equal(decimal.NewFromFloat(300)))
}

func (suite *TestSuiteStandard) TestPaymentsDelete() {
	payment := createTestPayment(suite.T(), v1.PaymentEditable{})

	r := test.Request(suite.T(), http.MethodDelete, payment.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, payment.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
