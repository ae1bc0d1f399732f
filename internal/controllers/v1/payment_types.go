package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/schoolfunds/backend/internal/httputil"
	"github.com/schoolfunds/backend/internal/models"
	"github.com/shopspring/decimal"
)

type PaymentEditable struct {
	StudentID          uuid.UUID       `json:"studentId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                                                    // ID of the student the payment is recorded for
	ContributionTypeID uuid.UUID       `json:"contributionTypeId" example:"d23y1bc9-bdef-4878-b4c1-108e0178bd8a"`                                           // ID of the contribution type the payment goes to
	Amount             decimal.Decimal `json:"amount" example:"250" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"`           // Amount paid
	Date               time.Time       `json:"date" example:"2025-06-14T00:00:00Z"`                                                                         // Date the payment was received. Defaults to the creation time.
	ReceiptNumber      string          `json:"receiptNumber" example:"OR-2025-0042" default:""`                                                             // Receipt number issued for the payment
	Note               string          `json:"note" example:"Paid in two installments" default:""`                                                          // A longer description for the payment
}

// model returns the database resource for the editable fields
func (editable PaymentEditable) model() models.Payment {
	return models.Payment{
		StudentID:          editable.StudentID,
		ContributionTypeID: editable.ContributionTypeID,
		Amount:             editable.Amount,
		Date:               editable.Date,
		ReceiptNumber:      editable.ReceiptNumber,
		Note:               editable.Note,
	}
}

type PaymentLinks struct {
	Self             string `json:"self" example:"https://example.com/api/v1/payments/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                              // The payment itself
	Student          string `json:"student" example:"https://example.com/api/v1/students/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                           // The student the payment is recorded for
	ContributionType string `json:"contributionType" example:"https://example.com/api/v1/contribution-types/d23y1bc9-bdef-4878-b4c1-108e0178bd8a"`       // The contribution type the payment goes to
}

// Payment is the API v1 representation of a Payment.
type Payment struct {
	models.DefaultModel
	PaymentEditable
	Links PaymentLinks `json:"links"`
}

func newPayment(c *gin.Context, model models.Payment) Payment {
	url := c.GetString(string(models.DBContextURL))

	return Payment{
		DefaultModel: model.DefaultModel,
		PaymentEditable: PaymentEditable{
			StudentID:          model.StudentID,
			ContributionTypeID: model.ContributionTypeID,
			Amount:             model.Amount,
			Date:               model.Date,
			ReceiptNumber:      model.ReceiptNumber,
			Note:               model.Note,
		},
		Links: PaymentLinks{
			Self:             fmt.Sprintf("%s/v1/payments/%s", url, model.ID),
			Student:          fmt.Sprintf("%s/v1/students/%s", url, model.StudentID),
			ContributionType: fmt.Sprintf("%s/v1/contribution-types/%s", url, model.ContributionTypeID),
		},
	}
}

type PaymentListResponse struct {
	Data       []Payment   `json:"data"`                                                          // List of payments
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type PaymentCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []PaymentResponse `json:"data"`                                                          // List of created payments
}

func (p *PaymentCreateResponse) appendError(err error, currentStatus int) int {
	e := err.Error()
	p.Data = append(p.Data, PaymentResponse{Error: &e})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type PaymentResponse struct {
	Data  *Payment `json:"data"`                                                          // Data for the payment
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type PaymentQueryFilter struct {
	StudentID          string `form:"student"`                    // By student ID
	ContributionTypeID string `form:"contributionType"`           // By contribution type ID
	ReceiptNumber      string `form:"receiptNumber"`              // By receipt number
	Note               string `form:"note" filterField:"false"`   // Fuzzy filter for the note
	Offset             uint   `form:"offset" filterField:"false"` // The offset of the first Payment returned. Defaults to 0.
	Limit              int    `form:"limit" filterField:"false"`  // Maximum number of Payments to return. Defaults to 50.
}

func (f PaymentQueryFilter) model() (models.Payment, error) {
	studentID, err := httputil.UUIDFromString(f.StudentID)
	if err != nil {
		return models.Payment{}, err
	}

	contributionTypeID, err := httputil.UUIDFromString(f.ContributionTypeID)
	if err != nil {
		return models.Payment{}, err
	}

	return models.Payment{
		StudentID:          studentID,
		ContributionTypeID: contributionTypeID,
		ReceiptNumber:      f.ReceiptNumber,
	}, nil
}
