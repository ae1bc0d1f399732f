package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/schoolfunds/backend/internal/models"
	"github.com/shopspring/decimal"
)

type DonationEditable struct {
	DonorName string              `json:"donorName" example:"Barangay Council" default:""`                                                // Name of the donor
	Date      time.Time           `json:"date" example:"2025-07-01T00:00:00Z"`                                                            // Date the donation was received. Defaults to the creation time.
	Type      models.DonationType `json:"type" example:"CASH" default:"CASH"`                                                             // Type of the donation, CASH or IN_KIND
	Note      string              `json:"note" example:"For the reading corner" default:""`                                               // A longer description for the donation
	Amount    decimal.Decimal     `json:"amount" example:"1500" default:"0" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Amount donated. Only set for cash donations.

	ItemName         string `json:"itemName" example:"Reams of bond paper" default:""` // Name of the donated item. Only set for in-kind donations.
	DonatedQuantity  uint   `json:"donatedQuantity" example:"20" default:"0"`          // Units donated. Only set for in-kind donations.
	UsedQuantity     uint   `json:"usedQuantity" example:"5" default:"0"`              // Units already consumed
	DamagedQuantity  uint   `json:"damagedQuantity" example:"1" default:"0"`           // Units damaged in storage
	UnusableQuantity uint   `json:"unusableQuantity" example:"0" default:"0"`          // Units unusable for other reasons
	UsableQuantity   uint   `json:"usableQuantity" example:"0" default:"0"`            // Manual override for the usable stock. 0 means no override.
}

// model returns the database resource for the editable fields
func (editable DonationEditable) model() models.Donation {
	return models.Donation{
		DonorName:        editable.DonorName,
		Date:             editable.Date,
		Type:             editable.Type,
		Note:             editable.Note,
		Amount:           editable.Amount,
		ItemName:         editable.ItemName,
		DonatedQuantity:  editable.DonatedQuantity,
		UsedQuantity:     editable.UsedQuantity,
		DamagedQuantity:  editable.DamagedQuantity,
		UnusableQuantity: editable.UnusableQuantity,
		UsableQuantity:   editable.UsableQuantity,
	}
}

type DonationLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/donations/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                // The donation itself
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses?donation=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Expenses consuming this donation
}

// Donation is the API v1 representation of a Donation.
type Donation struct {
	models.DefaultModel
	DonationEditable
	RemainingUsable uint          `json:"remainingUsable" example:"14"` // Usable units remaining in stock
	Links           DonationLinks `json:"links"`
}

func newDonation(c *gin.Context, model models.Donation) Donation {
	url := c.GetString(string(models.DBContextURL))

	return Donation{
		DefaultModel: model.DefaultModel,
		DonationEditable: DonationEditable{
			DonorName:        model.DonorName,
			Date:             model.Date,
			Type:             model.Type,
			Note:             model.Note,
			Amount:           model.Amount,
			ItemName:         model.ItemName,
			DonatedQuantity:  model.DonatedQuantity,
			UsedQuantity:     model.UsedQuantity,
			DamagedQuantity:  model.DamagedQuantity,
			UnusableQuantity: model.UnusableQuantity,
			UsableQuantity:   model.UsableQuantity,
		},
		RemainingUsable: model.RemainingUsable(),
		Links: DonationLinks{
			Self:     fmt.Sprintf("%s/v1/donations/%s", url, model.ID),
			Expenses: fmt.Sprintf("%s/v1/expenses?donation=%s", url, model.ID),
		},
	}
}

type DonationListResponse struct {
	Data       []Donation  `json:"data"`                                                          // List of donations
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type DonationCreateResponse struct {
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []DonationResponse `json:"data"`                                                          // List of created donations
}

func (d *DonationCreateResponse) appendError(err error, currentStatus int) int {
	e := err.Error()
	d.Data = append(d.Data, DonationResponse{Error: &e})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type DonationResponse struct {
	Data  *Donation `json:"data"`                                                          // Data for the donation
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type DonationQueryFilter struct {
	DonorName string `form:"donorName" filterField:"false"` // Fuzzy filter for the donor name
	ItemName  string `form:"itemName" filterField:"false"`  // Fuzzy filter for the item name
	Type      string `form:"type"`                          // By donation type, CASH or IN_KIND
	Note      string `form:"note" filterField:"false"`      // Fuzzy filter for the note
	Offset    uint   `form:"offset" filterField:"false"`    // The offset of the first Donation returned. Defaults to 0.
	Limit     int    `form:"limit" filterField:"false"`     // Maximum number of Donations to return. Defaults to 50.
}

func (f DonationQueryFilter) model() (models.Donation, error) {
	return models.Donation{
		Type: models.DonationType(f.Type),
	}, nil
}
