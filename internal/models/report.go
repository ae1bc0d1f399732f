package models

import (
	"sort"

	"github.com/google/uuid"
	"github.com/schoolfunds/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryTotal is the sum of all expenses in one category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// MonthTotal is the sum of all expenses in one month.
type MonthTotal struct {
	Month types.Month     `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// InKindStock summarizes the stock of one in-kind donation.
type InKindStock struct {
	DonationID       uuid.UUID `json:"donationId"`
	ItemName         string    `json:"itemName"`
	DonorName        string    `json:"donorName"`
	DonatedQuantity  uint      `json:"donatedQuantity"`
	UsedQuantity     uint      `json:"usedQuantity"`
	DamagedQuantity  uint      `json:"damagedQuantity"`
	UnusableQuantity uint      `json:"unusableQuantity"`
	RemainingUsable  uint      `json:"remainingUsable"`
}

// EnrollmentCount is the number of enrolled students in one grade level.
type EnrollmentCount struct {
	GradeLevelID uuid.UUID `json:"gradeLevelId"`
	GradeLevel   string    `json:"gradeLevel"`
	Students     int64     `json:"students"`
}

// Report aggregates the stored rows into the summary figures the reporting
// views display.
type Report struct {
	Sources            []FundingSource   `json:"sources"`            // Funding catalog including the cash pool
	ExpensesByCategory []CategoryTotal   `json:"expensesByCategory"` // Expense totals grouped by category
	ExpensesByMonth    []MonthTotal      `json:"expensesByMonth"`    // Expense totals grouped by month
	InKind             []InKindStock     `json:"inKind"`             // Stock summary of all in-kind donations
	Enrollment         []EnrollmentCount `json:"enrollment"`         // Enrolled students per grade level
}

// BuildReport computes the full report from the current database state.
func BuildReport(db *gorm.DB) (Report, error) {
	report := Report{}

	sources, err := FundingSources(db)
	if err != nil {
		return Report{}, err
	}
	report.Sources = sources

	report.ExpensesByCategory = make([]CategoryTotal, 0)
	err = db.
		Table("expenses").
		Where("deleted_at IS NULL").
		Select("category, SUM(amount) AS total").
		Group("category").
		Order("category ASC").
		Scan(&report.ExpensesByCategory).
		Error
	if err != nil {
		return Report{}, err
	}

	report.ExpensesByMonth, err = expensesByMonth(db)
	if err != nil {
		return Report{}, err
	}

	report.InKind, err = inKindStock(db)
	if err != nil {
		return Report{}, err
	}

	report.Enrollment = make([]EnrollmentCount, 0)
	err = db.
		Table("students").
		Joins("JOIN sections ON sections.id = students.section_id AND sections.deleted_at IS NULL").
		Joins("JOIN grade_levels ON grade_levels.id = sections.grade_level_id AND grade_levels.deleted_at IS NULL").
		Where("students.deleted_at IS NULL").
		Where("students.status = ?", StudentEnrolled).
		Select("grade_levels.id AS grade_level_id, grade_levels.name AS grade_level, COUNT(students.id) AS students").
		Group("grade_levels.id").
		Order("grade_levels.name ASC").
		Scan(&report.Enrollment).
		Error
	if err != nil {
		return Report{}, err
	}

	return report, nil
}

// expensesByMonth groups all expenses by the month of their date.
func expensesByMonth(db *gorm.DB) ([]MonthTotal, error) {
	var expenses []Expense
	err := db.Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[types.Month]decimal.Decimal)
	for _, expense := range expenses {
		month := types.MonthOf(expense.Date)
		totals[month] = totals[month].Add(expense.Amount)
	}

	result := make([]MonthTotal, 0, len(totals))
	for month, total := range totals {
		result = append(result, MonthTotal{Month: month, Total: total})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Month.Before(result[j].Month)
	})

	return result, nil
}

func inKindStock(db *gorm.DB) ([]InKindStock, error) {
	var donations []Donation
	err := db.
		Where(&Donation{Type: DonationInKind}).
		Order("date ASC").
		Find(&donations).
		Error
	if err != nil {
		return nil, err
	}

	stock := make([]InKindStock, 0, len(donations))
	for _, donation := range donations {
		stock = append(stock, InKindStock{
			DonationID:       donation.ID,
			ItemName:         donation.ItemName,
			DonorName:        donation.DonorName,
			DonatedQuantity:  donation.DonatedQuantity,
			UsedQuantity:     donation.UsedQuantity,
			DamagedQuantity:  donation.DamagedQuantity,
			UnusableQuantity: donation.UnusableQuantity,
			RemainingUsable:  donation.RemainingUsable(),
		})
	}

	return stock, nil
}
