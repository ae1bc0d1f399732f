package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Uniqueness errors, set by the create/update callbacks in database.go
var (
	ErrSchoolYearNameNotUnique       = errors.New("the school year name must be unique")
	ErrGradeLevelNameNotUnique       = errors.New("the grade level name must be unique")
	ErrSectionNameNotUnique          = errors.New("the section name must be unique for the grade level and school year")
	ErrStudentNumberNotUnique        = errors.New("the student number is already in use")
	ErrContributionTypeNameNotUnique = errors.New("the contribution type name must be unique for the school year")
	ErrExpenseCategoryNameNotUnique  = errors.New("the expense category name is already in use")
	ErrUserEmailNotUnique            = errors.New("a user with this email already exists")
)

// Validation errors raised by model hooks
var (
	ErrAmountNotPositive   = errors.New("the amount must be positive")
	ErrQuantityNotPositive = errors.New("the quantity used must be positive")
	ErrDonationType        = errors.New("the donation type must be CASH or IN_KIND")
	ErrStudentStatus       = errors.New("the student status is invalid")
	ErrUserRole            = errors.New("the user role is invalid")
	ErrPasswordEmpty       = errors.New("the password must not be empty")
)

// Funding errors raised when creating funded expenses
var (
	ErrCategoryRequired       = errors.New("the expense category must be set or derivable from a category rule")
	ErrFundingSourceInvalid   = errors.New("the funding source selection is invalid")
	ErrInsufficientFunds      = errors.New("the funding source does not have enough available funds")
	ErrInsufficientTotalFunds = errors.New("the requested amount exceeds the available funds across all sources")
	ErrDonationNotInKind      = errors.New("only in-kind donations can be used as a funding source for quantity expenses")
	ErrQuantityExceedsStock   = errors.New("the quantity used exceeds the remaining usable stock")
)
