package models

import (
	"encoding/json"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// UserRole is the role of a user account.
type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleStaff UserRole = "STAFF"
)

// User is an account for the administrative console. Authentication itself
// is handled by a separate service, this backend only manages the accounts.
type User struct {
	DefaultModel
	Name     string
	Email    string   `gorm:"uniqueIndex"`
	Password string   `json:"-"` // bcrypt hash, never serialized
	Role     UserRole `gorm:"default:STAFF"`
	Archived bool
}

// SetPassword hashes the plain text password and stores the hash.
func (u *User) SetPassword(plain string) error {
	if plain == "" {
		return ErrPasswordEmpty
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.Password = string(hash)
	return nil
}

// CheckPassword reports whether the plain text password matches the
// stored hash.
func (u User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.TrimSpace(strings.ToLower(u.Email))

	if u.Role == "" {
		u.Role = RoleStaff
	}

	if !slices.Contains([]UserRole{RoleAdmin, RoleStaff}, u.Role) {
		return ErrUserRole
	}

	return nil
}

// Returns all users on this instance for export. The password hash is
// excluded by the json tag on the field.
func (User) Export() (json.RawMessage, error) {
	var users []User
	err := DB.Unscoped().Where(&User{}).Find(&users).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&users)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
