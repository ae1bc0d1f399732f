package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/schoolfunds/backend/internal/models"
)

type UserEditable struct {
	Name     string          `json:"name" example:"Ana Reyes" default:""`          // Name of the user
	Email    string          `json:"email" example:"ana@example.com" default:""`   // Email address used to log in, unique
	Password string          `json:"password" example:"correct horse battery staple" default:""` // Plain text password, stored as a hash. Never returned.
	Role     models.UserRole `json:"role" example:"STAFF" default:"STAFF"`         // Role of the user, ADMIN or STAFF
	Archived bool            `json:"archived" example:"false" default:"false"`     // Is the user archived?
}

// model returns the database resource for the editable fields.
// The password hash is set separately, never from the plain text value.
func (editable UserEditable) model() models.User {
	return models.User{
		Name:     editable.Name,
		Email:    editable.Email,
		Role:     editable.Role,
		Archived: editable.Archived,
	}
}

type UserLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/users/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // The user itself
}

// User is the API v1 representation of a User. The password hash is
// never serialized.
type User struct {
	models.DefaultModel
	Name     string          `json:"name" example:"Ana Reyes"`        // Name of the user
	Email    string          `json:"email" example:"ana@example.com"` // Email address used to log in
	Role     models.UserRole `json:"role" example:"STAFF"`            // Role of the user
	Archived bool            `json:"archived" example:"false"`        // Is the user archived?
	Links    UserLinks       `json:"links"`
}

func newUser(c *gin.Context, model models.User) User {
	url := c.GetString(string(models.DBContextURL))

	return User{
		DefaultModel: model.DefaultModel,
		Name:         model.Name,
		Email:        model.Email,
		Role:         model.Role,
		Archived:     model.Archived,
		Links: UserLinks{
			Self: fmt.Sprintf("%s/v1/users/%s", url, model.ID),
		},
	}
}

type UserListResponse struct {
	Data       []User      `json:"data"`                                                          // List of users
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type UserCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []UserResponse `json:"data"`                                                          // List of created users
}

func (u *UserCreateResponse) appendError(err error, currentStatus int) int {
	e := err.Error()
	u.Data = append(u.Data, UserResponse{Error: &e})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type UserResponse struct {
	Data  *User   `json:"data"`                                                          // Data for the user
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type UserLoginRequest struct {
	Email    string `json:"email" example:"ana@example.com"`                            // Email address of the user
	Password string `json:"password" example:"correct horse battery staple"`            // Plain text password
}

type UserQueryFilter struct {
	Name     string `form:"name" filterField:"false"`   // Fuzzy filter for the user name
	Email    string `form:"email" filterField:"false"`  // Fuzzy filter for the email
	Role     string `form:"role"`                       // By role, ADMIN or STAFF
	Archived bool   `form:"archived"`                   // Is the user archived?
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first User returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of Users to return. Defaults to 50.
}

func (f UserQueryFilter) model() (models.User, error) {
	return models.User{
		Role:     models.UserRole(f.Role),
		Archived: f.Archived,
	}, nil
}
