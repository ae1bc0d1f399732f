package models_test

import (
	"github.com/schoolfunds/backend/internal/models"
)

func (suite *TestSuiteStandard) TestUserPassword() {
	user := models.User{Name: "Admin", Email: "admin@example.com"}
	suite.Require().Nil(user.SetPassword("correct horse battery staple"))

	suite.Assert().NotEqual("correct horse battery staple", user.Password, "the plain text password must never be stored")
	suite.Assert().True(user.CheckPassword("correct horse battery staple"))
	suite.Assert().False(user.CheckPassword("incorrect"))
}

func (suite *TestSuiteStandard) TestUserPasswordEmpty() {
	user := models.User{}
	suite.Assert().ErrorIs(user.SetPassword(""), models.ErrPasswordEmpty)
}

func (suite *TestSuiteStandard) TestUserEmailLowercased() {
	user := models.User{Name: "Admin", Email: "Admin@Example.COM"}
	suite.Require().Nil(user.SetPassword("secret"))
	suite.Require().Nil(models.DB.Create(&user).Error)

	suite.Assert().Equal("admin@example.com", user.Email)
}

func (suite *TestSuiteStandard) TestUserRoleInvalid() {
	user := models.User{Name: "Admin", Email: "role@example.com", Role: "SUPERUSER"}
	suite.Require().Nil(user.SetPassword("secret"))

	err := models.DB.Create(&user).Error
	suite.Assert().ErrorIs(err, models.ErrUserRole)
}

func (suite *TestSuiteStandard) TestUserRoleDefaultsToStaff() {
	user := models.User{Name: "Clerk", Email: "clerk@example.com"}
	suite.Require().Nil(user.SetPassword("secret"))
	suite.Require().Nil(models.DB.Create(&user).Error)

	suite.Assert().Equal(models.RoleStaff, user.Role)
}
