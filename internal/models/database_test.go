package models_test

import (
	"github.com/schoolfunds/backend/internal/models"
	"github.com/schoolfunds/backend/test"
)

// Connecting to the same database again must not fail, migration is
// idempotent.
func (suite *TestSuiteStandard) TestConnectTwice() {
	dsn := test.TmpFile(suite.T())

	suite.Require().Nil(models.Connect(dsn))

	guardian := suite.createTestGuardian(models.Guardian{Name: "Jun Reyes"})
	suite.CloseDB()

	suite.Require().Nil(models.Connect(dsn))

	var reloaded models.Guardian
	suite.Require().Nil(models.DB.First(&reloaded, guardian.ID).Error)
	suite.Assert().Equal("Jun Reyes", reloaded.Name)
}

func (suite *TestSuiteStandard) TestConnectInvalidPath() {
	suite.Assert().NotNil(models.Connect("/this/path/does/not/exist/db.sqlite"))
}
