package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/schoolfunds/backend/internal/models"
)

func (suite *TestSuiteStandard) TestIDSetOnCreate() {
	guardian := suite.createTestGuardian(models.Guardian{})
	suite.Assert().NotEqual(uuid.Nil, guardian.ID)
}

// Timestamps are always read back in UTC, not +0000.
func (suite *TestSuiteStandard) TestTimestampsUTC() {
	_ = suite.createTestGuardian(models.Guardian{Name: "Maria Santos"})

	var guardian models.Guardian
	suite.Require().Nil(models.DB.Where(&models.Guardian{Name: "Maria Santos"}).First(&guardian).Error)

	suite.Assert().Equal(time.UTC, guardian.CreatedAt.Location())
	suite.Assert().Equal(time.UTC, guardian.UpdatedAt.Location())
}

func (suite *TestSuiteStandard) TestResourceNotFoundMessage() {
	err := models.DB.First(&models.SchoolYear{}, uuid.New()).Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Contains(err.Error(), "school year")
}

func (suite *TestSuiteStandard) TestUniqueConstraintMessage() {
	_ = suite.createTestGradeLevel(models.GradeLevel{Name: "Grade 7"})

	err := models.DB.Create(&models.GradeLevel{Name: "Grade 7"}).Error
	suite.Assert().ErrorIs(err, models.ErrGradeLevelNameNotUnique)
}

func (suite *TestSuiteStandard) TestGeneralErrorOnClosedDB() {
	suite.CloseDB()

	err := models.DB.Create(&models.Guardian{Name: "Too late"}).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
