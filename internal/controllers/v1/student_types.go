package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/schoolfunds/backend/internal/httputil"
	"github.com/schoolfunds/backend/internal/models"
)

type StudentEditable struct {
	FirstName     string               `json:"firstName" example:"Juan" default:""`                         // First name of the student
	LastName      string               `json:"lastName" example:"dela Cruz" default:""`                     // Last name of the student
	StudentNumber string               `json:"studentNumber" example:"2025-00117" default:""`               // Unique student number
	GuardianID    uuid.UUID            `json:"guardianId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`   // ID of the guardian responsible for the student
	SectionID     uuid.UUID            `json:"sectionId" example:"d23y1bc9-bdef-4878-b4c1-108e0178bd8a"`    // ID of the section the student is enrolled in
	SchoolYearID  uuid.UUID            `json:"schoolYearId" example:"4b1h7dc2-263a-41a4-8a4f-1a21a4573b22"` // ID of the school year the student is enrolled in
	Status        models.StudentStatus `json:"status" example:"ENROLLED" default:"ENROLLED"`                // Enrollment status of the student
}

// model returns the database resource for the editable fields
func (editable StudentEditable) model() models.Student {
	return models.Student{
		FirstName:     editable.FirstName,
		LastName:      editable.LastName,
		StudentNumber: editable.StudentNumber,
		GuardianID:    editable.GuardianID,
		SectionID:     editable.SectionID,
		SchoolYearID:  editable.SchoolYearID,
		Status:        editable.Status,
	}
}

type StudentLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/students/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`               // The student itself
	Payments string `json:"payments" example:"https://example.com/api/v1/payments?student=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Payments recorded for this student
}

// Student is the API v1 representation of a Student.
type Student struct {
	models.DefaultModel
	StudentEditable
	Links StudentLinks `json:"links"`
}

func newStudent(c *gin.Context, model models.Student) Student {
	url := c.GetString(string(models.DBContextURL))

	return Student{
		DefaultModel: model.DefaultModel,
		StudentEditable: StudentEditable{
			FirstName:     model.FirstName,
			LastName:      model.LastName,
			StudentNumber: model.StudentNumber,
			GuardianID:    model.GuardianID,
			SectionID:     model.SectionID,
			SchoolYearID:  model.SchoolYearID,
			Status:        model.Status,
		},
		Links: StudentLinks{
			Self:     fmt.Sprintf("%s/v1/students/%s", url, model.ID),
			Payments: fmt.Sprintf("%s/v1/payments?student=%s", url, model.ID),
		},
	}
}

type StudentListResponse struct {
	Data       []Student   `json:"data"`                                                          // List of students
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type StudentCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []StudentResponse `json:"data"`                                                          // List of created students
}

func (s *StudentCreateResponse) appendError(err error, currentStatus int) int {
	e := err.Error()
	s.Data = append(s.Data, StudentResponse{Error: &e})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type StudentResponse struct {
	Data  *Student `json:"data"`                                                          // Data for the student
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type StudentQueryFilter struct {
	FirstName     string `form:"firstName" filterField:"false"` // Fuzzy filter for the first name
	LastName      string `form:"lastName" filterField:"false"`  // Fuzzy filter for the last name
	StudentNumber string `form:"studentNumber"`                 // By student number
	GuardianID    string `form:"guardian"`                      // By guardian ID
	SectionID     string `form:"section"`                       // By section ID
	SchoolYearID  string `form:"schoolYear"`                    // By school year ID
	Status        string `form:"status"`                        // By enrollment status
	Search        string `form:"search" filterField:"false"`    // By string in names or student number
	Offset        uint   `form:"offset" filterField:"false"`    // The offset of the first Student returned. Defaults to 0.
	Limit         int    `form:"limit" filterField:"false"`     // Maximum number of Students to return. Defaults to 50.
}

func (f StudentQueryFilter) model() (models.Student, error) {
	guardianID, err := httputil.UUIDFromString(f.GuardianID)
	if err != nil {
		return models.Student{}, err
	}

	sectionID, err := httputil.UUIDFromString(f.SectionID)
	if err != nil {
		return models.Student{}, err
	}

	schoolYearID, err := httputil.UUIDFromString(f.SchoolYearID)
	if err != nil {
		return models.Student{}, err
	}

	return models.Student{
		StudentNumber: f.StudentNumber,
		GuardianID:    guardianID,
		SectionID:     sectionID,
		SchoolYearID:  schoolYearID,
		Status:        models.StudentStatus(f.Status),
	}, nil
}
