package v1_test

import (
	"encoding/json"
	"net/http"

	v1 "github.com/schoolfunds/backend/internal/controllers/v1"
	"github.com/schoolfunds/backend/test"
)

func (suite *TestSuiteStandard) TestExport() {
	student := createTestStudent(suite.T(), v1.StudentEditable{FirstName: "Juan"})
	_ = createTestPayment(suite.T(), v1.PaymentEditable{StudentID: student.Data.ID})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().False(response.CreationTime.IsZero())

	// All resource types are part of the export
	for _, key := range []string{
		"SchoolYear", "GradeLevel", "Section", "Guardian", "Student",
		"ContributionType", "Payment", "Donation", "ExpenseCategory",
		"CategoryRule", "Expense", "User",
	} {
		suite.Assert().Contains(response.Data, key)
	}

	var students []map[string]any
	suite.Require().Nil(json.Unmarshal(response.Data["Student"], &students))
	suite.Require().Len(students, 1)
	suite.Assert().Equal("Juan", students[0]["FirstName"])
}

func (suite *TestSuiteStandard) TestExportOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestExportDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
