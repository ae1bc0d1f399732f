package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	v1 "github.com/schoolfunds/backend/internal/controllers/v1"
	"github.com/schoolfunds/backend/internal/httputil"
	"github.com/schoolfunds/backend/internal/models"
	"github.com/schoolfunds/backend/test"
	"github.com/stretchr/testify/assert"
)

// TestSchoolYearsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestSchoolYearsDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestSchoolYear(t, v1.SchoolYearEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/school-years", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.SchoolYearListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestSchoolYearsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestSchoolYearsOptions() {
	tests := []struct {
		name   string
		id     string // path at the SchoolYears endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No school year with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"School year exists", createTestSchoolYear(suite.T(), v1.SchoolYearEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/school-years", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestSchoolYearsGetSingle verifies that requests for the resource endpoints
// are handled correctly.
func (suite *TestSuiteStandard) TestSchoolYearsGetSingle() {
	s := createTestSchoolYear(suite.T(), v1.SchoolYearEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing school year", s.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET No school year with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/school-years/%s", tt.id), "")

			var schoolYear v1.SchoolYearResponse
			test.DecodeResponse(t, &r, &schoolYear)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestSchoolYearsCreateInvalidBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/school-years", `{ Invalid request": Body }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.SchoolYearCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), httputil.ErrInvalidBody.Error(), *response.Error)
	assert.Nil(suite.T(), response.Data)
}

func (suite *TestSuiteStandard) TestSchoolYearsCreateDuplicateName() {
	_ = createTestSchoolYear(suite.T(), v1.SchoolYearEditable{Name: "2025-2026"})

	response := createTestSchoolYear(suite.T(), v1.SchoolYearEditable{Name: "2025-2026"}, http.StatusBadRequest)
	assert.Nil(suite.T(), response.Data)
}

func (suite *TestSuiteStandard) TestSchoolYearsGetFilter() {
	_ = createTestSchoolYear(suite.T(), v1.SchoolYearEditable{
		Name: "2024-2025",
		Note: "The previous school year",
	})

	_ = createTestSchoolYear(suite.T(), v1.SchoolYearEditable{
		Name: "2025-2026",
		Note: "The current school year",
	})

	_ = createTestSchoolYear(suite.T(), v1.SchoolYearEditable{
		Name: "Summer 2025",
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Fuzzy name", "name=2025", 3},
		{"Empty name", "name=", 0},
		{"Fuzzy note", "note=school year", 2},
		{"Empty note", "note=", 1},
		{"Search", "search=current", 1},
		{"Offset 2", "offset=2", 1},
		{"Offset 0, limit 2", "offset=0&limit=2", 2},
		{"Limit 4", "limit=4", 3},
		{"Limit 0", "limit=0", 0},
		{"Limit -1", "limit=-1", 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/school-years?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.SchoolYearListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestSchoolYearsUpdate() {
	s := createTestSchoolYear(suite.T(), v1.SchoolYearEditable{Name: "2025-2026"})

	r := test.Request(suite.T(), http.MethodPatch, s.Data.Links.Self, map[string]any{
		"note": "Classes start in June",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.SchoolYearResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.Equal(suite.T(), "2025-2026", updated.Data.Name)
	assert.Equal(suite.T(), "Classes start in June", updated.Data.Note)
}

func (suite *TestSuiteStandard) TestSchoolYearsUpdateInvalidBody() {
	s := createTestSchoolYear(suite.T(), v1.SchoolYearEditable{})

	r := test.Request(suite.T(), http.MethodPatch, s.Data.Links.Self, `{ "name": 2 }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestSchoolYearsDelete() {
	s := createTestSchoolYear(suite.T(), v1.SchoolYearEditable{})

	r := test.Request(suite.T(), http.MethodDelete, s.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, s.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestSchoolYearsGetSorted() {
	first := createTestSchoolYear(suite.T(), v1.SchoolYearEditable{
		Name:      "2023-2024",
		StartDate: time.Date(2023, 6, 5, 0, 0, 0, 0, time.UTC),
	})

	second := createTestSchoolYear(suite.T(), v1.SchoolYearEditable{
		Name:      "2024-2025",
		StartDate: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/school-years", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SchoolYearListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// Most recent school year first
	assert.Equal(suite.T(), second.Data.ID, response.Data[0].ID)
	assert.Equal(suite.T(), first.Data.ID, response.Data[1].ID)
}

func (suite *TestSuiteStandard) TestSchoolYearsPagination() {
	for i := 0; i < 3; i++ {
		_ = createTestSchoolYear(suite.T(), v1.SchoolYearEditable{})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/school-years?offset=1&limit=1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SchoolYearListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), 1, response.Pagination.Count)
	assert.Equal(suite.T(), uint(1), response.Pagination.Offset)
	assert.Equal(suite.T(), int64(3), response.Pagination.Total)
}
