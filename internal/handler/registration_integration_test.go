package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	internalmiddleware "github.com/noah-isme/course-registration-api/internal/middleware"
	"github.com/noah-isme/course-registration-api/internal/repository"
	"github.com/noah-isme/course-registration-api/internal/service"
)

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Compare(hash, password string) error { return nil }

func TestRegistrationRoutesIntegration(t *testing.T) {
	router, metrics := buildRegistrationRouter()

	for _, body := range []string{
		`{"code":"CSC216","title":"Software Development Fundamentals","section":"001","credits":3,"meetingDays":"MW","startTime":1330,"endTime":1445}`,
		`{"code":"CSC226","title":"Discrete Mathematics","section":"001","credits":3,"meetingDays":"MW","startTime":1400,"endTime":1515}`,
	} {
		resp := performRequest(router, jsonRequest(http.MethodPost, "/api/v1/courses", body))
		require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	}
	resp := performRequest(router, jsonRequest(http.MethodPost, "/api/v1/students",
		`{"firstName":"Ada","lastName":"Lovelace","id":"alovela","email":"alovela@ncsu.edu","password":"pw","repeatPassword":"pw"}`))
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	t.Run("duplicate course conflicts", func(t *testing.T) {
		resp := performRequest(router, jsonRequest(http.MethodPost, "/api/v1/courses",
			`{"code":"CSC216","title":"Again","section":"001","credits":3,"meetingDays":"A"}`))
		require.Equal(t, http.StatusConflict, resp.Code)
	})

	t.Run("enroll seats student", func(t *testing.T) {
		resp := performRequest(router, jsonRequest(http.MethodPost, "/api/v1/students/alovela/enrollments", `{"code":"CSC216","section":"001"}`))
		require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
		require.Contains(t, resp.Body.String(), `"enrolled":true`)
	})

	t.Run("conflicting enrollment refused", func(t *testing.T) {
		resp := performRequest(router, jsonRequest(http.MethodPost, "/api/v1/students/alovela/enrollments", `{"code":"CSC226","section":"001"}`))
		require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		require.Contains(t, resp.Body.String(), "The course cannot be added due to a conflict")
	})

	t.Run("schedule lists course", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/students/alovela/schedule", nil)
		resp := performRequest(router, req)
		require.Equal(t, http.StatusOK, resp.Code)
		var body struct {
			Data struct {
				Credits int `json:"credits"`
				Courses []struct {
					Code string `json:"code"`
				} `json:"courses"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		require.Equal(t, 3, body.Data.Credits)
		require.Len(t, body.Data.Courses, 1)
		require.Equal(t, "CSC216", body.Data.Courses[0].Code)
	})

	t.Run("roster csv", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/courses/CSC216/001/roster.csv", nil)
		resp := performRequest(router, req)
		require.Equal(t, http.StatusOK, resp.Code)
		require.Contains(t, resp.Body.String(), "alovela")
	})

	t.Run("drop frees seat", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodDelete, "/api/v1/students/alovela/enrollments/CSC216/001", nil)
		resp := performRequest(router, req)
		require.Equal(t, http.StatusOK, resp.Code)

		req, _ = http.NewRequest(http.MethodGet, "/api/v1/courses/CSC216/001", nil)
		resp = performRequest(router, req)
		require.Equal(t, http.StatusOK, resp.Code)
		require.Contains(t, resp.Body.String(), `"openSeats":10`)
	})

	t.Run("unknown student", func(t *testing.T) {
		resp := performRequest(router, jsonRequest(http.MethodPost, "/api/v1/students/nobody/enrollments", `{"code":"CSC216","section":"001"}`))
		require.Equal(t, http.StatusNotFound, resp.Code)
	})

	t.Run("code validation", func(t *testing.T) {
		resp := performRequest(router, jsonRequest(http.MethodPost, "/api/v1/course-codes/validate", `{"code":"CSC216A"}`))
		require.Equal(t, http.StatusOK, resp.Code)
		require.Contains(t, resp.Body.String(), `"valid":true`)
	})

	t.Run("metrics summary counts outcomes", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/metrics/summary", nil)
		resp := performRequest(router, req)
		require.Equal(t, http.StatusOK, resp.Code)
		snapshot := metrics.Snapshot()
		require.EqualValues(t, 1, snapshot.Enrollments)
		require.EqualValues(t, 1, snapshot.Drops)
		require.NotZero(t, snapshot.RequestsTotal)
	})
}

func buildRegistrationRouter() (*gin.Engine, *service.MetricsService) {
	gin.SetMode(gin.TestMode)
	courses := repository.NewCourseCatalog()
	students := repository.NewStudentDirectory()
	faculty := repository.NewFacultyDirectory()
	metrics := service.NewMetricsService()

	registration := service.NewRegistrationService(courses, students, faculty, metrics, nil, nil)
	catalog := service.NewCatalogService(courses, registration, 10, nil, nil)
	directory := service.NewDirectoryService(students, faculty, registration, plainHasher{}, nil, nil)
	exports := service.NewExportService(registration, directory, nil, nil, nil)

	router := gin.New()
	router.Use(internalmiddleware.Metrics(metrics))
	metricsHandler := NewMetricsHandler(metrics)
	router.GET("/metrics/summary", metricsHandler.Summary)

	api := router.Group("/api/v1")
	NewCourseHandler(catalog, registration, exports).Register(api)
	NewStudentHandler(directory, registration, exports, true).Register(api)
	NewFacultyHandler(directory, registration).Register(api)
	return router, metrics
}

func jsonRequest(method, path, body string) *http.Request {
	req, _ := http.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func performRequest(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
