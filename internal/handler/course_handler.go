package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/course-registration-api/internal/dto"
	"github.com/noah-isme/course-registration-api/internal/service"
	appErrors "github.com/noah-isme/course-registration-api/pkg/errors"
	"github.com/noah-isme/course-registration-api/pkg/response"
)

type catalogService interface {
	List(ctx context.Context) ([]dto.CourseSummary, error)
	Add(ctx context.Context, req dto.CreateCourseRequest) (*dto.CourseSummary, error)
	Get(ctx context.Context, code, section string) (*dto.RosterSummary, error)
	Remove(ctx context.Context, code, section string) error
	ValidateCode(ctx context.Context, req dto.ValidateCodeRequest) (*dto.ValidateCodeResult, error)
}

type enrollmentCapService interface {
	SetEnrollmentCap(ctx context.Context, code, section string, req dto.EnrollmentCapRequest) (*dto.RosterSummary, error)
}

type rosterExporter interface {
	RosterCSV(ctx context.Context, code, section string) (*service.ExportFile, error)
}

// CourseHandler exposes catalog endpoints.
type CourseHandler struct {
	catalog      catalogService
	registration enrollmentCapService
	exports      rosterExporter
}

// NewCourseHandler builds a new handler.
func NewCourseHandler(catalog catalogService, registration enrollmentCapService, exports rosterExporter) *CourseHandler {
	return &CourseHandler{catalog: catalog, registration: registration, exports: exports}
}

// Register mounts the catalog routes.
func (h *CourseHandler) Register(r gin.IRouter) {
	r.GET("/courses", h.List)
	r.POST("/courses", h.Create)
	r.GET("/courses/:code/:section", h.Get)
	r.DELETE("/courses/:code/:section", h.Delete)
	r.PUT("/courses/:code/:section/cap", h.SetCap)
	r.GET("/courses/:code/:section/roster.csv", h.RosterCSV)
	r.POST("/course-codes/validate", h.ValidateCode)
}

// List godoc
// @Summary List the course catalog
// @Tags Courses
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.catalog.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses, map[string]interface{}{"total": len(courses)})
}

// Create godoc
// @Summary Add a course section
// @Tags Courses
// @Accept json
// @Produce json
// @Param payload body dto.CreateCourseRequest true "Course payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /courses [post]
func (h *CourseHandler) Create(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid course payload"))
		return
	}
	course, err := h.catalog.Add(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, course)
}

// Get godoc
// @Summary Course section with roster and waitlist
// @Tags Courses
// @Produce json
// @Param code path string true "Course code"
// @Param section path string true "Section"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /courses/{code}/{section} [get]
func (h *CourseHandler) Get(c *gin.Context) {
	summary, err := h.catalog.Get(c.Request.Context(), c.Param("code"), c.Param("section"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary)
}

// Delete godoc
// @Summary Remove a course section
// @Description Drops every enrolled and waitlisted student and unassigns the instructor.
// @Tags Courses
// @Param code path string true "Course code"
// @Param section path string true "Section"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /courses/{code}/{section} [delete]
func (h *CourseHandler) Delete(c *gin.Context) {
	if err := h.catalog.Remove(c.Request.Context(), c.Param("code"), c.Param("section")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// SetCap godoc
// @Summary Change a section's enrollment cap
// @Tags Courses
// @Accept json
// @Produce json
// @Param code path string true "Course code"
// @Param section path string true "Section"
// @Param payload body dto.EnrollmentCapRequest true "Cap payload"
// @Success 200 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /courses/{code}/{section}/cap [put]
func (h *CourseHandler) SetCap(c *gin.Context) {
	var req dto.EnrollmentCapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid enrollment cap payload"))
		return
	}
	summary, err := h.registration.SetEnrollmentCap(c.Request.Context(), c.Param("code"), c.Param("section"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary)
}

// RosterCSV godoc
// @Summary Download a section roster as CSV
// @Tags Courses
// @Produce text/csv
// @Param code path string true "Course code"
// @Param section path string true "Section"
// @Success 200 {file} file
// @Router /courses/{code}/{section}/roster.csv [get]
func (h *CourseHandler) RosterCSV(c *gin.Context) {
	file, err := h.exports.RosterCSV(c.Request.Context(), c.Param("code"), c.Param("section"))
	if err != nil {
		response.Error(c, err)
		return
	}
	sendFile(c, file)
}

// ValidateCode godoc
// @Summary Check a course code against the naming rules
// @Tags Courses
// @Accept json
// @Produce json
// @Param payload body dto.ValidateCodeRequest true "Code payload"
// @Success 200 {object} response.Envelope
// @Router /course-codes/validate [post]
func (h *CourseHandler) ValidateCode(c *gin.Context) {
	var req dto.ValidateCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid course code payload"))
		return
	}
	result, err := h.catalog.ValidateCode(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}
