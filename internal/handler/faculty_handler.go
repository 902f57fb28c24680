package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/course-registration-api/internal/dto"
	appErrors "github.com/noah-isme/course-registration-api/pkg/errors"
	"github.com/noah-isme/course-registration-api/pkg/response"
)

type facultyDirectory interface {
	ListFaculty(ctx context.Context) ([]dto.FacultySummary, error)
	AddFaculty(ctx context.Context, req dto.CreateFacultyRequest) (*dto.FacultySummary, error)
	RemoveFaculty(ctx context.Context, id string) error
}

type teachingAssignments interface {
	FacultySchedule(ctx context.Context, facultyID string) (*dto.FacultyScheduleView, error)
	AssignFaculty(ctx context.Context, facultyID string, req dto.CourseRef) (*dto.FacultyScheduleView, error)
	UnassignFaculty(ctx context.Context, facultyID, code, section string) (*dto.FacultyScheduleView, error)
	ResetFacultySchedule(ctx context.Context, facultyID string) error
	SetOfficeHours(ctx context.Context, facultyID string, req dto.OfficeHoursRequest) (*dto.FacultyScheduleView, error)
	ClearOfficeHours(ctx context.Context, facultyID string) error
}

// FacultyHandler exposes the faculty directory and teaching assignments.
type FacultyHandler struct {
	directory   facultyDirectory
	assignments teachingAssignments
}

// NewFacultyHandler builds a new handler.
func NewFacultyHandler(directory facultyDirectory, assignments teachingAssignments) *FacultyHandler {
	return &FacultyHandler{directory: directory, assignments: assignments}
}

// Register mounts the faculty routes.
func (h *FacultyHandler) Register(r gin.IRouter) {
	r.GET("/faculty", h.List)
	r.POST("/faculty", h.Create)
	r.DELETE("/faculty/:id", h.Delete)
	r.GET("/faculty/:id/courses", h.Schedule)
	r.POST("/faculty/:id/courses", h.Assign)
	r.DELETE("/faculty/:id/courses/:code/:section", h.Unassign)
	r.DELETE("/faculty/:id/courses", h.Reset)
	r.PUT("/faculty/:id/office-hours", h.SetOfficeHours)
	r.DELETE("/faculty/:id/office-hours", h.ClearOfficeHours)
}

// List godoc
// @Summary List faculty
// @Tags Faculty
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /faculty [get]
func (h *FacultyHandler) List(c *gin.Context) {
	members, err := h.directory.ListFaculty(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, members, map[string]interface{}{"total": len(members)})
}

// Create godoc
// @Summary Add a faculty member
// @Tags Faculty
// @Accept json
// @Produce json
// @Param payload body dto.CreateFacultyRequest true "Faculty payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /faculty [post]
func (h *FacultyHandler) Create(c *gin.Context) {
	var req dto.CreateFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid faculty payload"))
		return
	}
	member, err := h.directory.AddFaculty(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, member)
}

// Delete godoc
// @Summary Remove a faculty member
// @Tags Faculty
// @Param id path string true "Faculty ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /faculty/{id} [delete]
func (h *FacultyHandler) Delete(c *gin.Context) {
	if err := h.directory.RemoveFaculty(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Schedule godoc
// @Summary Sections taught by a faculty member
// @Tags Faculty
// @Produce json
// @Param id path string true "Faculty ID"
// @Success 200 {object} response.Envelope
// @Router /faculty/{id}/courses [get]
func (h *FacultyHandler) Schedule(c *gin.Context) {
	view, err := h.assignments.FacultySchedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view)
}

// Assign godoc
// @Summary Assign a section to a faculty member
// @Tags Faculty
// @Accept json
// @Produce json
// @Param id path string true "Faculty ID"
// @Param payload body dto.CourseRef true "Section"
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /faculty/{id}/courses [post]
func (h *FacultyHandler) Assign(c *gin.Context) {
	var req dto.CourseRef
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid assignment payload"))
		return
	}
	view, err := h.assignments.AssignFaculty(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view)
}

// Unassign godoc
// @Summary Remove a section from a faculty member
// @Tags Faculty
// @Produce json
// @Param id path string true "Faculty ID"
// @Param code path string true "Course code"
// @Param section path string true "Section"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /faculty/{id}/courses/{code}/{section} [delete]
func (h *FacultyHandler) Unassign(c *gin.Context) {
	view, err := h.assignments.UnassignFaculty(c.Request.Context(), c.Param("id"), c.Param("code"), c.Param("section"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view)
}

// Reset godoc
// @Summary Clear a faculty member's sections
// @Tags Faculty
// @Param id path string true "Faculty ID"
// @Success 204
// @Router /faculty/{id}/courses [delete]
func (h *FacultyHandler) Reset(c *gin.Context) {
	if err := h.assignments.ResetFacultySchedule(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// SetOfficeHours godoc
// @Summary Set a faculty member's office hours
// @Tags Faculty
// @Accept json
// @Produce json
// @Param id path string true "Faculty ID"
// @Param payload body dto.OfficeHoursRequest true "Office hours"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /faculty/{id}/office-hours [put]
func (h *FacultyHandler) SetOfficeHours(c *gin.Context) {
	var req dto.OfficeHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid office hours payload"))
		return
	}
	view, err := h.assignments.SetOfficeHours(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view)
}

// ClearOfficeHours godoc
// @Summary Clear a faculty member's office hours
// @Tags Faculty
// @Param id path string true "Faculty ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /faculty/{id}/office-hours [delete]
func (h *FacultyHandler) ClearOfficeHours(c *gin.Context) {
	if err := h.assignments.ClearOfficeHours(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
