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

type studentDirectory interface {
	ListStudents(ctx context.Context) ([]dto.StudentSummary, error)
	AddStudent(ctx context.Context, req dto.CreateStudentRequest) (*dto.StudentSummary, error)
	GetStudent(ctx context.Context, id string) (*dto.StudentSummary, error)
	RemoveStudent(ctx context.Context, id string) error
}

type studentRegistration interface {
	Enroll(ctx context.Context, studentID string, req dto.CourseRef) (*dto.EnrollmentResult, error)
	Drop(ctx context.Context, studentID, code, section string) (*dto.DropResult, error)
	Schedule(ctx context.Context, studentID string) (*dto.ScheduleView, error)
	SetScheduleTitle(ctx context.Context, studentID string, req dto.ScheduleTitleRequest) (*dto.ScheduleView, error)
	ResetSchedule(ctx context.Context, studentID string) error
}

type studentExporter interface {
	SchedulePDF(ctx context.Context, studentID string) (*service.ExportFile, error)
	StudentsCSV(ctx context.Context) (*service.ExportFile, error)
}

// StudentHandler exposes the student directory and per-student registration.
type StudentHandler struct {
	directory     studentDirectory
	registration  studentRegistration
	exports       studentExporter
	pdfExportable bool
}

// NewStudentHandler builds a new handler. pdfExport gates the schedule PDF download.
func NewStudentHandler(directory studentDirectory, registration studentRegistration, exports studentExporter, pdfExport bool) *StudentHandler {
	return &StudentHandler{directory: directory, registration: registration, exports: exports, pdfExportable: pdfExport}
}

// Register mounts the student routes.
func (h *StudentHandler) Register(r gin.IRouter) {
	r.GET("/students", h.List)
	r.POST("/students", h.Create)
	r.GET("/students/:id", h.Get)
	r.DELETE("/students/:id", h.Delete)
	r.GET("/students/:id/schedule", h.Schedule)
	r.GET("/students/:id/schedule/pdf", h.SchedulePDF)
	r.PUT("/students/:id/schedule/title", h.SetTitle)
	r.DELETE("/students/:id/schedule", h.ResetSchedule)
	r.POST("/students/:id/enrollments", h.Enroll)
	r.DELETE("/students/:id/enrollments/:code/:section", h.Drop)
}

// List godoc
// @Summary List students
// @Tags Students
// @Produce json
// @Produce text/csv
// @Param format query string false "csv for a file download"
// @Success 200 {object} response.Envelope
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	if c.Query("format") == "csv" {
		file, err := h.exports.StudentsCSV(c.Request.Context())
		if err != nil {
			response.Error(c, err)
			return
		}
		sendFile(c, file)
		return
	}
	students, err := h.directory.ListStudents(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students, map[string]interface{}{"total": len(students)})
}

// Create godoc
// @Summary Add a student
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body dto.CreateStudentRequest true "Student payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /students [post]
func (h *StudentHandler) Create(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid student payload"))
		return
	}
	student, err := h.directory.AddStudent(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, student)
}

// Get godoc
// @Summary Student detail
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /students/{id} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	student, err := h.directory.GetStudent(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student)
}

// Delete godoc
// @Summary Remove a student
// @Description Drops the student from every roster and waitlist first.
// @Tags Students
// @Param id path string true "Student ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /students/{id} [delete]
func (h *StudentHandler) Delete(c *gin.Context) {
	if err := h.directory.RemoveStudent(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Schedule godoc
// @Summary Student schedule
// @Tags Registration
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /students/{id}/schedule [get]
func (h *StudentHandler) Schedule(c *gin.Context) {
	view, err := h.registration.Schedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view)
}

// SchedulePDF godoc
// @Summary Download a student schedule as PDF
// @Tags Registration
// @Produce application/pdf
// @Param id path string true "Student ID"
// @Success 200 {file} file
// @Failure 404 {object} response.Envelope
// @Router /students/{id}/schedule/pdf [get]
func (h *StudentHandler) SchedulePDF(c *gin.Context) {
	if !h.pdfExportable {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "schedule export is disabled"))
		return
	}
	file, err := h.exports.SchedulePDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	sendFile(c, file)
}

// SetTitle godoc
// @Summary Rename a student schedule
// @Tags Registration
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param payload body dto.ScheduleTitleRequest true "Title payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /students/{id}/schedule/title [put]
func (h *StudentHandler) SetTitle(c *gin.Context) {
	var req dto.ScheduleTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid schedule title payload"))
		return
	}
	view, err := h.registration.SetScheduleTitle(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view)
}

// ResetSchedule godoc
// @Summary Drop every course on a student schedule
// @Tags Registration
// @Param id path string true "Student ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /students/{id}/schedule [delete]
func (h *StudentHandler) ResetSchedule(c *gin.Context) {
	if err := h.registration.ResetSchedule(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Enroll godoc
// @Summary Enroll a student in a section
// @Description A full section places the student on the waitlist. A refused enrollment responds 422 with the reason.
// @Tags Registration
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param payload body dto.CourseRef true "Section"
// @Success 201 {object} response.Envelope
// @Success 202 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /students/{id}/enrollments [post]
func (h *StudentHandler) Enroll(c *gin.Context) {
	var req dto.CourseRef
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid enrollment payload"))
		return
	}
	result, err := h.registration.Enroll(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	switch {
	case result.Waitlisted:
		response.JSON(c, http.StatusAccepted, result)
	case result.Enrolled:
		response.Created(c, result)
	default:
		response.JSON(c, http.StatusUnprocessableEntity, result)
	}
}

// Drop godoc
// @Summary Drop a student from a section or its waitlist
// @Tags Registration
// @Produce json
// @Param id path string true "Student ID"
// @Param code path string true "Course code"
// @Param section path string true "Section"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /students/{id}/enrollments/{code}/{section} [delete]
func (h *StudentHandler) Drop(c *gin.Context) {
	result, err := h.registration.Drop(c.Request.Context(), c.Param("id"), c.Param("code"), c.Param("section"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}
