package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/course-registration-api/internal/dto"
	appErrors "github.com/noah-isme/course-registration-api/pkg/errors"
	"github.com/noah-isme/course-registration-api/pkg/export"
)

type scheduleReader interface {
	Schedule(ctx context.Context, studentID string) (*dto.ScheduleView, error)
	RosterLines(ctx context.Context, code, section string) ([]dto.RosterLine, error)
}

type studentLister interface {
	ListStudents(ctx context.Context) ([]dto.StudentSummary, error)
}

type csvRenderer interface {
	Render(rows interface{}) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ExportService renders schedules, rosters and the student directory as
// downloadable files.
type ExportService struct {
	registration scheduleReader
	directory    studentLister
	csv          csvRenderer
	pdf          pdfRenderer
	logger       *zap.Logger
}

// NewExportService constructs ExportService.
func NewExportService(registration scheduleReader, directory studentLister, csv csvRenderer, pdf pdfRenderer, logger *zap.Logger) *ExportService {
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{registration: registration, directory: directory, csv: csv, pdf: pdf, logger: logger}
}

// SchedulePDF renders a student's schedule as a PDF table.
func (s *ExportService) SchedulePDF(ctx context.Context, studentID string) (*ExportFile, error) {
	view, err := s.registration.Schedule(ctx, studentID)
	if err != nil {
		return nil, err
	}
	data := export.Dataset{
		Headers: []string{"Code", "Section", "Title", "Meeting", "Open Seats"},
		Weights: []float64{2, 1.5, 5, 4, 1.5},
		Summary: fmt.Sprintf("Total credits: %d", view.Credits),
	}
	for _, row := range view.Courses {
		data.Rows = append(data.Rows, map[string]string{
			"Code":       row.Code,
			"Section":    row.Section,
			"Title":      row.Title,
			"Meeting":    row.Meeting,
			"Open Seats": strconv.Itoa(row.OpenSeats),
		})
	}

	content, err := s.pdf.Render(data, view.Title)
	if err != nil {
		s.logger.Error("schedule pdf render failed", zap.String("student_id", studentID), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render schedule")
	}
	return &ExportFile{
		Filename:    fmt.Sprintf("schedule-%s.pdf", studentID),
		ContentType: "application/pdf",
		Content:     content,
	}, nil
}

// RosterCSV renders a section's roster followed by its waitlist.
func (s *ExportService) RosterCSV(ctx context.Context, code, section string) (*ExportFile, error) {
	lines, err := s.registration.RosterLines(ctx, code, section)
	if err != nil {
		return nil, err
	}
	content, err := s.csv.Render(lines)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render roster")
	}
	return &ExportFile{
		Filename:    fmt.Sprintf("roster-%s-%s.csv", strings.ToLower(code), section),
		ContentType: "text/csv",
		Content:     content,
	}, nil
}

// StudentsCSV renders the student directory.
func (s *ExportService) StudentsCSV(ctx context.Context) (*ExportFile, error) {
	students, err := s.directory.ListStudents(ctx)
	if err != nil {
		return nil, err
	}
	content, err := s.csv.Render(students)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render student directory")
	}
	return &ExportFile{Filename: "students.csv", ContentType: "text/csv", Content: content}, nil
}
