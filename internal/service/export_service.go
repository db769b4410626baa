package service

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/noah-isme/tutor-api/internal/models"
	appErrors "github.com/noah-isme/tutor-api/pkg/errors"
	"github.com/noah-isme/tutor-api/pkg/export"
)

type courseLister interface {
	ListByTeacher(ctx context.Context, teacherID int64) ([]models.Course, error)
}

type teacherGetter interface {
	Get(ctx context.Context, id int64) (*models.Teacher, error)
}

// ExportFile is a rendered document ready to be downloaded.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

var courseExportHeaders = []string{"id", "name", "time", "description", "format", "structure", "duration", "price", "language", "level"}

// ExportService renders the course catalog of a teacher.
type ExportService struct {
	teachers  teacherGetter
	courses   courseLister
	logger    *zap.Logger
	renderers func(format string) (export.Renderer, error)
}

// NewExportService constructs ExportService.
func NewExportService(teachers teacherGetter, courses courseLister, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{teachers: teachers, courses: courses, logger: logger, renderers: export.ForFormat}
}

// CourseCatalog renders the courses of teacherID in the requested format.
func (s *ExportService) CourseCatalog(ctx context.Context, teacherID int64, format string) (*ExportFile, error) {
	renderer, err := s.renderers(format)
	if err != nil {
		return nil, appErrors.InvalidInput(err, "format must be csv or pdf")
	}

	teacher, err := s.teachers.Get(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	courses, err := s.courses.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{
		Title:   fmt.Sprintf("Courses of %s", displayName(teacher)),
		Headers: courseExportHeaders,
		Rows:    make([]map[string]string, 0, len(courses)),
	}
	for _, c := range courses {
		dataset.Rows = append(dataset.Rows, courseRow(c))
	}

	data, err := renderer.Render(dataset)
	if err != nil {
		s.logger.Error("render course catalog", zap.Int64("teacher_id", teacherID), zap.Error(err))
		return nil, appErrors.Internal(err, "failed to render export")
	}

	return &ExportFile{
		Filename:    fmt.Sprintf("teacher-%d-courses.%s", teacherID, renderer.Extension()),
		ContentType: renderer.ContentType(),
		Data:        data,
	}, nil
}

func displayName(t *models.Teacher) string {
	if t.Name != "" {
		return t.Name
	}
	return "teacher " + strconv.FormatInt(t.ID, 10)
}

func courseRow(c models.Course) map[string]string {
	row := map[string]string{
		"id":          strconv.FormatInt(c.ID, 10),
		"name":        c.Name,
		"time":        c.Time.UTC().Format("2006-01-02 15:04"),
		"description": deref(c.Description),
		"format":      deref(c.Format),
		"structure":   deref(c.Structure),
		"duration":    deref(c.Duration),
		"language":    deref(c.Language),
		"level":       deref(c.Level),
	}
	if c.Price != nil {
		row["price"] = strconv.Itoa(*c.Price)
	}
	return row
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
