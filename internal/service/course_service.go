package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/tutor-api/internal/dto"
	"github.com/noah-isme/tutor-api/internal/models"
	appErrors "github.com/noah-isme/tutor-api/pkg/errors"
)

type courseRepository interface {
	ListByTeacher(ctx context.Context, teacherID int64) ([]models.Course, error)
	FindByID(ctx context.Context, teacherID, id int64) (*models.Course, error)
	Create(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error)
	Update(ctx context.Context, teacherID, id int64, req dto.UpdateCourseRequest) (*models.Course, error)
	Delete(ctx context.Context, teacherID, id int64) (int64, error)
}

// CourseService orchestrates course CRUD. Courses are always addressed by
// their owning teacher and their own id.
type CourseService struct {
	repo      courseRepository
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
}

// NewCourseService constructs CourseService.
func NewCourseService(repo courseRepository, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, validator: validate, logger: logger, metrics: metrics}
}

// ListByTeacher returns the courses of one teacher; none is reported as not found.
func (s *CourseService) ListByTeacher(ctx context.Context, teacherID int64) ([]models.Course, error) {
	start := time.Now()
	courses, err := s.repo.ListByTeacher(ctx, teacherID)
	s.metrics.ObserveDBQuery("course_list", time.Since(start), err)
	if err != nil {
		return nil, appErrors.Store(err)
	}
	if len(courses) == 0 {
		return nil, appErrors.NotFound("no courses found for teacher")
	}
	return courses, nil
}

// Get returns a single course.
func (s *CourseService) Get(ctx context.Context, teacherID, id int64) (*models.Course, error) {
	start := time.Now()
	course, err := s.repo.FindByID(ctx, teacherID, id)
	s.metrics.ObserveDBQuery("course_get", time.Since(start), err)
	if err != nil {
		return nil, s.mapError(err)
	}
	return course, nil
}

// Create stores a new course. A teacher_id that does not exist fails in the
// store and surfaces as a store error.
func (s *CourseService) Create(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.InvalidInput(err, "invalid course payload")
	}

	start := time.Now()
	course, err := s.repo.Create(ctx, req)
	s.metrics.ObserveDBQuery("course_create", time.Since(start), err)
	if err != nil {
		return nil, appErrors.Store(err)
	}
	s.logger.Info("course created", zap.Int64("teacher_id", course.TeacherID), zap.Int64("course_id", course.ID))
	return course, nil
}

// Update merges the present fields of req into the stored course.
func (s *CourseService) Update(ctx context.Context, teacherID, id int64, req dto.UpdateCourseRequest) (*models.Course, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, appErrors.InvalidInput(nil, "course name cannot be blank")
	}

	start := time.Now()
	course, err := s.repo.Update(ctx, teacherID, id, req)
	s.metrics.ObserveDBQuery("course_update", time.Since(start), err)
	if err != nil {
		return nil, s.mapError(err)
	}
	return course, nil
}

// Delete removes the course if present.
func (s *CourseService) Delete(ctx context.Context, teacherID, id int64) (string, error) {
	start := time.Now()
	affected, err := s.repo.Delete(ctx, teacherID, id)
	s.metrics.ObserveDBQuery("course_delete", time.Since(start), err)
	if err != nil {
		return "", appErrors.Store(err)
	}
	if affected > 0 {
		s.logger.Info("course deleted", zap.Int64("teacher_id", teacherID), zap.Int64("course_id", id))
	}
	return fmt.Sprintf("deleted %d course record(s)", affected), nil
}

func (s *CourseService) mapError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.NotFound("course not found")
	}
	return appErrors.Store(err)
}
