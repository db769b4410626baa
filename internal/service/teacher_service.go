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

type teacherRepository interface {
	List(ctx context.Context) ([]models.Teacher, error)
	FindByID(ctx context.Context, id int64) (*models.Teacher, error)
	Create(ctx context.Context, req dto.CreateTeacherRequest) (*models.Teacher, error)
	Update(ctx context.Context, id int64, req dto.UpdateTeacherRequest) (*models.Teacher, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// TeacherService orchestrates teacher CRUD.
type TeacherService struct {
	repo      teacherRepository
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
}

// NewTeacherService constructs TeacherService.
func NewTeacherService(repo teacherRepository, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *TeacherService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeacherService{repo: repo, validator: validate, logger: logger, metrics: metrics}
}

// List returns every teacher. An empty table is reported as not found.
func (s *TeacherService) List(ctx context.Context) ([]models.Teacher, error) {
	start := time.Now()
	teachers, err := s.repo.List(ctx)
	s.metrics.ObserveDBQuery("teacher_list", time.Since(start), err)
	if err != nil {
		return nil, appErrors.Store(err)
	}
	if len(teachers) == 0 {
		return nil, appErrors.NotFound("no teachers found")
	}
	return teachers, nil
}

// Get returns a single teacher.
func (s *TeacherService) Get(ctx context.Context, id int64) (*models.Teacher, error) {
	start := time.Now()
	teacher, err := s.repo.FindByID(ctx, id)
	s.metrics.ObserveDBQuery("teacher_get", time.Since(start), err)
	if err != nil {
		return nil, s.mapError(err)
	}
	return teacher, nil
}

// Create stores a new teacher and returns the stored row.
func (s *TeacherService) Create(ctx context.Context, req dto.CreateTeacherRequest) (*models.Teacher, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.InvalidInput(err, "invalid teacher payload")
	}

	start := time.Now()
	teacher, err := s.repo.Create(ctx, req)
	s.metrics.ObserveDBQuery("teacher_create", time.Since(start), err)
	if err != nil {
		return nil, appErrors.Store(err)
	}
	s.logger.Info("teacher created", zap.Int64("teacher_id", teacher.ID))
	return teacher, nil
}

// Update merges the present fields of req into the stored teacher.
func (s *TeacherService) Update(ctx context.Context, id int64, req dto.UpdateTeacherRequest) (*models.Teacher, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, appErrors.InvalidInput(nil, "teacher name cannot be blank")
	}

	start := time.Now()
	teacher, err := s.repo.Update(ctx, id, req)
	s.metrics.ObserveDBQuery("teacher_update", time.Since(start), err)
	if err != nil {
		return nil, s.mapError(err)
	}
	return teacher, nil
}

// Delete removes the teacher if present and reports how many rows went away.
func (s *TeacherService) Delete(ctx context.Context, id int64) (string, error) {
	start := time.Now()
	affected, err := s.repo.Delete(ctx, id)
	s.metrics.ObserveDBQuery("teacher_delete", time.Since(start), err)
	if err != nil {
		return "", appErrors.Store(err)
	}
	if affected > 0 {
		s.logger.Info("teacher deleted", zap.Int64("teacher_id", id))
	}
	return fmt.Sprintf("deleted %d teacher record(s)", affected), nil
}

func (s *TeacherService) mapError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.NotFound("teacher not found")
	}
	return appErrors.Store(err)
}
