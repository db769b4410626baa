package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/tutor-api/internal/dto"
	"github.com/noah-isme/tutor-api/internal/models"
)

const courseColumns = `id, teacher_id, name, time, description, format, structure, duration, price, language, level`

// CourseRepository manages persistence for courses. Every course is addressed
// by its owning teacher and its own id.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository constructs a CourseRepository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// ListByTeacher returns the courses of a teacher ordered by id.
func (r *CourseRepository) ListByTeacher(ctx context.Context, teacherID int64) ([]models.Course, error) {
	query := fmt.Sprintf("SELECT %s FROM course WHERE teacher_id = $1 ORDER BY id", courseColumns)
	courses := []models.Course{}
	if err := r.db.SelectContext(ctx, &courses, query, teacherID); err != nil {
		return nil, fmt.Errorf("list courses for teacher %d: %w", teacherID, err)
	}
	return courses, nil
}

// FindByID fetches one course of a teacher. A missing row yields sql.ErrNoRows.
func (r *CourseRepository) FindByID(ctx context.Context, teacherID, id int64) (*models.Course, error) {
	query := fmt.Sprintf("SELECT %s FROM course WHERE teacher_id = $1 AND id = $2", courseColumns)
	var course models.Course
	if err := r.db.GetContext(ctx, &course, query, teacherID, id); err != nil {
		return nil, fmt.Errorf("find course %d/%d: %w", teacherID, id, err)
	}
	return &course, nil
}

// Create inserts a course; the store assigns id and time.
func (r *CourseRepository) Create(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error) {
	query := fmt.Sprintf(`INSERT INTO course (teacher_id, name, description, format, structure, duration, price, language, level)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s`, courseColumns)
	var course models.Course
	err := r.db.GetContext(ctx, &course, query,
		req.TeacherID,
		req.Name,
		req.Description,
		req.Format,
		req.Structure,
		req.Duration,
		req.Price,
		req.Language,
		req.Level,
	)
	if err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}
	return &course, nil
}

// Update merges req into the stored course and rewrites every mutable column
// within one transaction holding a row lock. A missing row yields
// sql.ErrNoRows and nothing is written.
func (r *CourseRepository) Update(ctx context.Context, teacherID, id int64, req dto.UpdateCourseRequest) (*models.Course, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin update course tx: %w", err)
	}

	selectQuery := fmt.Sprintf("SELECT %s FROM course WHERE teacher_id = $1 AND id = $2 FOR UPDATE", courseColumns)
	var current models.Course
	if err := tx.GetContext(ctx, &current, selectQuery, teacherID, id); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("load course %d/%d for update: %w", teacherID, id, err)
	}

	merged := req.Apply(current)

	updateQuery := fmt.Sprintf(`UPDATE course SET
			name = $1,
			description = $2,
			format = $3,
			structure = $4,
			duration = $5,
			price = $6,
			language = $7,
			level = $8
		WHERE teacher_id = $9 AND id = $10
		RETURNING %s`, courseColumns)
	var updated models.Course
	err = tx.GetContext(ctx, &updated, updateQuery,
		merged.Name,
		merged.Description,
		merged.Format,
		merged.Structure,
		merged.Duration,
		merged.Price,
		merged.Language,
		merged.Level,
		teacherID,
		id,
	)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("update course %d/%d: %w", teacherID, id, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit update course tx: %w", err)
	}
	return &updated, nil
}

// Delete removes one course and reports how many rows were affected.
func (r *CourseRepository) Delete(ctx context.Context, teacherID, id int64) (int64, error) {
	const query = `DELETE FROM course WHERE teacher_id = $1 AND id = $2`
	result, err := r.db.ExecContext(ctx, query, teacherID, id)
	if err != nil {
		return 0, fmt.Errorf("delete course %d/%d: %w", teacherID, id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete course %d/%d rows affected: %w", teacherID, id, err)
	}
	return affected, nil
}
