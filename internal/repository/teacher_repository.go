package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/tutor-api/internal/dto"
	"github.com/noah-isme/tutor-api/internal/models"
)

// The teacher columns are nullable; reads coalesce NULL to the zero value.
const teacherColumns = `id, COALESCE(name, '') AS name, COALESCE(picture_url, '') AS picture_url, COALESCE(profile, '') AS profile`

// TeacherRepository manages persistence for teachers.
type TeacherRepository struct {
	db *sqlx.DB
}

// NewTeacherRepository constructs a TeacherRepository.
func NewTeacherRepository(db *sqlx.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// List returns every teacher ordered by id.
func (r *TeacherRepository) List(ctx context.Context) ([]models.Teacher, error) {
	query := fmt.Sprintf("SELECT %s FROM teacher ORDER BY id", teacherColumns)
	teachers := []models.Teacher{}
	if err := r.db.SelectContext(ctx, &teachers, query); err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	return teachers, nil
}

// FindByID fetches a teacher by ID. A missing row yields sql.ErrNoRows.
func (r *TeacherRepository) FindByID(ctx context.Context, id int64) (*models.Teacher, error) {
	query := fmt.Sprintf("SELECT %s FROM teacher WHERE id = $1", teacherColumns)
	var teacher models.Teacher
	if err := r.db.GetContext(ctx, &teacher, query, id); err != nil {
		return nil, fmt.Errorf("find teacher %d: %w", id, err)
	}
	return &teacher, nil
}

// Create inserts a teacher and returns the row as stored, id included.
func (r *TeacherRepository) Create(ctx context.Context, req dto.CreateTeacherRequest) (*models.Teacher, error) {
	query := fmt.Sprintf("INSERT INTO teacher (name, picture_url, profile) VALUES ($1, $2, $3) RETURNING %s", teacherColumns)
	var teacher models.Teacher
	if err := r.db.GetContext(ctx, &teacher, query, req.Name, valueOf(req.PictureURL), valueOf(req.Profile)); err != nil {
		return nil, fmt.Errorf("create teacher: %w", err)
	}
	return &teacher, nil
}

// Update merges req into the stored teacher and rewrites the full row. The
// read and the write share one transaction and the row is locked between
// them, so concurrent updates serialise instead of overwriting each other.
// A missing row yields sql.ErrNoRows and nothing is written.
func (r *TeacherRepository) Update(ctx context.Context, id int64, req dto.UpdateTeacherRequest) (*models.Teacher, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin update teacher tx: %w", err)
	}

	selectQuery := fmt.Sprintf("SELECT %s FROM teacher WHERE id = $1 FOR UPDATE", teacherColumns)
	var current models.Teacher
	if err := tx.GetContext(ctx, &current, selectQuery, id); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("load teacher %d for update: %w", id, err)
	}

	merged := req.Apply(current)

	updateQuery := fmt.Sprintf("UPDATE teacher SET name = $1, picture_url = $2, profile = $3 WHERE id = $4 RETURNING %s", teacherColumns)
	var updated models.Teacher
	if err := tx.GetContext(ctx, &updated, updateQuery, merged.Name, merged.PictureURL, merged.Profile, id); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("update teacher %d: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit update teacher tx: %w", err)
	}
	return &updated, nil
}

// Delete removes the teacher and reports how many rows were affected.
func (r *TeacherRepository) Delete(ctx context.Context, id int64) (int64, error) {
	const query = `DELETE FROM teacher WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("delete teacher %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete teacher %d rows affected: %w", id, err)
	}
	return affected, nil
}

func valueOf(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
