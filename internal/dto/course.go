package dto

import "github.com/noah-isme/tutor-api/internal/models"

// CreateCourseRequest is the payload for adding a course to a teacher.
type CreateCourseRequest struct {
	TeacherID   int64   `json:"teacher_id" validate:"required,gt=0"`
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	Format      *string `json:"format"`
	Structure   *string `json:"structure"`
	Duration    *string `json:"duration"`
	Price       *int    `json:"price"`
	Language    *string `json:"language"`
	Level       *string `json:"level"`
}

// UpdateCourseRequest carries the fields to replace; nil fields keep their
// stored value. The owning teacher cannot be changed.
type UpdateCourseRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Format      *string `json:"format"`
	Structure   *string `json:"structure"`
	Duration    *string `json:"duration"`
	Price       *int    `json:"price"`
	Language    *string `json:"language"`
	Level       *string `json:"level"`
}

// Apply overlays the present fields on current. Identity, owner and the
// store-assigned time are carried over untouched; optional fields absent from
// both the request and the stored row stay nil.
func (r UpdateCourseRequest) Apply(current models.Course) models.Course {
	merged := current
	if r.Name != nil {
		merged.Name = *r.Name
	}
	merged.Description = pick(r.Description, current.Description)
	merged.Format = pick(r.Format, current.Format)
	merged.Structure = pick(r.Structure, current.Structure)
	merged.Duration = pick(r.Duration, current.Duration)
	merged.Price = pick(r.Price, current.Price)
	merged.Language = pick(r.Language, current.Language)
	merged.Level = pick(r.Level, current.Level)
	return merged
}

// Empty reports whether no field is present.
func (r UpdateCourseRequest) Empty() bool {
	return r.Name == nil && r.Description == nil && r.Format == nil && r.Structure == nil &&
		r.Duration == nil && r.Price == nil && r.Language == nil && r.Level == nil
}

func pick[T any](patch, current *T) *T {
	if patch != nil {
		v := *patch
		return &v
	}
	return current
}
