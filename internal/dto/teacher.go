package dto

import "github.com/noah-isme/tutor-api/internal/models"

// CreateTeacherRequest is the payload for registering a teacher. PictureURL
// and Profile must be present but may be empty; Name must not be empty.
type CreateTeacherRequest struct {
	Name       string  `json:"name" validate:"required"`
	PictureURL *string `json:"picture_url" validate:"required"`
	Profile    *string `json:"profile" validate:"required"`
}

// UpdateTeacherRequest carries the fields to replace; nil fields keep their
// stored value.
type UpdateTeacherRequest struct {
	Name       *string `json:"name"`
	PictureURL *string `json:"picture_url"`
	Profile    *string `json:"profile"`
}

// Apply overlays the present fields on current. The id is never changed.
func (r UpdateTeacherRequest) Apply(current models.Teacher) models.Teacher {
	merged := current
	if r.Name != nil {
		merged.Name = *r.Name
	}
	if r.PictureURL != nil {
		merged.PictureURL = *r.PictureURL
	}
	if r.Profile != nil {
		merged.Profile = *r.Profile
	}
	return merged
}

// Empty reports whether no field is present.
func (r UpdateTeacherRequest) Empty() bool {
	return r.Name == nil && r.PictureURL == nil && r.Profile == nil
}
