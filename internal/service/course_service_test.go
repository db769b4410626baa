package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/tutor-api/internal/dto"
	"github.com/noah-isme/tutor-api/internal/models"
	appErrors "github.com/noah-isme/tutor-api/pkg/errors"
)

func seededCourse() models.Course {
	return models.Course{
		ID:          2,
		TeacherID:   1,
		Name:        "Intro",
		Time:        time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		Description: strPtr("basics"),
		Price:       intPtr(30),
		Language:    strPtr("English"),
	}
}

func TestCourseServicePriceUpdateKeepsName(t *testing.T) {
	svc := NewCourseService(newStubCourseRepo(seededCourse()), nil, nil, nil)

	updated, err := svc.Update(context.Background(), 1, 2, dto.UpdateCourseRequest{Price: intPtr(50)})
	require.NoError(t, err)
	assert.Equal(t, "Intro", updated.Name)
	require.NotNil(t, updated.Price)
	assert.Equal(t, 50, *updated.Price)
	assert.Equal(t, "basics", *updated.Description)
	assert.Nil(t, updated.Level)
}

func TestCourseServiceEmptyUpdateIsIdentity(t *testing.T) {
	original := seededCourse()
	svc := NewCourseService(newStubCourseRepo(original), nil, nil, nil)

	updated, err := svc.Update(context.Background(), 1, 2, dto.UpdateCourseRequest{})
	require.NoError(t, err)
	assert.Equal(t, original, *updated)
}

func TestCourseServiceWrongTeacherIsNotFound(t *testing.T) {
	svc := NewCourseService(newStubCourseRepo(seededCourse()), nil, nil, nil)
	ctx := context.Background()

	_, err := svc.Get(ctx, 9, 2)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "course not found", appErr.Message)

	_, err = svc.Update(ctx, 9, 2, dto.UpdateCourseRequest{Name: strPtr("X")})
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}

func TestCourseServiceListEmptyIsNotFound(t *testing.T) {
	svc := NewCourseService(newStubCourseRepo(seededCourse()), nil, nil, nil)

	_, err := svc.ListByTeacher(context.Background(), 5)
	require.Error(t, err)
	assert.Equal(t, "no courses found for teacher", appErrors.FromError(err).Message)
}

func TestCourseServiceCreateValidation(t *testing.T) {
	svc := NewCourseService(newStubCourseRepo(), nil, nil, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.CreateCourseRequest{Name: "No owner"})
	assert.True(t, errors.Is(err, appErrors.ErrInvalidInput))

	_, err = svc.Create(ctx, dto.CreateCourseRequest{TeacherID: 1})
	assert.True(t, errors.Is(err, appErrors.ErrInvalidInput))

	created, err := svc.Create(ctx, dto.CreateCourseRequest{TeacherID: 1, Name: "Test Course", Language: strPtr("English")})
	require.NoError(t, err)
	got, err := svc.Get(ctx, 1, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *got)
}

func TestCourseServiceDeleteIsIdempotent(t *testing.T) {
	svc := NewCourseService(newStubCourseRepo(seededCourse()), nil, nil, nil)
	ctx := context.Background()

	msg, err := svc.Delete(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "deleted 1 course record(s)", msg)

	msg, err = svc.Delete(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "deleted 0 course record(s)", msg)
}
