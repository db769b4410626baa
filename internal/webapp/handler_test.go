package webapp

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/tutor-api/internal/dto"
	"github.com/noah-isme/tutor-api/internal/models"
)

type stubAPI struct {
	teachers   []models.Teacher
	courses    []models.Course
	err        error
	created    []dto.CreateTeacherRequest
	newCourses []dto.CreateCourseRequest
	deleted    [][2]int64
}

func (s *stubAPI) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	return s.teachers, s.err
}

func (s *stubAPI) GetTeacher(ctx context.Context, id int64) (*models.Teacher, error) {
	for _, t := range s.teachers {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, &APIError{Status: http.StatusNotFound, Message: "teacher not found"}
}

func (s *stubAPI) CreateTeacher(ctx context.Context, req dto.CreateTeacherRequest) (*models.Teacher, error) {
	if req.Name == "" || req.PictureURL == nil || req.Profile == nil {
		return nil, &APIError{Status: http.StatusBadRequest, Message: "invalid teacher payload"}
	}
	if s.err != nil {
		return nil, s.err
	}
	s.created = append(s.created, req)
	return &models.Teacher{ID: 1, Name: req.Name}, nil
}

func (s *stubAPI) ListCourses(ctx context.Context, teacherID int64) ([]models.Course, error) {
	if len(s.courses) == 0 {
		return nil, &APIError{Status: http.StatusNotFound, Message: "no courses found for teacher"}
	}
	return s.courses, nil
}

func (s *stubAPI) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error) {
	if req.Name == "" {
		return nil, &APIError{Status: http.StatusBadRequest, Message: "invalid course payload"}
	}
	s.newCourses = append(s.newCourses, req)
	return &models.Course{ID: 9, TeacherID: req.TeacherID, Name: req.Name}, nil
}

func (s *stubAPI) DeleteCourse(ctx context.Context, teacherID, id int64) (string, error) {
	s.deleted = append(s.deleted, [2]int64{teacherID, id})
	return "deleted 1 course record(s)", nil
}

func newTestWebapp(t *testing.T, api *stubAPI) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r, err := NewEngine(NewHandler(api, nil), nil)
	require.NoError(t, err)
	return r
}

func postForm(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestIndexListsTeachers(t *testing.T) {
	r := newTestWebapp(t, &stubAPI{teachers: []models.Teacher{{ID: 1, Name: "Ana <b>", Profile: "math"}}})

	w := get(r, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ana &lt;b&gt;")
	assert.Contains(t, w.Body.String(), `/teachers/1/courses`)
}

func TestIndexWithoutTeachersIsNotAnError(t *testing.T) {
	r := newTestWebapp(t, &stubAPI{err: &APIError{Status: http.StatusNotFound, Message: "no teachers found"}})

	w := get(r, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No teachers registered yet.")
}

func TestIndexHidesUpstreamFailure(t *testing.T) {
	r := newTestWebapp(t, &stubAPI{err: errors.New("dial tcp: connection refused")})

	w := get(r, "/")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestRegisterFlow(t *testing.T) {
	api := &stubAPI{}
	r := newTestWebapp(t, api)

	w := get(r, "/register")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `action="/register-post"`)

	w = postForm(r, "/register-post", url.Values{"name": {" A "}, "picture_url": {"u"}, "profile": {"p"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	require.Len(t, api.created, 1)
	assert.Equal(t, "A", api.created[0].Name)
	assert.Equal(t, "u", *api.created[0].PictureURL)
	assert.Equal(t, "p", *api.created[0].Profile)
}

func TestRegisterRejectedFormIsRedisplayed(t *testing.T) {
	api := &stubAPI{}
	r := newTestWebapp(t, api)

	w := postForm(r, "/register-post", url.Values{"name": {"  "}, "picture_url": {"u"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "a teacher needs a name")
	assert.Contains(t, w.Body.String(), `value="u"`)
	assert.Empty(t, api.created)
}

func TestRegisterAcceptsBlankOptionalFields(t *testing.T) {
	api := &stubAPI{}
	r := newTestWebapp(t, api)

	w := postForm(r, "/register-post", url.Values{"name": {"A"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	require.Len(t, api.created, 1)
	assert.Equal(t, "", *api.created[0].PictureURL)
	assert.Equal(t, "", *api.created[0].Profile)
}

func TestAddCourseRejectedByAPIIsBadRequest(t *testing.T) {
	api := &stubAPI{teachers: []models.Teacher{{ID: 1, Name: "Ana"}}}
	r := newTestWebapp(t, api)

	w := postForm(r, "/teachers/1/courses", url.Values{"name": {" "}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "a course needs a name")
	assert.NotContains(t, w.Body.String(), "Internal server error")
	assert.Empty(t, api.newCourses)
}

func TestCoursesPage(t *testing.T) {
	api := &stubAPI{
		teachers: []models.Teacher{{ID: 1, Name: "Ana"}},
		courses:  []models.Course{{ID: 2, TeacherID: 1, Name: "Intro", Time: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}},
	}
	r := newTestWebapp(t, api)

	w := get(r, "/teachers/1/courses")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Courses of Ana")
	assert.Contains(t, w.Body.String(), "2024-03-01")
	assert.Contains(t, w.Body.String(), `/teachers/1/courses/2/delete`)

	w = get(r, "/teachers/5/courses")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "teacher not found")

	w = get(r, "/teachers/x/courses")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddAndDeleteCourse(t *testing.T) {
	api := &stubAPI{teachers: []models.Teacher{{ID: 1, Name: "Ana"}}}
	r := newTestWebapp(t, api)

	w := postForm(r, "/teachers/1/courses", url.Values{"name": {"Intro"}, "description": {"basics"}, "price": {"30"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/teachers/1/courses", w.Header().Get("Location"))
	require.Len(t, api.newCourses, 1)
	assert.Equal(t, "basics", *api.newCourses[0].Description)
	assert.Equal(t, 30, *api.newCourses[0].Price)
	assert.Nil(t, api.newCourses[0].Level)

	w = postForm(r, "/teachers/1/courses", url.Values{"name": {"Intro"}, "price": {"cheap"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postForm(r, "/teachers/1/courses/2/delete", url.Values{})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, [][2]int64{{1, 2}}, api.deleted)
}
