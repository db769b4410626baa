package webapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/tutor-api/internal/dto"
	"github.com/noah-isme/tutor-api/internal/models"
)

type tutorAPI interface {
	ListTeachers(ctx context.Context) ([]models.Teacher, error)
	GetTeacher(ctx context.Context, id int64) (*models.Teacher, error)
	CreateTeacher(ctx context.Context, req dto.CreateTeacherRequest) (*models.Teacher, error)
	ListCourses(ctx context.Context, teacherID int64) ([]models.Course, error)
	CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, teacherID, id int64) (string, error)
}

type registerForm struct {
	Name       string `form:"name"`
	PictureURL string `form:"picture_url"`
	Profile    string `form:"profile"`
}

type courseForm struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	Language    string `form:"language"`
	Level       string `form:"level"`
	Price       string `form:"price"`
}

// Handler renders the HTML pages.
type Handler struct {
	api    tutorAPI
	logger *zap.Logger
}

// NewHandler constructs a Handler.
func NewHandler(api tutorAPI, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{api: api, logger: logger}
}

// Index lists the registered teachers.
func (h *Handler) Index(c *gin.Context) {
	teachers, err := h.api.ListTeachers(c.Request.Context())
	if err != nil && !isNotFound(err) {
		h.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "teachers.html", gin.H{"Title": "Teachers", "Teachers": teachers})
}

// RegisterForm shows the registration form.
func (h *Handler) RegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{"Title": "Register a teacher"})
}

// Register creates a teacher from the posted form and goes back to the list.
func (h *Handler) Register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderRegister(c, http.StatusBadRequest, form, "could not read the form")
		return
	}

	pictureURL := strings.TrimSpace(form.PictureURL)
	profile := strings.TrimSpace(form.Profile)
	_, err := h.api.CreateTeacher(c.Request.Context(), dto.CreateTeacherRequest{
		Name:       strings.TrimSpace(form.Name),
		PictureURL: &pictureURL,
		Profile:    &profile,
	})
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusBadRequest {
			h.renderRegister(c, http.StatusBadRequest, form, "a teacher needs a name")
			return
		}
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// Courses lists the courses of one teacher.
func (h *Handler) Courses(c *gin.Context) {
	teacherID, ok := h.teacherID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	teacher, err := h.api.GetTeacher(ctx, teacherID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	courses, err := h.api.ListCourses(ctx, teacherID)
	if err != nil && !isNotFound(err) {
		h.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "courses.html", gin.H{"Title": "Courses", "Teacher": teacher, "Courses": courses})
}

// AddCourse creates a course for the teacher in the path.
func (h *Handler) AddCourse(c *gin.Context) {
	teacherID, ok := h.teacherID(c)
	if !ok {
		return
	}
	var form courseForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderStatus(c, http.StatusBadRequest, "could not read the form")
		return
	}

	req := dto.CreateCourseRequest{
		TeacherID:   teacherID,
		Name:        strings.TrimSpace(form.Name),
		Description: optional(form.Description),
		Language:    optional(form.Language),
		Level:       optional(form.Level),
	}
	if p := strings.TrimSpace(form.Price); p != "" {
		price, err := strconv.Atoi(p)
		if err != nil {
			h.renderStatus(c, http.StatusBadRequest, "price must be a whole number")
			return
		}
		req.Price = &price
	}

	if _, err := h.api.CreateCourse(c.Request.Context(), req); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusBadRequest {
			h.renderStatus(c, http.StatusBadRequest, "a course needs a name")
			return
		}
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, coursesPath(teacherID))
}

// DeleteCourse removes a course and returns to the course list.
func (h *Handler) DeleteCourse(c *gin.Context) {
	teacherID, ok := h.teacherID(c)
	if !ok {
		return
	}
	courseID, err := strconv.ParseInt(c.Param("course_id"), 10, 64)
	if err != nil {
		h.renderStatus(c, http.StatusBadRequest, "course id must be an integer")
		return
	}
	if _, err := h.api.DeleteCourse(c.Request.Context(), teacherID, courseID); err != nil {
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, coursesPath(teacherID))
}

func (h *Handler) teacherID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.renderStatus(c, http.StatusBadRequest, "teacher id must be an integer")
		return 0, false
	}
	return id, true
}

func (h *Handler) renderRegister(c *gin.Context, status int, form registerForm, message string) {
	c.HTML(status, "register.html", gin.H{"Title": "Register a teacher", "Form": form, "Error": message})
}

// renderError shows the upstream reason for a 404 and a generic message for
// anything else.
func (h *Handler) renderError(c *gin.Context, err error) {
	_ = c.Error(err)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		h.renderStatus(c, http.StatusNotFound, apiErr.Message)
		return
	}
	h.logger.Error("api call failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	h.renderStatus(c, http.StatusInternalServerError, "Internal server error")
}

func (h *Handler) renderStatus(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", gin.H{"Title": http.StatusText(status), "Status": status, "Message": message})
}

func isNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func coursesPath(teacherID int64) string {
	return fmt.Sprintf("/teachers/%d/courses", teacherID)
}
