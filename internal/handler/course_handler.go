package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/tutor-api/internal/dto"
	"github.com/noah-isme/tutor-api/internal/service"
	appErrors "github.com/noah-isme/tutor-api/pkg/errors"
	"github.com/noah-isme/tutor-api/pkg/response"
)

// CourseHandler wires course services to HTTP routes.
type CourseHandler struct {
	courses *service.CourseService
	exports *service.ExportService
}

// NewCourseHandler constructs a new CourseHandler.
func NewCourseHandler(courses *service.CourseService, exports *service.ExportService) *CourseHandler {
	return &CourseHandler{courses: courses, exports: exports}
}

// ListByTeacher godoc
// @Summary List courses of a teacher
// @Tags Courses
// @Produce json
// @Param teacher_id path int true "Teacher ID"
// @Success 200 {array} models.Course
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /courses/{teacher_id} [get]
func (h *CourseHandler) ListByTeacher(c *gin.Context) {
	teacherID, err := pathID(c, "teacher_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	courses, err := h.courses.ListByTeacher(c.Request.Context(), teacherID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, courses)
}

// Get godoc
// @Summary Get course
// @Tags Courses
// @Produce json
// @Param teacher_id path int true "Teacher ID"
// @Param id path int true "Course ID"
// @Success 200 {object} models.Course
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /courses/{teacher_id}/{id} [get]
func (h *CourseHandler) Get(c *gin.Context) {
	teacherID, id, ok := courseKey(c)
	if !ok {
		return
	}
	course, err := h.courses.Get(c.Request.Context(), teacherID, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, course)
}

// Create godoc
// @Summary Create course
// @Tags Courses
// @Accept json
// @Produce json
// @Param payload body dto.CreateCourseRequest true "Course payload"
// @Success 200 {object} models.Course
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /courses [post]
func (h *CourseHandler) Create(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.InvalidInput(err, "invalid course payload"))
		return
	}
	course, err := h.courses.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, course)
}

// Update godoc
// @Summary Update course
// @Description Fields present in the body replace the stored values; absent fields are kept.
// @Tags Courses
// @Accept json
// @Produce json
// @Param teacher_id path int true "Teacher ID"
// @Param id path int true "Course ID"
// @Param payload body dto.UpdateCourseRequest true "Fields to change"
// @Success 200 {object} models.Course
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /courses/{teacher_id}/{id} [put]
func (h *CourseHandler) Update(c *gin.Context) {
	teacherID, id, ok := courseKey(c)
	if !ok {
		return
	}
	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.InvalidInput(err, "invalid course payload"))
		return
	}
	course, err := h.courses.Update(c.Request.Context(), teacherID, id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, course)
}

// Delete godoc
// @Summary Delete course
// @Tags Courses
// @Produce json
// @Param teacher_id path int true "Teacher ID"
// @Param id path int true "Course ID"
// @Success 200 {string} string "deleted N course record(s)"
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /courses/{teacher_id}/{id} [delete]
func (h *CourseHandler) Delete(c *gin.Context) {
	teacherID, id, ok := courseKey(c)
	if !ok {
		return
	}
	msg, err := h.courses.Delete(c.Request.Context(), teacherID, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, msg)
}

// Export godoc
// @Summary Download the course catalog of a teacher
// @Tags Courses
// @Produce text/csv
// @Produce application/pdf
// @Param id path int true "Teacher ID"
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /teachers/{id}/courses/export [get]
func (h *CourseHandler) Export(c *gin.Context) {
	teacherID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	file, err := h.exports.CourseCatalog(c.Request.Context(), teacherID, c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

func courseKey(c *gin.Context) (int64, int64, bool) {
	teacherID, err := pathID(c, "teacher_id")
	if err != nil {
		response.Error(c, err)
		return 0, 0, false
	}
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return 0, 0, false
	}
	return teacherID, id, true
}
