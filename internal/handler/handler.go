package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/tutor-api/pkg/errors"
)

// Handlers groups every HTTP handler so the router can be wired in one place.
type Handlers struct {
	Teacher *TeacherHandler
	Course  *CourseHandler
	Health  *HealthHandler
}

// pathID reads an integer path parameter.
func pathID(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, appErrors.InvalidInput(err, name+" must be an integer")
	}
	return id, nil
}
