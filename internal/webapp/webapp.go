// Package webapp serves the HTML front-end that sits in front of the JSON API.
package webapp

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/tutor-api/pkg/logger"
	reqidmiddleware "github.com/noah-isme/tutor-api/pkg/middleware/requestid"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
	}).ParseFS(templateFS, "templates/*.html")
}

// NewEngine wires the pages onto a gin engine.
func NewEngine(h *Handler, l *zap.Logger) (*gin.Engine, error) {
	tmpl, err := Templates()
	if err != nil {
		return nil, err
	}
	if l == nil {
		l = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(l))
	r.SetHTMLTemplate(tmpl)

	r.GET("/", h.Index)
	r.GET("/register", h.RegisterForm)
	r.POST("/register-post", h.Register)
	r.GET("/teachers/:id/courses", h.Courses)
	r.POST("/teachers/:id/courses", h.AddCourse)
	r.POST("/teachers/:id/courses/:course_id/delete", h.DeleteCourse)

	return r, nil
}
