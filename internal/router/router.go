// Package router builds the gin engine: global middleware first, then the
// system routes and the teacher and course groups.
package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/tutor-api/internal/handler"
	"github.com/noah-isme/tutor-api/internal/middleware"
	"github.com/noah-isme/tutor-api/internal/service"
	"github.com/noah-isme/tutor-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/tutor-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/tutor-api/pkg/middleware/requestid"
)

// Options carries what the engine needs besides the handlers.
type Options struct {
	Logger         *zap.Logger
	Metrics        *service.MetricsService
	AllowedOrigins []string
	EnableDocs     bool
}

// New returns an engine with every route registered.
func New(h *handler.Handlers, opts Options) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(opts.Logger))
	r.Use(corsmiddleware.New(opts.AllowedOrigins))
	r.Use(middleware.Metrics(opts.Metrics))

	registerSystemRoutes(r, h, opts.EnableDocs)
	registerTeacherRoutes(r, h)
	registerCourseRoutes(r, h)

	return r
}

func registerSystemRoutes(r *gin.Engine, h *handler.Handlers, enableDocs bool) {
	r.GET("/health", h.Health.Health)
	r.GET("/ready", h.Health.Ready)
	r.GET("/metrics", h.Health.Prometheus)

	if enableDocs {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

func registerTeacherRoutes(r *gin.Engine, h *handler.Handlers) {
	teachers := r.Group("/teachers")
	teachers.GET("", h.Teacher.List)
	teachers.POST("", h.Teacher.Create)
	teachers.GET("/:id", h.Teacher.Get)
	teachers.PUT("/:id", h.Teacher.Update)
	teachers.DELETE("/:id", h.Teacher.Delete)
	teachers.GET("/:id/courses/export", h.Course.Export)
}

func registerCourseRoutes(r *gin.Engine, h *handler.Handlers) {
	courses := r.Group("/courses")
	courses.POST("", h.Course.Create)
	courses.GET("/:teacher_id", h.Course.ListByTeacher)
	courses.GET("/:teacher_id/:id", h.Course.Get)
	courses.PUT("/:teacher_id/:id", h.Course.Update)
	courses.DELETE("/:teacher_id/:id", h.Course.Delete)
}
