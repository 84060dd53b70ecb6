// Package router builds the gin engine and mounts every API route on it.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	adminctrl "github.com/lshigami/tinysteps/internal/controller/admin"
	userctrl "github.com/lshigami/tinysteps/internal/controller/user"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const APIPrefix = "/api/v1"

type Controllers struct {
	Questions *adminctrl.QuestionController
	Authoring *adminctrl.AuthoringController
	Lessons   *userctrl.LessonController
	Play      *userctrl.PlayController
}

// NewEngine returns an engine with zerolog request logging, recovery, CORS
// and the Swagger UI at /swagger/index.html.
func NewEngine(ginMode string) *gin.Engine {
	if ginMode == "" {
		ginMode = gin.DebugMode
	}
	gin.SetMode(ginMode)

	r := gin.New()
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return r
}

// Register mounts admin routes under /api/v1/admin and learner routes under /api/v1.
func Register(r *gin.Engine, c Controllers) {
	api := r.Group(APIPrefix)

	admin := api.Group("/admin")
	c.Questions.RegisterRoutes(admin)
	c.Authoring.RegisterRoutes(admin)

	c.Lessons.RegisterRoutes(api)
	c.Play.RegisterRoutes(api)
}
