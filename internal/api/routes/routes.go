package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yoockh/askbedrock/internal/api/handlers"
	"github.com/yoockh/askbedrock/internal/api/middleware"
	"github.com/yoockh/askbedrock/web"
)

type Deps struct {
	Answer *handlers.AnswerHandler
	Logger *logrus.Logger
}

// NewRouter builds the engine with recovery, request logging and the page templates.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if d.Logger != nil {
		r.Use(middleware.RequestLogger(d.Logger))
	}
	r.SetHTMLTemplate(web.Templates())

	RegisterRoutes(r, d)
	return r
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.GET("/", d.Answer.Index)
	r.POST("/", d.Answer.Index)
}
