package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/askbedrock/internal/services"
)

const indexTemplate = "index.html"

type AnswerHandler struct {
	svc services.AnswerService
}

func NewAnswerHandler(svc services.AnswerService) *AnswerHandler {
	return &AnswerHandler{svc: svc}
}

// Index serves both GET and POST on "/". Failures are rendered into the page, never as an error status.
func (h *AnswerHandler) Index(c *gin.Context) {
	var question, answer string

	if c.Request.Method == http.MethodPost {
		question = c.PostForm("question")
		if question != "" {
			a, err := h.svc.GetAnswer(c.Request.Context(), question)
			if err != nil {
				_ = c.Error(err)
				a = answerText(err)
			}
			answer = a
		}
	}

	c.HTML(http.StatusOK, indexTemplate, gin.H{
		"question": question,
		"answer":   answer,
	})
}
