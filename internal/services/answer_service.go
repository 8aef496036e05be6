package services

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/yoockh/askbedrock/internal/providers/llm"
	"github.com/yoockh/askbedrock/internal/utils"
)

type AnswerService interface {
	// GetAnswer makes exactly one provider call per invocation. Nothing is cached.
	GetAnswer(ctx context.Context, question string) (string, error)
}

type answerService struct {
	llm    llm.Provider
	logger *logrus.Logger
}

func NewAnswerService(provider llm.Provider, logger *logrus.Logger) AnswerService {
	if logger == nil {
		logger = logrus.New()
	}
	return &answerService{llm: provider, logger: logger}
}

func (s *answerService) GetAnswer(ctx context.Context, question string) (string, error) {
	const op = "AnswerService.GetAnswer"

	if question == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "question is required", nil)
	}

	answer, err := s.llm.Complete(ctx, question)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"op":   op,
			"code": utils.CodeOf(err),
		}).WithError(err).Warn("inference call failed")
		return "", err
	}
	return answer, nil
}
