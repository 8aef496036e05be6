package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yoockh/askbedrock/config"
	"github.com/yoockh/askbedrock/internal/api/handlers"
	"github.com/yoockh/askbedrock/internal/api/routes"
	"github.com/yoockh/askbedrock/internal/logger"
	"github.com/yoockh/askbedrock/internal/providers/llm"
	"github.com/yoockh/askbedrock/internal/services"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFile)

	provider, err := newProvider(context.Background(), cfg)
	if err != nil {
		log.WithError(err).Fatal("inference provider init error")
	}

	svc := services.NewAnswerService(provider, log)

	gin.SetMode(cfg.GinMode)
	r := routes.NewRouter(routes.Deps{
		Answer: handlers.NewAnswerHandler(svc),
		Logger: log,
	})

	log.WithFields(logrus.Fields{
		"addr":     cfg.Addr(),
		"provider": cfg.Provider,
		"mode":     gin.Mode(),
	}).Info("starting server")
	if err := r.Run(cfg.Addr()); err != nil {
		// Fatal exits without running defers
		_ = provider.Close()
		log.WithError(err).Fatal("server stopped")
	}
}

func newProvider(ctx context.Context, cfg config.Config) (llm.Provider, error) {
	switch cfg.Provider {
	case config.ProviderVertex:
		v, err := llm.NewVertexGemini(ctx, cfg.VertexProjectID, cfg.VertexLocation, cfg.VertexModel)
		if err != nil {
			return nil, err
		}
		return v, nil
	case config.ProviderBedrock:
		client, err := config.NewBedrockClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return llm.NewBedrockAnthropic(client, cfg.ModelID), nil
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q (want %q or %q)", cfg.Provider, config.ProviderBedrock, config.ProviderVertex)
	}
}
