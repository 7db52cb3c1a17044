package service

import (
	"context"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/curelink-health/chat-service/internal/config"
)

// Service is the coordination core: the broadcast claim engine, the
// conversation resolver and the prescription distributor share one
// repository and one notifier and are exercised together.
type Service struct {
	repository DBRepo
	notifier   Notifier
}

func New(repo DBRepo, notifier Notifier) *Service {
	return &Service{
		repository: repo,
		notifier:   notifier,
	}
}

type loggerIface = logger_lib.LoggerInterface

func (s *Service) logger(ctx context.Context, funcName string) loggerIface {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	if logger != nil {
		logger.AddFuncName(funcName)
	}
	return logger
}

func logError(logger loggerIface, msg string) {
	if logger != nil {
		logger.Error(msg)
	}
}

func logInfo(logger loggerIface, msg string) {
	if logger != nil {
		logger.Info(msg)
	}
}
