package utils

import "go.uber.org/zap"

func SetupLogger() *zap.SugaredLogger {
	logger := zap.Must(zap.NewDevelopment())
	return logger.Sugar()
}
