package logger

import "go.uber.org/zap"

// New создает zap logger в зависимости от окружения.
func New(env string) *zap.Logger {
	var (
		log *zap.Logger
		err error
	)

	switch env {
	case "local", "dev":
		log, err = zap.NewDevelopment()
	default:
		log, err = zap.NewProduction()
	}

	if err != nil {
		panic("failed to initialize zap logger: " + err.Error())
	}

	return log
}
