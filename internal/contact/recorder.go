package contact

import (
	"context"

	"go.uber.org/zap"
)

// LogRecorder writes each submission to the operational log.
type LogRecorder struct {
	logger *zap.Logger
}

// NewLogRecorder creates a LogRecorder.
func NewLogRecorder(logger *zap.Logger) *LogRecorder {
	return &LogRecorder{logger: logger}
}

func (l *LogRecorder) Record(_ context.Context, s Submission) error {
	l.logger.Info("contact form submission",
		zap.String("name", s.Name),
		zap.String("email", s.Email),
		zap.String("message", s.Message),
	)
	return nil
}
