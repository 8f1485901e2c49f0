package email

import (
	"context"

	e "newsdesk/internal/core/domain/errors"
	"newsdesk/internal/core/domain/logging"
	"newsdesk/internal/core/domain/notification"
)

// LoggingSender writes messages to the log instead of delivering them.
// It is used in test mode.
type LoggingSender struct {
	log logging.Logger
}

func NewLoggingSender(log logging.Logger) *LoggingSender {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &LoggingSender{log: log}
}

func (s *LoggingSender) Send(ctx context.Context, message notification.Message) error {
	s.log.Info(
		ctx,
		"E-mail has been captured in test mode.",
		logging.Entry("to", message.To),
		logging.Entry("subject", message.Subject),
		logging.Entry("body", message.HTMLBody),
	)
	return nil
}
