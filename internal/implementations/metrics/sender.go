package metrics

import (
	"context"
	"time"

	e "newsdesk/internal/core/domain/errors"
	"newsdesk/internal/core/domain/notification"
)

type sender struct {
	metrics *Metrics
	inner   notification.Sender
}

func NewSender(metrics *Metrics, inner notification.Sender) notification.Sender {
	if metrics == nil {
		panic(e.NewNilArgumentError("metrics"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &sender{metrics: metrics, inner: inner}
}

func (s *sender) Send(ctx context.Context, message notification.Message) error {
	start := time.Now()
	err := s.inner.Send(ctx, message)
	s.metrics.MailSendDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.MailsTotal.WithLabelValues("failure").Inc()
		return err
	}
	s.metrics.MailsTotal.WithLabelValues("success").Inc()
	return nil
}
