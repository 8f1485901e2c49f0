package notification

import (
	"context"

	c "newsdesk/internal/core/domain/common"
)

type Message struct {
	To       c.Email
	Subject  string
	HTMLBody string
}

// Sender delivers a message to a single recipient.
// A nil error means the transport accepted the message.
type Sender interface {
	Send(ctx context.Context, message Message) error
}
