package notification

import (
	"context"
	"fmt"
	"sync"
)

type FakeSender struct {
	Sent        []Message
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeSender() *FakeSender {
	return &FakeSender{}
}

func (s *FakeSender) Send(ctx context.Context, message Message) error {
	if s.ReturnError {
		return fmt.Errorf("could not send message to %s", message.To)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, message)
	return nil
}

func (s *FakeSender) LastSent() Message {
	s.lock.Lock()
	defer s.lock.Unlock()
	l := len(s.Sent)
	if l == 0 {
		panic("Sent count is 0.")
	}
	return s.Sent[l-1]
}
