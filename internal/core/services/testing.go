package services

import (
	"context"
	"sync"
)

// FakeService records every input and answers with Result or Err.
type FakeService[T any, S any] struct {
	Result S
	Err    error
	Inputs []T
	lock   sync.Mutex
}

func NewFakeService[T any, S any]() *FakeService[T, S] {
	return &FakeService[T, S]{}
}

func (s *FakeService[T, S]) Run(ctx context.Context, input T) (result S, err error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Inputs = append(s.Inputs, input)
	if s.Err != nil {
		return result, s.Err
	}
	return s.Result, nil
}
