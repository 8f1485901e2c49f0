package getnews

import (
	"context"
	"errors"

	e "newsdesk/internal/core/domain/errors"
	"newsdesk/internal/core/domain/logging"
	"newsdesk/internal/core/domain/news"
	"newsdesk/internal/core/domain/user"
	"newsdesk/internal/core/services"
	"newsdesk/internal/core/services/auth"
)

type Input struct {
	ID   news.ID
	User user.User
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	News news.News
}

type service struct {
	log            logging.Logger
	newsRepository news.NewsRepository
}

func New(log logging.Logger, newsRepository news.NewsRepository) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if newsRepository == nil {
		panic(e.NewNilArgumentError("newsRepository"))
	}
	return &service{log: log, newsRepository: newsRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	n, err := s.newsRepository.GetByID(ctx, input.ID)
	if errors.Is(err, context.Canceled) || errors.Is(err, news.ErrNewsDoesNotExist) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not get news.", logging.Entry("newsId", input.ID), logging.Entry("err", err))
		return result, err
	}
	return Result{News: n}, nil
}
