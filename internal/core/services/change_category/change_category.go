package changecategory

import (
	"context"
	"errors"

	c "newsdesk/internal/core/domain/common"
	e "newsdesk/internal/core/domain/errors"
	"newsdesk/internal/core/domain/logging"
	"newsdesk/internal/core/domain/news"
	"newsdesk/internal/core/domain/user"
	"newsdesk/internal/core/services"
	"newsdesk/internal/core/services/auth"
)

type Input struct {
	ID          news.CategoryID
	Name        string
	Description c.Optional[string]
	Ico         c.Optional[string]
	User        user.User
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	Category news.Category
}

type service struct {
	log                logging.Logger
	categoryRepository news.CategoryRepository
}

func New(log logging.Logger, categoryRepository news.CategoryRepository) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if categoryRepository == nil {
		panic(e.NewNilArgumentError("categoryRepository"))
	}
	return &service{log: log, categoryRepository: categoryRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	category, err := s.categoryRepository.GetByID(ctx, input.ID)
	if errors.Is(err, context.Canceled) || errors.Is(err, news.ErrCategoryDoesNotExist) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not get category.", logging.Entry("categoryId", input.ID), logging.Entry("err", err))
		return result, err
	}

	if category.Name != input.Name {
		other, err := s.categoryRepository.GetByName(ctx, input.Name)
		if err == nil && other.ID != category.ID {
			return result, news.ErrCategoryAlreadyExists
		}
		if err != nil && !errors.Is(err, news.ErrCategoryDoesNotExist) {
			if !errors.Is(err, context.Canceled) {
				s.log.Error(ctx, "Could not check category name.", logging.Entry("err", err))
			}
			return result, err
		}
	}

	category.Name = input.Name
	category.Description = input.Description
	category.Ico = input.Ico
	category, err = s.categoryRepository.Update(ctx, category)
	if errors.Is(err, context.Canceled) ||
		errors.Is(err, news.ErrCategoryDoesNotExist) ||
		errors.Is(err, news.ErrCategoryAlreadyExists) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not change category.", logging.Entry("categoryId", input.ID), logging.Entry("err", err))
		return result, err
	}

	s.log.Info(
		ctx,
		"Category has been changed.",
		logging.Entry("categoryId", category.ID),
		logging.Entry("userId", input.User.ID),
	)
	return Result{Category: category}, nil
}
