package createcategory

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
	_, err = s.categoryRepository.GetByName(ctx, input.Name)
	if err == nil {
		return result, news.ErrCategoryAlreadyExists
	}
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if !errors.Is(err, news.ErrCategoryDoesNotExist) {
		s.log.Error(ctx, "Could not check category name.", logging.Entry("name", input.Name), logging.Entry("err", err))
		return result, err
	}

	category, err := s.categoryRepository.Create(ctx, news.CreateCategoryInput{
		Name:        input.Name,
		Description: input.Description,
		Ico:         input.Ico,
	})
	if errors.Is(err, context.Canceled) || errors.Is(err, news.ErrCategoryAlreadyExists) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not create category.", logging.Entry("name", input.Name), logging.Entry("err", err))
		return result, err
	}

	s.log.Info(
		ctx,
		"Category has been created.",
		logging.Entry("categoryId", category.ID),
		logging.Entry("userId", input.User.ID),
	)
	return Result{Category: category}, nil
}
