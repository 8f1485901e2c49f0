package news

import (
	"context"
	"time"

	c "newsdesk/internal/core/domain/common"
	"newsdesk/internal/core/domain/user"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, id CategoryID) (Category, error)
	GetByName(ctx context.Context, name string) (Category, error)
	Create(ctx context.Context, input CreateCategoryInput) (Category, error)
	Update(ctx context.Context, category Category) (Category, error)
	Delete(ctx context.Context, id CategoryID) error
}

type CreateCategoryInput struct {
	Name        string
	Description c.Optional[string]
	Ico         c.Optional[string]
}

type NewsRepository interface {
	List(ctx context.Context, input ListInput) ([]News, error)
	GetByID(ctx context.Context, id ID) (News, error)
	Create(ctx context.Context, input CreateInput) (News, error)
	Update(ctx context.Context, input UpdateInput) (News, error)
	Delete(ctx context.Context, id ID) error
	CountByCategory(ctx context.Context, categoryID CategoryID) (int64, error)
}

type ListInput struct {
	CategoryID c.Optional[CategoryID]
	Limit      c.Optional[int]
}

type CreateInput struct {
	Title      string
	Text       string
	AuthorID   c.Optional[user.ID]
	CategoryID CategoryID
	CreatedAt  time.Time
}

type UpdateInput struct {
	ID         ID
	Title      string
	Text       string
	CategoryID CategoryID
}
