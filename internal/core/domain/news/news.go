package news

import (
	"time"

	c "newsdesk/internal/core/domain/common"
	"newsdesk/internal/core/domain/user"
)

type CategoryID int64

type ID int64

const (
	MaxCategoryNameLength        = 50
	MaxCategoryDescriptionLength = 255
	MaxCategoryIcoLength         = 255
	MaxTitleLength               = 255
)

type Category struct {
	ID          CategoryID
	Name        string
	Description c.Optional[string]
	Ico         c.Optional[string]
}

type News struct {
	ID         ID
	Title      string
	Text       string
	AuthorID   c.Optional[user.ID]
	AuthorName c.Optional[user.Username]
	CategoryID CategoryID
	Category   Category
	CreatedAt  time.Time
}

// OptionalText treats an empty string as an absent value.
func OptionalText(value string) c.Optional[string] {
	return c.NewOptional(value, value != "")
}
