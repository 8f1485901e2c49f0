package news

import (
	"time"

	c "newsdesk/internal/core/domain/common"
	"newsdesk/internal/core/domain/news"
	"newsdesk/internal/core/domain/user"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects gorm to the same PostgreSQL database the pgx pool uses.
// The schema itself is owned by the SQL migrations.
func Open(dsn string, debug bool) (*gorm.DB, error) {
	logLevel := logger.Silent
	if debug {
		logLevel = logger.Info
	}
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
}

type categoryRecord struct {
	ID          int64   `gorm:"primaryKey"`
	Name        string  `gorm:"size:50;not null;uniqueIndex:news_category_name_idx"`
	Description *string `gorm:"size:255"`
	Ico         *string `gorm:"size:255"`
}

func (categoryRecord) TableName() string {
	return "news_category"
}

type authorRecord struct {
	ID       int64  `gorm:"primaryKey"`
	Username string `gorm:"size:180"`
}

func (authorRecord) TableName() string {
	return "user"
}

type newsRecord struct {
	ID         int64          `gorm:"primaryKey"`
	Title      string         `gorm:"size:255;not null"`
	Text       string         `gorm:"not null"`
	AuthorID   *int64         `gorm:"constraint:OnDelete:SET NULL"`
	Author     *authorRecord  `gorm:"foreignKey:AuthorID"`
	CategoryID int64          `gorm:"not null;index"`
	Category   categoryRecord `gorm:"foreignKey:CategoryID"`
	CreatedAt  time.Time      `gorm:"not null"`
}

func (newsRecord) TableName() string {
	return "news"
}

func encodeOptionalString(value c.Optional[string]) *string {
	if !value.IsPresent {
		return nil
	}
	v := value.Value
	return &v
}

func decodeOptionalString(value *string) c.Optional[string] {
	if value == nil {
		return c.Absent[string]()
	}
	return c.NewOptional(*value, true)
}

func decodeCategory(rec categoryRecord) news.Category {
	return news.Category{
		ID:          news.CategoryID(rec.ID),
		Name:        rec.Name,
		Description: decodeOptionalString(rec.Description),
		Ico:         decodeOptionalString(rec.Ico),
	}
}

func decodeNews(rec newsRecord) news.News {
	n := news.News{
		ID:         news.ID(rec.ID),
		Title:      rec.Title,
		Text:       rec.Text,
		CategoryID: news.CategoryID(rec.CategoryID),
		Category:   decodeCategory(rec.Category),
		CreatedAt:  rec.CreatedAt,
	}
	if rec.AuthorID != nil {
		n.AuthorID = c.NewOptional(user.ID(*rec.AuthorID), true)
	}
	if rec.Author != nil {
		n.AuthorName = c.NewOptional(user.Username(rec.Author.Username), true)
	}
	return n
}
