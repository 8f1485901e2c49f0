package createnews

import (
	"context"
	"errors"

	e "newsdesk/internal/core/domain/errors"
	"newsdesk/internal/core/domain/logging"
	"newsdesk/internal/core/domain/news"
	"newsdesk/internal/core/services"
)

type serviceWithPublishing struct {
	log       logging.Logger
	publisher news.Publisher
	inner     services.Service[Input, Result]
}

// NewWithPublishing announces every created news to live readers. A failed
// announcement is logged and does not fail the creation.
func NewWithPublishing(
	log logging.Logger,
	publisher news.Publisher,
	inner services.Service[Input, Result],
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if publisher == nil {
		panic(e.NewNilArgumentError("publisher"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &serviceWithPublishing{
		log:       log,
		publisher: publisher,
		inner:     inner,
	}
}

func (s *serviceWithPublishing) Run(ctx context.Context, input Input) (result Result, err error) {
	result, err = s.inner.Run(ctx, input)
	if err != nil {
		return result, err
	}

	err = s.publisher.PublishCreated(ctx, result.News)
	if errors.Is(err, context.Canceled) {
		return result, nil
	}
	if err != nil {
		s.log.Warning(
			ctx,
			"Could not publish created news.",
			logging.Entry("newsId", result.News.ID),
			logging.Entry("err", err),
		)
	}
	return result, nil
}
