package news

import "context"

// Publisher notifies live readers about freshly created news.
type Publisher interface {
	PublishCreated(ctx context.Context, n News) error
}
