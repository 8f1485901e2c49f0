package newspublisher

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	e "newsdesk/internal/core/domain/errors"
	"newsdesk/internal/core/domain/news"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/r3labs/sse/v2"
)

const (
	Stream       = "news"
	CreatedEvent = "news.created"
)

type eventPublisher interface {
	Publish(id string, event *sse.Event)
}

type SSE struct {
	server    eventPublisher
	published prometheus.Counter
}

// NewSSE makes sure the news stream exists so that events published before
// the first subscriber connects are not dropped by the server.
func NewSSE(server *sse.Server, published prometheus.Counter) *SSE {
	if server == nil {
		panic(e.NewNilArgumentError("server"))
	}
	if !server.StreamExists(Stream) {
		server.CreateStream(Stream)
	}
	return newSSE(server, published)
}

func newSSE(server eventPublisher, published prometheus.Counter) *SSE {
	if published == nil {
		panic(e.NewNilArgumentError("published"))
	}
	return &SSE{server: server, published: published}
}

type createdPayload struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Author    string    `json:"author,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (p *SSE) PublishCreated(ctx context.Context, n news.News) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(createdPayload{
		ID:        int64(n.ID),
		Title:     n.Title,
		Category:  n.Category.Name,
		Author:    string(n.AuthorName.Value),
		CreatedAt: n.CreatedAt,
	})
	if err != nil {
		return err
	}
	p.server.Publish(Stream, &sse.Event{
		ID:    []byte(strconv.FormatInt(int64(n.ID), 10)),
		Event: []byte(CreatedEvent),
		Data:  data,
	})
	p.published.Inc()
	return nil
}
