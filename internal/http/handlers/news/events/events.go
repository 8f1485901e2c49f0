package events

import (
	"net/http"

	e "newsdesk/internal/core/domain/errors"
	"newsdesk/internal/core/domain/logging"
	newspublisher "newsdesk/internal/implementations/news_publisher"

	"github.com/r3labs/sse/v2"
)

const PATH = "/news/events"

// Handler streams freshly created news to browsers.
type Handler struct {
	log       logging.Logger
	sseServer http.Handler
}

func New(log logging.Logger, sseServer *sse.Server) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	return &Handler{log: log, sseServer: sseServer}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("stream") != newspublisher.Stream {
		http.Error(rw, "invalid stream", http.StatusBadRequest)
		return
	}

	h.log.Debug(r.Context(), "Subscribed to news events.", logging.Entry("remoteAddr", r.RemoteAddr))
	h.sseServer.ServeHTTP(rw, r)
	h.log.Debug(r.Context(), "Unsubscribed from news events.", logging.Entry("remoteAddr", r.RemoteAddr))
}
