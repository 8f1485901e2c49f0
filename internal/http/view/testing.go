package view

import (
	"testing"

	"newsdesk/internal/core/domain/logging"
	"newsdesk/internal/i18n"
)

// NewTestRenderer builds an english renderer logging into a FakeLogger.
func NewTestRenderer(t *testing.T) *Renderer {
	translator, err := i18n.New("en")
	if err != nil {
		t.Fatal(err)
	}
	renderer, err := New(logging.NewFakeLogger(), translator)
	if err != nil {
		t.Fatal(err)
	}
	return renderer
}
