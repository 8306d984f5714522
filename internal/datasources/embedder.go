package datasources

import (
	"context"
	"sync"
)

// Embedder turns taste text into a fixed-dimension vector. The batched
// form is semantically identical to per-item calls, just more efficient.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// NullEmbedder is a null implementation of Embedder.
type NullEmbedder struct{}

var _ Embedder = NullEmbedder{}

func (NullEmbedder) EmbedText(_ context.Context, _ string) ([]float32, error) {
	return nil, nil
}

func (NullEmbedder) EmbedTexts(_ context.Context, texts []string) ([][]float32, error) {
	return make([][]float32, len(texts)), nil
}

// LazyEmbedder defers construction of the underlying embedder until
// first use. Initialization runs at most once even under concurrent
// first use; a failed init is sticky.
type LazyEmbedder struct {
	construct func() (Embedder, error)

	once     sync.Once
	embedder Embedder
	err      error
}

var _ Embedder = (*LazyEmbedder)(nil)

// NewLazyEmbedder wraps a constructor whose work is expensive enough to
// defer until the first embed call.
func NewLazyEmbedder(construct func() (Embedder, error)) *LazyEmbedder {
	return &LazyEmbedder{construct: construct}
}

func (l *LazyEmbedder) get() (Embedder, error) {
	l.once.Do(func() {
		l.embedder, l.err = l.construct()
	})
	return l.embedder, l.err
}

func (l *LazyEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	embedder, err := l.get()
	if err != nil {
		return nil, err
	}
	return embedder.EmbedText(ctx, text)
}

func (l *LazyEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	embedder, err := l.get()
	if err != nil {
		return nil, err
	}
	return embedder.EmbedTexts(ctx, texts)
}
