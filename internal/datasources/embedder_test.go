package datasources

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazyEmbedder_InitializesOnceUnderConcurrentFirstUse(t *testing.T) {
	var constructions atomic.Int32
	lazy := NewLazyEmbedder(func() (Embedder, error) {
		constructions.Add(1)
		return NullEmbedder{}, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := lazy.EmbedText(context.Background(), "hello")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), constructions.Load())
}

func TestLazyEmbedder_InitFailureIsSticky(t *testing.T) {
	var constructions atomic.Int32
	lazy := NewLazyEmbedder(func() (Embedder, error) {
		constructions.Add(1)
		return nil, errors.New("model download failed")
	})

	_, err := lazy.EmbedText(context.Background(), "hello")
	require.Error(t, err)

	_, err = lazy.EmbedTexts(context.Background(), []string{"a", "b"})
	require.Error(t, err)

	assert.Equal(t, int32(1), constructions.Load())
}
