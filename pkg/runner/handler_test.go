package runner

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPump_StopsWhenDone(t *testing.T) {
	ch := make(chan inputResult)
	done := make(chan struct{})
	finished := make(chan struct{})

	go func() {
		pump(bufio.NewReader(strings.NewReader("1 + 2\nexit\nX + X\n")), ch, done)
		close(finished)
	}()

	res := <-ch
	require.Equal(t, "1 + 2\n", res.text)

	// Nobody reads the remaining lines.
	close(done)
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("pump still blocked after done was closed")
	}
}

func TestTextHandler_CloseEndsInput(t *testing.T) {
	h := NewTextHandler(strings.NewReader("1 + 2\nI + I\n"), io.Discard)
	ctx := context.Background()

	line, err := h.Input(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1 + 2\n", line)

	require.NoError(t, h.Close())
	require.NoError(t, h.Close())

	// The pump either delivered the line it was holding or gave up; then EOF.
	for i := 0; i < 2; i++ {
		if _, err = h.Input(ctx); err != nil {
			break
		}
	}
	assert.ErrorIs(t, err, io.EOF)
}

func TestJSONHandler_CloseBeforeInput(t *testing.T) {
	h := NewJSONHandler(strings.NewReader("\"1 + 2\"\n"), io.Discard)
	require.NoError(t, h.Close())

	_, err := h.Input(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}
