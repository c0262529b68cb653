package cli

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLine(t *testing.T) {
	r := NewNonBlockingReader(strings.NewReader("  hello world  \nsecond\n"))
	ctx := context.Background()

	line, err := r.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "hello world", line)

	line, err = r.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", line)
}

func TestReadLineFinalLineWithoutNewline(t *testing.T) {
	r := NewNonBlockingReader(strings.NewReader("no newline"))

	line, err := r.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "no newline", line)

	_, err = r.ReadLine(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadLineCancellation(t *testing.T) {
	// A pipe that never produces data keeps the read blocked.
	pr, pw := io.Pipe()
	defer func() { _ = pw.Close() }()
	r := NewNonBlockingReader(pr)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := r.ReadLine(ctx)
	assert.ErrorIs(t, err, ErrInputCancelled)
}
