package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closer struct {
	err    error
	closed bool
}

func (c *closer) Close() error {
	c.closed = true

	return c.err
}

func TestCloseAfter(t *testing.T) {
	writeErr := New("disk full")
	closeErr := New("flush failed")

	tests := []struct {
		name     string
		workErr  error
		closeErr error
		want     []error
	}{
		{name: "both succeed"},
		{name: "work fails", workErr: writeErr, want: []error{writeErr}},
		{name: "close fails", closeErr: closeErr, want: []error{closeErr}},
		{name: "both fail", workErr: writeErr, closeErr: closeErr, want: []error{writeErr, closeErr}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &closer{err: tt.closeErr}

			err := CloseAfter(c, tt.workErr, "write lp file")

			assert.True(t, c.closed)
			if tt.want == nil {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), "write lp file")
			for _, target := range tt.want {
				assert.True(t, Is(err, target), "missing %v in %v", target, err)
			}
		})
	}
}

func TestWrap_KeepsStack(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))

	err := Wrapf(New("boom"), "solve %d", 3)
	assert.Equal(t, "solve 3: boom", err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestWrap_KeepsStack")
}
