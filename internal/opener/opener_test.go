package opener_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devarshiadi/devconsole/internal/opener"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpenURL(t *testing.T) {
	var got string
	o := opener.NewWithFunc(discard(), func(url string) error {
		got = url
		return nil
	})

	require.NoError(t, o.OpenURL("http://127.0.0.1:8080/"))
	assert.Equal(t, "http://127.0.0.1:8080/", got)
}

func TestOpenURL_Error(t *testing.T) {
	boom := errors.New("no browser")
	o := opener.NewWithFunc(discard(), func(string) error { return boom })

	err := o.OpenURL("http://127.0.0.1:8080/")
	require.ErrorIs(t, err, boom)
}
