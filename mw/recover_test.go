package mw_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/relaykit/relay"
	"github.com/relaykit/relay/mw"
)

func TestRecoverTurnsPanicInto500(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	panicking := relay.HandlerFunc(func(_ context.Context, _ *relay.Request) (*relay.Response, error) {
		panic("handler exploded")
	})

	h := relay.NewStack(panicking, mw.Recover(logger))

	resp, err := h.Handle(context.Background(), relay.NewRequest("GET", "/boom"))
	require.NoError(t, err)
	require.Equal(t, 500, resp.Status())
	require.Contains(t, buf.String(), "handler exploded")
	require.Contains(t, buf.String(), `"path":"/boom"`)
}

func TestRecoverLeavesNormalErrorsAlone(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	sentinel := errors.New("ordinary failure")

	failing := relay.HandlerFunc(func(_ context.Context, _ *relay.Request) (*relay.Response, error) {
		return nil, sentinel
	})

	h := relay.NewStack(failing, mw.Recover(logger))

	_, err := h.Handle(context.Background(), relay.NewRequest("GET", "/"))
	require.ErrorIs(t, err, sentinel)
	require.Empty(t, buf.String())
}

func TestRecoverLeavesSuccessAlone(t *testing.T) {
	t.Parallel()

	h := relay.NewStack(
		relay.Fallback(relay.NewResponse(200).WithText("ok")),
		mw.Recover(zerolog.Nop()),
	)

	resp, err := h.Handle(context.Background(), relay.NewRequest("GET", "/"))
	require.NoError(t, err)
	require.Equal(t, "ok", string(resp.Body()))
}
