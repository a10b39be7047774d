package mw_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/relaykit/relay"
	"github.com/relaykit/relay/mw"
)

func TestStandardStackLogsRecoversAndTagsRequests(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	panicking := relay.HandlerFunc(func(_ context.Context, _ *relay.Request) (*relay.Response, error) {
		panic("deep panic")
	})

	h := relay.NewStack(panicking, mw.Standard(logger)...)

	resp, err := h.Handle(context.Background(), relay.NewRequest("GET", "/"))
	require.NoError(t, err)

	// Recover sits innermost, so the panic becomes a 500 that the logging
	// layer records, stamped with the generated request ID.
	require.Equal(t, 500, resp.Status())
	require.NotEmpty(t, resp.Header(mw.HeaderRequestID))
	require.Contains(t, buf.String(), `"status":500`)
	require.Contains(t, buf.String(), `"request_id"`)
	require.Contains(t, buf.String(), "deep panic")
}
