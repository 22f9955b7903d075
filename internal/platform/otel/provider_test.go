package otel_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devarshiadi/devconsole/internal/config"
	"github.com/devarshiadi/devconsole/internal/platform/otel"
)

func TestSetup_DisabledWithoutEndpoint(t *testing.T) {
	shutdown, err := otel.Setup(context.Background(), config.Env{ServiceName: "devconsole", OTelEnabled: true})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestSetup_DisabledByFlag(t *testing.T) {
	shutdown, err := otel.Setup(context.Background(), config.Env{
		ServiceName:  "devconsole",
		OTelEndpoint: "http://localhost:4318",
		OTelEnabled:  false,
	})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestSetup_Enabled(t *testing.T) {
	shutdown, err := otel.Setup(context.Background(), config.Env{
		ServiceName:  "devconsole",
		OTelEndpoint: "http://127.0.0.1:1",
		OTelEnabled:  true,
	})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	t.Cleanup(func() { _ = shutdown(context.Background()) })
}
