package api_test

import (
	"context"
	"testing"

	"github.com/quollsec/scanhub/pkg/scanapi"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	baseURL, _, cleanup := setupAPIContainer(t)
	defer cleanup()

	client := scanapi.NewClient(baseURL)
	ctx := context.Background()

	require.NoError(t, client.Livez(ctx), "liveness probe should pass")
	require.NoError(t, client.Readyz(ctx), "readiness probe should pass")
}
