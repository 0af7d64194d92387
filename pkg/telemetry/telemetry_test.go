package telemetry

import (
	"context"
	"testing"

	"github.com/abgdnv/storefront/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Setup_Disabled(t *testing.T) {
	shutdown, err := Setup(context.Background(), "storefront", config.TelemetryConfig{})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}
