package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger(t *testing.T) {
	swagger, err := GetSwagger()
	require.NoError(t, err)

	assert.Equal(t, "3.0.3", swagger.OpenAPI)

	for _, path := range []string{"/create-checkout-session", "/webhook", "/health"} {
		assert.NotNil(t, swagger.Paths.Find(path), "missing path %s", path)
	}
}
