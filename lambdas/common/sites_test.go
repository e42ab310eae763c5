package common

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSitesExplicitList(t *testing.T) {
	sites := []string{"sunter1", "sunter2"}

	// an explicit list never touches the registry or the server
	got, err := ResolveSites(context.Background(), nil, &sites)
	assert.NoError(t, err)
	assert.Equal(t, sites, got)
}
