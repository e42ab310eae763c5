package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemas(t *testing.T) {
	sites := []Site{
		{Code: "ST1", Name: "Sunter 1", Schema: "sunter1", Domain: "sunter1.example.com"},
		{Code: "ST2", Name: "Sunter 2", Schema: "sunter2", Domain: "sunter2.example.com"},
	}

	assert.Equal(t, []string{"sunter1", "sunter2"}, Schemas(sites))
	assert.Empty(t, Schemas(nil))
}
