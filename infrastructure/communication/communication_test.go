package communication

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostWithoutToken(t *testing.T) {
	s := NewSlack("", "C0INFO", "C0ERROR")

	assert.NoError(t, s.Info("roster sync finished"))
	assert.NoError(t, s.Error("roster sync failed"))
}

func TestPostWithoutChannel(t *testing.T) {
	s := NewSlack("xoxb-test", "", "")

	assert.NoError(t, s.Info("no channel configured"))
}
