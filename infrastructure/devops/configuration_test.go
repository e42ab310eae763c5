package devops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetDSN(t *testing.T) {
	entry := DBEntry{Name: "dev", Host: "db.internal", Username: "ops", Password: "secret"}

	t.Run("default port", func(t *testing.T) {
		assert.Equal(t, "ops:secret@tcp(db.internal:3306)/?parseTime=true", entry.GetDSN(""))
	})

	t.Run("explicit port kept", func(t *testing.T) {
		withPort := entry
		withPort.Host = "db.internal:3307"
		assert.Equal(t, "ops:secret@tcp(db.internal:3307)/?parseTime=true", withPort.GetDSN(""))
	})

	t.Run("schema in dsn", func(t *testing.T) {
		assert.Equal(t, "ops:secret@tcp(db.internal:3306)/sunter1?parseTime=true", entry.GetDSN("sunter1"))
	})
}
