package log

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLevelPolicy(t *testing.T) {
	New("api", "production")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	New("api", "development")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}
