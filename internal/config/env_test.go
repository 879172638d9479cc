package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("SNAKE_TEST_VALUE", "set")

	assert.Equal(t, "set", GetEnv("SNAKE_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", GetEnv("SNAKE_TEST_MISSING", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("SNAKE_TEST_INT", "42")
	t.Setenv("SNAKE_TEST_BAD", "forty")

	assert.Equal(t, 42, GetEnvInt("SNAKE_TEST_INT", 1))
	assert.Equal(t, 1, GetEnvInt("SNAKE_TEST_BAD", 1))
	assert.Equal(t, 1, GetEnvInt("SNAKE_TEST_MISSING", 1))
}

func TestArenaSize(t *testing.T) {
	t.Setenv("SNAKE_WIDTH", "30")
	t.Setenv("SNAKE_HEIGHT", "3")

	w, h := ArenaSize(20, 20, 8)

	assert.Equal(t, 30, w)
	assert.Equal(t, 8, h)
}
