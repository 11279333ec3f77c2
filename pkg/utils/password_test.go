package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordRoundTrip(t *testing.T) {
	h := HashPassword("secret1")
	assert.NotEqual(t, "secret1", h)
	assert.True(t, CheckPassword("secret1", h))
	assert.False(t, CheckPassword("secret2", h))
	assert.False(t, CheckPassword("", h))
}

func TestHashIsSalted(t *testing.T) {
	// 相同明文两次哈希结果不同（随机盐）
	assert.NotEqual(t, HashPassword("secret1"), HashPassword("secret1"))
}
