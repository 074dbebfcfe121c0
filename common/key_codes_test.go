package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyByName(t *testing.T) {
	code, ok := KeyByName("W")
	assert.True(t, ok)
	assert.Equal(t, uint32(KeyW), code)

	code, ok = KeyByName(" left_shift ")
	assert.True(t, ok)
	assert.Equal(t, uint32(KeyLeftShift), code)

	_, ok = KeyByName("hyper")
	assert.False(t, ok)
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, float32(2), Coalesce[float32](0, 2, 3))
	assert.Equal(t, "", Coalesce("", ""))
}
