package ports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapability(t *testing.T) {
	t.Run("available", func(t *testing.T) {
		c := Available[string]("handle")
		h, ok := c.Get()
		assert.True(t, ok)
		assert.Equal(t, "handle", h)
		assert.Empty(t, c.Reason())
	})

	t.Run("unavailable", func(t *testing.T) {
		c := Unavailable[string]("offline mode")
		h, ok := c.Get()
		assert.False(t, ok)
		assert.Empty(t, h)
		assert.Equal(t, "offline mode", c.Reason())
	})

	t.Run("zero value is unavailable", func(t *testing.T) {
		var c Capability[int]
		_, ok := c.Get()
		assert.False(t, ok)
	})
}
