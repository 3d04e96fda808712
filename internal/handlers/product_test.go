package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchLimit(t *testing.T) {
	t.Run("defaults when absent or malformed", func(t *testing.T) {
		assert.Equal(t, defaultSearchLimit, searchLimit(""))
		assert.Equal(t, defaultSearchLimit, searchLimit("abc"))
		assert.Equal(t, defaultSearchLimit, searchLimit("-3"))
		assert.Equal(t, defaultSearchLimit, searchLimit("0"))
	})

	t.Run("honors a reasonable value", func(t *testing.T) {
		assert.Equal(t, 10, searchLimit("10"))
		assert.Equal(t, maxSearchLimit, searchLimit("50"))
	})

	t.Run("caps oversized requests", func(t *testing.T) {
		assert.Equal(t, maxSearchLimit, searchLimit("1000000"))
	})
}
