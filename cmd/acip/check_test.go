package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acip-protocol/dialogue-go/pkg/dialogue"
)

func TestParseLayers(t *testing.T) {
	t.Run("empty means default", func(t *testing.T) {
		layers, err := parseLayers(nil)
		require.NoError(t, err)
		assert.Nil(t, layers)
	})

	t.Run("known names", func(t *testing.T) {
		layers, err := parseLayers([]string{"privacy", "ethics"})
		require.NoError(t, err)
		assert.Equal(t, []dialogue.Layer{dialogue.LayerPrivacy, dialogue.LayerEthics}, layers)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := parseLayers([]string{"privacy", "vibes"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown layer "vibes"`)
	})
}
