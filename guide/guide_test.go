package guide

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	index, err := Get("")
	require.NoError(t, err)
	assert.Contains(t, index, "finder-tags")

	topics, err := List()
	require.NoError(t, err)
	assert.NotContains(t, topics, "guide")
	for _, topic := range topics {
		content, err := Get(topic)
		require.NoError(t, err, topic)
		assert.NotEmpty(t, content, topic)
	}

	_, err = Get("no-such-topic")
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestList(t *testing.T) {
	topics, err := List()
	require.NoError(t, err)
	assert.Contains(t, topics, "colors")
	assert.Contains(t, topics, "read")
	assert.IsIncreasing(t, topics)
}
