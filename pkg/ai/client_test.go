package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChatClient(t *testing.T) {
	c, err := NewChatClient(context.Background(), "", "", "")
	require.NoError(t, err)
	assert.Nil(t, c)

	c, err = NewChatClient(context.Background(), "OpenAI", "sk-test", "")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, ProviderOpenAI, c.Name())
	assert.NoError(t, c.Close())

	_, err = NewChatClient(context.Background(), "llama", "k", "")
	assert.ErrorContains(t, err, "unsupported provider")
}
