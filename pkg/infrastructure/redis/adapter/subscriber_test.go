package adapter

import (
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisSubscriber(t *testing.T) {
	_, err := NewRedisSubscriber(nil, "tail", "tail-1", watermill.NopLogger{})
	assert.Error(t, err)

	client := NewRedisClient("localhost:6379", "", 0)
	defer client.Close()

	subscriber, err := NewRedisSubscriber(client, "tail", "tail-1", watermill.NopLogger{})
	require.NoError(t, err)
	assert.NotNil(t, subscriber)
}
