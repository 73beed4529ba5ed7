package adapter

import (
	"testing"

	"github.com/Shopify/sarama"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSaramaConfig(t *testing.T) {
	config := NewSaramaConfig("go-domain-events")

	assert.Equal(t, "go-domain-events", config.ClientID)
	assert.Equal(t, sarama.V1_0_0_0, config.Version)
	assert.Equal(t, sarama.WaitForAll, config.Producer.RequiredAcks)
	assert.True(t, config.Producer.Return.Successes)
	require.NoError(t, config.Validate())
}

func TestNewKafkaPublisher_RequiresBrokers(t *testing.T) {
	publisher, err := NewKafkaPublisher(PublisherConfig{}, watermill.NopLogger{})

	assert.Error(t, err)
	assert.Nil(t, publisher)
}
