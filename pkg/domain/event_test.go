package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type sampleEvent struct {
	BaseEvent[string]
}

func (e sampleEvent) EventName() string {
	return "SampleEvent"
}

func TestNewBaseEvent(t *testing.T) {
	before := time.Now().UTC()
	event := sampleEvent{BaseEvent: NewBaseEvent("payload")}
	after := time.Now().UTC()

	assert.Equal(t, "payload", event.Payload())
	assert.NotEmpty(t, event.EventID())
	assert.False(t, event.OccurredAt().Before(before))
	assert.False(t, event.OccurredAt().After(after))
	assert.Equal(t, time.UTC, event.OccurredAt().Location())
}

func TestBaseEvent_UniqueIDs(t *testing.T) {
	first := NewBaseEvent(1)
	second := NewBaseEvent(1)

	assert.NotEqual(t, first.EventID(), second.EventID())
}

func TestEventName_IsStableForZeroValue(t *testing.T) {
	var zero sampleEvent
	built := sampleEvent{BaseEvent: NewBaseEvent("x")}

	assert.Equal(t, built.EventName(), zero.EventName())
}
