package application

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerError(t *testing.T) {
	cause := errors.New("smtp down")
	var err error = &HandlerError{EventName: "ProductCreatedEvent", Position: 1, Err: cause}

	assert.EqualError(t, err, "handler #1 for event ProductCreatedEvent: smtp down")
	assert.ErrorIs(t, err, cause)

	var handlerErr *HandlerError
	require.ErrorAs(t, err, &handlerErr)
	assert.Equal(t, "ProductCreatedEvent", handlerErr.EventName)
	assert.Equal(t, 1, handlerErr.Position)
}
