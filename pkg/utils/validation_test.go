package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type eventInput struct {
	UserID    string `json:"user_id" validate:"required"`
	EventType string `json:"event_type" validate:"required"`
}

func TestValidateStruct_Valid(t *testing.T) {
	err := ValidateStruct(eventInput{UserID: "u1", EventType: "like"})

	assert.NoError(t, err)
}

func TestValidateStruct_ReportsJSONFieldNames(t *testing.T) {
	err := ValidateStruct(eventInput{})

	require.Error(t, err)
	assert.Equal(t, "user_id is required; event_type is required", err.Error())
}

func TestValidateStruct_SingleMissingField(t *testing.T) {
	err := ValidateStruct(eventInput{EventType: "like"})

	require.Error(t, err)
	assert.Equal(t, "user_id is required", err.Error())
}
