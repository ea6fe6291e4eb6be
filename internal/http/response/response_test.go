package response

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	data, err := json.Marshal(Error("User already exists"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"User already exists"}`, string(data))
}

func TestMessage(t *testing.T) {
	data, err := json.Marshal(Message("Task added successfully"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Task added successfully"}`, string(data))
}

func TestValidationError_FixedMessage(t *testing.T) {
	resp := ValidationError(nil)
	assert.Equal(t, MsgMissingFields, resp.Error)
}
