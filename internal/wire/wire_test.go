package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/pagekeeper/internal/models"
)

func newTestCodec(t *testing.T) *Codec {
	t.Helper()
	c, err := NewCodec()
	require.NoError(t, err)
	return c
}

func TestCodec_EncodeDecodeUpdate(t *testing.T) {
	c := newTestCodec(t)

	event := &models.ChangeEvent{
		ID:        "01J0000000000000000000000",
		Type:      models.EventUpdate,
		Page:      "index",
		Fields:    models.Snapshot{"hero-title": "New Title"},
		Timestamp: 1000,
		Origin:    "node-a",
		Author:    "admin@example.com",
	}

	data, err := c.Encode(event)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "content-update",
		"page": "index",
		"changes": {"hero-title": "New Title"},
		"timestamp": 1000,
		"origin": "node-a",
		"author": "admin@example.com",
		"id": "01J0000000000000000000000"
	}`, string(data))

	decoded, err := c.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, event, decoded)
}

func TestCodec_ResetHasNoChanges(t *testing.T) {
	c := newTestCodec(t)

	data, err := c.Encode(&models.ChangeEvent{
		Type:      models.EventReset,
		Page:      "about",
		Fields:    models.Snapshot{"ignored": "x"},
		Timestamp: 42,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"content-reset","page":"about","timestamp":42}`, string(data))

	decoded, err := c.Decode(data)
	require.NoError(t, err)
	assert.True(t, decoded.IsReset())
	assert.Nil(t, decoded.Fields)
}

func TestCodec_DecodeRejectsInvalid(t *testing.T) {
	c := newTestCodec(t)

	tests := []struct {
		name string
		data string
	}{
		{"not json", `hello`},
		{"unknown type", `{"type":"content-delete","page":"index","timestamp":1}`},
		{"missing page", `{"type":"content-reset","timestamp":1}`},
		{"bad page id", `{"type":"content-reset","page":"../etc","timestamp":1}`},
		{"zero timestamp", `{"type":"content-reset","page":"index","timestamp":0}`},
		{"fractional timestamp", `{"type":"content-reset","page":"index","timestamp":1.5}`},
		{"non string value", `{"type":"content-update","page":"index","timestamp":1,"changes":{"a":1}}`},
		{"bad field key", `{"type":"content-update","page":"index","timestamp":1,"changes":{"a b":"x"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Decode([]byte(tt.data))
			assert.ErrorIs(t, err, ErrInvalidMessage)
		})
	}
}

func TestCodec_EncodeNil(t *testing.T) {
	c := newTestCodec(t)
	_, err := c.Encode(nil)
	assert.Error(t, err)
}

func TestToMessage_ClonesFields(t *testing.T) {
	event := &models.ChangeEvent{Type: models.EventUpdate, Page: "index", Fields: models.Snapshot{"a": "1"}, Timestamp: 1}
	msg := ToMessage(event)
	msg.Changes["a"] = "mutated"
	assert.Equal(t, "1", event.Fields["a"])
}
