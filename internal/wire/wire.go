// Package wire кодирует события изменения контента в сообщения шины и обратно.
package wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/iudanet/pagekeeper/internal/models"
	"github.com/iudanet/pagekeeper/pkg/api"
)

const schemaURL = "https://pagekeeper.local/schemas/bus-message.json"

// ErrInvalidMessage is returned for frames that fail schema validation
var ErrInvalidMessage = errors.New("invalid bus message")

// Codec validates and converts bus messages.
type Codec struct {
	schema *jsonschema.Schema
}

// NewCodec compiles the bus message schema
func NewCodec() (*Codec, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(api.BusMessageSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to parse bus schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("failed to add bus schema: %w", err)
	}

	schema, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile bus schema: %w", err)
	}

	return &Codec{schema: schema}, nil
}

// Validate checks a raw frame against the schema
func (c *Codec) Validate(data []byte) error {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	if err := c.schema.Validate(inst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	return nil
}

// Decode validates a raw frame and converts it to a ChangeEvent
func (c *Codec) Decode(data []byte) (*models.ChangeEvent, error) {
	if err := c.Validate(data); err != nil {
		return nil, err
	}

	var msg api.BusMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	return FromMessage(msg), nil
}

// Encode converts a ChangeEvent to a frame
func (c *Codec) Encode(event *models.ChangeEvent) ([]byte, error) {
	if event == nil {
		return nil, fmt.Errorf("event is nil")
	}
	data, err := json.Marshal(ToMessage(event))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal bus message: %w", err)
	}
	return data, nil
}

// ToMessage converts an event to its wire form.
// Reset не несет полей.
func ToMessage(event *models.ChangeEvent) api.BusMessage {
	msg := api.BusMessage{
		Type:      string(event.Type),
		Page:      event.Page,
		Timestamp: event.Timestamp,
		Author:    event.Author,
		Origin:    event.Origin,
		ID:        event.ID,
	}
	if !event.IsReset() {
		msg.Changes = event.Fields.Clone()
	}
	return msg
}

// FromMessage converts a wire message to an event
func FromMessage(msg api.BusMessage) *models.ChangeEvent {
	event := &models.ChangeEvent{
		Type:      models.EventType(msg.Type),
		Page:      msg.Page,
		Timestamp: msg.Timestamp,
		Author:    msg.Author,
		Origin:    msg.Origin,
		ID:        msg.ID,
	}
	if msg.Type != api.MessageContentReset {
		event.Fields = models.Snapshot(msg.Changes).Clone()
	}
	return event
}
