package api

// Типы сообщений шины
const (
	MessageContentUpdate = "content-update"
	MessageContentReset  = "content-reset"
)

// BusMessage представляет сообщение шины (content-update или content-reset).
// content-reset не несет changes: получатель перечитывает страницу из источника.
type BusMessage struct {
	Changes   map[string]string `json:"changes,omitempty"`
	Type      string            `json:"type"`
	Page      string            `json:"page"`
	Author    string            `json:"author,omitempty"`
	Origin    string            `json:"origin,omitempty"`
	ID        string            `json:"id,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// BusMessageSchema JSON Schema входящих сообщений шины
const BusMessageSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["type", "page", "timestamp"],
  "properties": {
    "type": {"enum": ["content-update", "content-reset"]},
    "page": {"type": "string", "pattern": "^[a-zA-Z0-9][a-zA-Z0-9_-]{0,63}$"},
    "timestamp": {"type": "integer", "minimum": 1},
    "changes": {
      "type": "object",
      "propertyNames": {"pattern": "^[a-zA-Z0-9][a-zA-Z0-9_.-]{0,63}$"},
      "additionalProperties": {"type": "string"}
    },
    "author": {"type": "string"},
    "origin": {"type": "string"},
    "id": {"type": "string"}
  }
}`

// HealthResponse представляет ответ health check relay
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Peers   int    `json:"peers"`
}
