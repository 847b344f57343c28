package websocket

import (
	"encoding/json"
	"fmt"
	"time"
)

// Dashboard socket message types.
const (
	MessageTypePing          = "ping"
	MessageTypePong          = "pong"
	MessageTypeAuth          = "auth"
	MessageTypeSignOut       = "sign_out"
	MessageTypeDeleteListing = "delete_listing"
	MessageTypeView          = "view"
	MessageTypeError         = "error"
)

type WSMessage struct {
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp string          `json:"timestamp,omitempty"`
}

type outgoing struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// AuthData carries the ID token a client signs in with.
type AuthData struct {
	Token string `json:"token"`
}

// DeleteListingData names the record to delete. Confirmed must be true.
type DeleteListingData struct {
	Collection string `json:"collection"`
	ID         string `json:"id"`
	Confirmed  bool   `json:"confirmed"`
}

type ErrorData struct {
	Message string `json:"message"`
}

func DecodeMessage(data []byte) (WSMessage, error) {
	var msg WSMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return WSMessage{}, err
	}
	if msg.Type == "" {
		return WSMessage{}, fmt.Errorf("message type is required")
	}
	return msg, nil
}

// Payload decodes the data of msg into v.
func (msg WSMessage) Payload(v interface{}) error {
	if len(msg.Data) == 0 {
		return fmt.Errorf("%s message has no data", msg.Type)
	}
	return json.Unmarshal(msg.Data, v)
}

// Encode builds an outgoing frame. Data that cannot be marshalled is replaced
// by an error frame.
func Encode(messageType string, data interface{}) []byte {
	b, err := json.Marshal(outgoing{
		Type:      messageType,
		Data:      data,
		Timestamp: time.Now().Format(time.RFC3339),
	})
	if err != nil {
		return ErrorMessage("failed to encode " + messageType)
	}
	return b
}

func ErrorMessage(message string) []byte {
	b, _ := json.Marshal(outgoing{
		Type:      MessageTypeError,
		Data:      ErrorData{Message: message},
		Timestamp: time.Now().Format(time.RFC3339),
	})
	return b
}
