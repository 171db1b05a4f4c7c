package server

import (
	"encoding/json"
	"time"
)

// MessageType identifies the payload carried in a message envelope
type MessageType string

const (
	// Client → Server
	MessageTypeJudge MessageType = "judge"

	// Server → Client
	MessageTypeResult MessageType = "result"
	MessageTypeError  MessageType = "error"
)

// Message is the envelope for every frame on the wire
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
	RequestID string          `json:"requestId,omitempty"`
}

// NewMessage creates a new message with the current timestamp
func NewMessage(messageType MessageType, data any) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: time.Now(),
	}, nil
}

// JudgeData asks the service to rank a set of textual hands
type JudgeData struct {
	Hands []string `json:"hands"`
}

// HandResult reports the category assigned to one input hand
type HandResult struct {
	Hand     string `json:"hand"`
	Category string `json:"category"`
}

// ResultData carries the outcome of a judge request. Winners holds the
// input hands tied for the strongest classification, in input order.
type ResultData struct {
	Winners []string     `json:"winners"`
	Hands   []HandResult `json:"hands"`
}

// ErrorData reports a failed judge request. The connection stays open;
// a malformed request is the client's problem, not the socket's.
type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes returned in ErrorData
const (
	ErrorCodeBadRequest = "bad_request"
	ErrorCodeValidation = "validation"
	ErrorCodeEmptyInput = "empty_input"
)
