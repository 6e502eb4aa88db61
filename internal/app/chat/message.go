/*
Package chat carries visitor conversations with the scripted assistant over
WebSocket connections.

This file defines the wire envelope exchanged with the widget. Inbound frames
are either free text or an option click; outbound frames echo the visitor's
message, deliver the bot's reply, or report an error.
*/
package chat

import (
	"encoding/json"
	"fmt"

	"serenity/internal/app/chatbot"
)

// MessageType discriminates the frames on the WebSocket.
type MessageType string

const (
	// TypeInit carries the opening transcript (the greeting) to the client.
	TypeInit MessageType = "INIT"

	// TypeText is an inbound free-text message from the visitor.
	TypeText MessageType = "TEXT"

	// TypeOption is an inbound option click from the visitor.
	TypeOption MessageType = "OPTION"

	// TypeUserMessage confirms the visitor's message as appended to the transcript.
	TypeUserMessage MessageType = "USER_MESSAGE"

	// TypeBotMessage delivers the assistant's reply.
	TypeBotMessage MessageType = "BOT_MESSAGE"

	// TypeError reports a business error without closing the conversation.
	TypeError MessageType = "ERROR"
)

// Envelope is the frame wrapper for both directions.
type Envelope struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// TextPayload is the body of an inbound TEXT frame.
type TextPayload struct {
	Text string `json:"text"`
}

// OptionPayload is the body of an inbound OPTION frame.
type OptionPayload struct {
	ActionID chatbot.ActionID `json:"actionId"`
}

// InitPayload is the body of the INIT frame.
type InitPayload struct {
	Messages []chatbot.Message `json:"messages"`
}

// MessagePayload is the body of USER_MESSAGE and BOT_MESSAGE frames.
type MessagePayload struct {
	Message chatbot.Message `json:"message"`
}

// ErrorPayload is the body of an ERROR frame.
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewEnvelope marshals the payload into an Envelope of the given type.
func NewEnvelope(msgType MessageType, payload any) (Envelope, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("marshal %s payload: %w", msgType, err)
	}
	return Envelope{Type: msgType, Payload: raw}, nil
}
