/*
Package chat carries visitor conversations with the scripted assistant over
WebSocket connections.

This file defines the Client struct, one per connected widget. It owns the
WebSocket lifecycle (ReadPump and WritePump), drives the conversation, and
applies the simulated typing delay before each bot reply.
*/
package chat

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"serenity/internal/app/chatbot"
	"serenity/internal/pkg/errs"
	"serenity/internal/pkg/logx"
)

const (
	// timeout duration for writing to the WebSocket connection.
	writeWait = 10 * time.Second

	// maximum time allowed for the server to wait for a Pong message from the client.
	pongWait = 60 * time.Second

	// frequency at which the server sends a Ping message.
	pingPeriod = (pongWait * 9) / 10

	// maximum allowed size (in bytes) of a frame sent by the client.
	maxMessageSize = 8192

	// MaxTextBytes caps the visitor's free-text message length.
	MaxTextBytes = 2000
)

// Client represents one connected assistant widget and its conversation.
type Client struct {
	// id identifies the connection for tracking and logs.
	id string

	// underlying WebSocket connection object.
	conn *websocket.Conn

	// conversation holds this visitor's transcript and dialogue state.
	// Only ReadPump touches it, so no locking is needed.
	conversation *chatbot.Conversation

	// botDelay is how long the bot "types" before its reply is sent.
	botDelay time.Duration

	// manager is notified when the connection ends.
	manager *Manager

	// a buffered channel used to queue frames waiting to be sent to the client.
	send chan []byte

	// structured logger with client context.
	logger zerolog.Logger
}

// NewClient constructs a Client with a fresh conversation.
func NewClient(id string, wsConn *websocket.Conn, engine *chatbot.Engine, botDelay time.Duration, manager *Manager) *Client {
	clientLogger := logx.Logger().With().
		Str("component", "chat").
		Str("client_id", id).
		Logger()

	return &Client{
		id:           id,
		conn:         wsConn,
		conversation: chatbot.NewConversation(engine),
		botDelay:     botDelay,
		manager:      manager,
		send:         make(chan []byte, 64),
		logger:       clientLogger,
	}
}

// SendInit delivers the opening transcript (the bot's greeting) to the client.
func (c *Client) SendInit() error {
	env, err := NewEnvelope(TypeInit, InitPayload{Messages: c.conversation.Messages()})
	if err != nil {
		return err
	}
	return c.sendEnvelope(env)
}

// ReadPump reads frames from the WebSocket until the connection ends.
// It handles heartbeats (Pong) and dispatches TEXT and OPTION frames.
func (c *Client) ReadPump() {
	defer c.cleanupOnDisconnect()

	c.conn.SetReadLimit(maxMessageSize)

	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.logger.Error().Err(err).Msg("Failed to set read deadline")
		return
	}

	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, frameBytes, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Info().Err(err).Msg("Error reading frame (client close/going away)")
			}
			break
		}

		c.processInboundFrame(frameBytes)
	}
}

// cleanupOnDisconnect deregisters the client and closes the connection when
// ReadPump terminates.
func (c *Client) cleanupOnDisconnect() {
	c.logger.Info().Msg("Client connection cleanup starting.")

	c.manager.remove(c)

	// ReadPump is the only sender, so closing here is safe and tells
	// WritePump to finish with a close frame.
	close(c.send)

	if err := c.conn.Close(); err != nil {
		c.logger.Error().Err(err).Msg("Client connection close error")
	}
}

// processInboundFrame parses a raw frame and dispatches it.
func (c *Client) processInboundFrame(frameBytes []byte) {
	var env Envelope
	if err := json.Unmarshal(frameBytes, &env); err != nil {
		c.logger.Warn().Err(err).Msg("Client sent invalid JSON")
		return
	}

	switch env.Type {
	case TypeText:
		c.handleText(env.Payload)

	case TypeOption:
		c.handleOption(env.Payload)

	default:
		c.logger.Warn().Str("frame_type", string(env.Type)).Msg("Client sent unsupported frame type")
	}
}

// handleText feeds free text into the conversation.
func (c *Client) handleText(payloadBytes json.RawMessage) {
	var payload TextPayload
	if err := json.Unmarshal(payloadBytes, &payload); err != nil {
		c.logger.Warn().Err(err).Msg("Client sent invalid TEXT payload")
		return
	}

	if len(payload.Text) > MaxTextBytes {
		c.sendError(errs.NewError(errs.ErrMessageContentTooLong))
		return
	}

	botMsg, err := c.conversation.SendText(payload.Text)
	if err != nil {
		c.sendError(errs.NewError(errs.ErrInvalidParams))
		return
	}

	c.deliverExchange(botMsg)
}

// handleOption advances the conversation through a clicked option.
func (c *Client) handleOption(payloadBytes json.RawMessage) {
	var payload OptionPayload
	if err := json.Unmarshal(payloadBytes, &payload); err != nil {
		c.logger.Warn().Err(err).Msg("Client sent invalid OPTION payload")
		return
	}

	botMsg, err := c.conversation.ChooseOption(payload.ActionID)
	if err != nil {
		c.sendError(errs.NewError(errs.ErrInvalidParams))
		return
	}

	c.deliverExchange(botMsg)
}

// deliverExchange echoes the visitor's message right away and sends the bot's
// reply after the typing delay. The delay blocks this read loop on purpose:
// the widget disables input while the bot is "typing", and every exchange is
// exactly one user message followed by one bot message.
func (c *Client) deliverExchange(botMsg chatbot.Message) {
	transcript := c.conversation.Messages()
	userMsg := transcript[len(transcript)-2]

	if env, err := NewEnvelope(TypeUserMessage, MessagePayload{Message: userMsg}); err == nil {
		if sendErr := c.sendEnvelope(env); sendErr != nil {
			return
		}
	}

	if c.botDelay > 0 {
		time.Sleep(c.botDelay)
	}

	env, err := NewEnvelope(TypeBotMessage, MessagePayload{Message: botMsg})
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to build BOT_MESSAGE frame")
		return
	}

	if err := c.sendEnvelope(env); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to queue BOT_MESSAGE frame")
	}
}

// sendError delivers a business error frame without closing the conversation.
func (c *Client) sendError(customErr *errs.CustomError) {
	env, err := NewEnvelope(TypeError, ErrorPayload{Code: customErr.Code, Message: customErr.Message})
	if err != nil {
		return
	}

	if sendErr := c.sendEnvelope(env); sendErr != nil {
		c.logger.Warn().Err(sendErr).Msg("Failed to queue ERROR frame")
	}
}

// sendEnvelope marshals the envelope onto the send channel.
func (c *Client) sendEnvelope(env Envelope) error {
	frameBytes, err := json.Marshal(env)
	if err != nil {
		c.logger.Error().Err(err).Msg("Error marshaling frame for client")
		return err
	}

	select {
	case c.send <- frameBytes:
		return nil
	default:
		c.logger.Warn().Int("queue_len", len(c.send)).Msg("Client send channel full, dropping frame")
		return errs.NewError(errs.ErrUnknown)
	}
}

// WritePump writes queued frames to the WebSocket and keeps the heartbeat alive.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()

		if err := c.conn.Close(); err != nil {
			c.logger.Error().Err(err).Msg("Client connection close error in WritePump")
		}
	}()

	for {
		select {
		case frame, ok := <-c.send:
			if !c.writeQueuedFrame(frame, ok) {
				return
			}

		case <-ticker.C:
			if !c.writePingMessage() {
				return
			}
		}
	}
}

// writeQueuedFrame writes one frame pulled from the send channel.
// Returns false when the WritePump loop should terminate.
func (c *Client) writeQueuedFrame(frame []byte, ok bool) bool {
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		c.logger.Error().Err(err).Msg("Failed to set write deadline")
		return false
	}

	if !ok {
		if err := c.conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
			c.logger.Error().Err(err).Msg("Error writing close message")
		}
		return false
	}

	if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
		c.logger.Error().Err(err).Msg("Error writing frame")
		return false
	}

	return true
}

// writePingMessage sends the periodic heartbeat ping.
// Returns false when the WritePump loop should terminate.
func (c *Client) writePingMessage() bool {
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		c.logger.Error().Err(err).Msg("Failed to set write deadline on ping")
		return false
	}

	if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
		c.logger.Error().Err(err).Msg("Error writing ping")
		return false
	}

	return true
}
