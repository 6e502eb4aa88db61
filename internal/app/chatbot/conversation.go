package chatbot

import (
	"errors"
	"time"

	"serenity/internal/pkg/randx"
)

var (
	// ErrOptionNotAvailable reports a click on an option that is not offered
	// by the latest bot message. Options on older messages are inert history.
	ErrOptionNotAvailable = errors.New("option is not currently selectable")

	// ErrEmptyMessage reports an attempt to send blank free text.
	ErrEmptyMessage = errors.New("message text is empty")
)

// Message is one entry in a conversation transcript.
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	FromBot   bool      `json:"isFromBot"`
	Timestamp time.Time `json:"timestamp"`
	Options   []Option  `json:"options,omitempty"`
}

// Conversation holds the linear transcript of one visitor's exchange with the
// assistant. The transcript only ever grows; restarting via the end action
// transitions back to the greeting without clearing history.
//
// Conversation is not safe for concurrent use. Each WebSocket connection owns
// exactly one and drives it from a single goroutine.
type Conversation struct {
	engine *Engine

	messages []Message

	// expect and pendingAction track the "awaiting free-text input" sub-state:
	// when expect is set, the next free text is fed back into pendingAction.
	expect        InputKind
	pendingAction ActionID
}

// NewConversation opens a conversation and appends the bot's greeting.
func NewConversation(engine *Engine) *Conversation {
	c := &Conversation{engine: engine}
	c.applyReply(ActionStart, engine.Greeting())
	return c
}

// Messages returns a copy of the transcript.
func (c *Conversation) Messages() []Message {
	copied := make([]Message, len(c.messages))
	copy(copied, c.messages)
	return copied
}

// LastMessage returns the most recently appended message.
func (c *Conversation) LastMessage() Message {
	return c.messages[len(c.messages)-1]
}

// CurrentOptions returns the selectable options, i.e. those attached to the
// most recent bot message.
func (c *Conversation) CurrentOptions() []Option {
	for i := len(c.messages) - 1; i >= 0; i-- {
		if c.messages[i].FromBot {
			return c.messages[i].Options
		}
	}
	return nil
}

// Expecting reports which free-text input kind, if any, the bot is waiting for.
func (c *Conversation) Expecting() InputKind {
	return c.expect
}

// ChooseOption advances the dialogue through one of the currently offered
// options. It appends the option label as the user's message and the handler's
// reply as the bot's message.
func (c *Conversation) ChooseOption(action ActionID) (Message, error) {
	var chosen *Option
	for _, opt := range c.CurrentOptions() {
		if opt.Action == action {
			chosen = &opt
			break
		}
	}
	if chosen == nil {
		return Message{}, ErrOptionNotAvailable
	}

	// Clicking an option abandons any pending free-text input.
	c.expect = InputNone
	c.pendingAction = ""

	c.appendUser(chosen.Label)
	return c.applyReply(action, c.engine.Advance(action, "")), nil
}

// SendText advances the dialogue with free text. When an input is expected the
// text is routed back into the pending action; otherwise it is matched against
// the keyword table, falling back to the generic reply on no match.
func (c *Conversation) SendText(text string) (Message, error) {
	if text == "" {
		return Message{}, ErrEmptyMessage
	}

	c.appendUser(text)

	if c.expect != InputNone {
		action := c.pendingAction
		c.expect = InputNone
		c.pendingAction = ""
		return c.applyReply(action, c.engine.Advance(action, text)), nil
	}

	action, ok := c.engine.Interpret(text)
	if !ok {
		return c.applyReply("", c.engine.Fallback()), nil
	}

	return c.applyReply(action, c.engine.Advance(action, "")), nil
}

// appendUser appends one user-authored message to the transcript.
func (c *Conversation) appendUser(text string) {
	c.messages = append(c.messages, Message{
		ID:        randx.MessageID(),
		Text:      text,
		FromBot:   false,
		Timestamp: time.Now(),
	})
}

// applyReply appends the bot message for the reply and records the
// expected-input sub-state. An action that asks for input consumes that input
// itself on the next SendText, so the action is remembered alongside the kind.
func (c *Conversation) applyReply(action ActionID, reply Reply) Message {
	msg := Message{
		ID:        randx.MessageID(),
		Text:      reply.Text,
		FromBot:   true,
		Timestamp: time.Now(),
		Options:   reply.Options,
	}
	c.messages = append(c.messages, msg)

	c.expect = reply.Expect
	if reply.Expect != InputNone {
		c.pendingAction = action
	} else {
		c.pendingAction = ""
	}

	return msg
}
