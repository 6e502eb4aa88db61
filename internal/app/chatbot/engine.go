package chatbot

import "strings"

// Engine evaluates dialogue transitions against the static script.
// It is immutable after construction and safe for concurrent use.
type Engine struct {
	table    map[ActionID]handlerFunc
	keywords []keywordRule
}

// NewEngine builds an Engine over the built-in script.
func NewEngine() *Engine {
	return &Engine{
		table:    scriptTable(),
		keywords: keywordRules(),
	}
}

// Advance runs the handler for the given action and returns its reply.
// The script is a closed table, so an unknown action should not occur; if it
// does, the generic fallback reply with the initial options is returned
// instead of failing the conversation.
func (e *Engine) Advance(action ActionID, input string) Reply {
	handler, ok := e.table[action]
	if !ok {
		return e.Fallback()
	}
	return handler(input)
}

// Interpret resolves free text to an action via case-insensitive substring
// matching against the keyword table. The second return value reports whether
// any keyword matched.
func (e *Engine) Interpret(text string) (ActionID, bool) {
	lowered := strings.ToLower(text)

	for _, rule := range e.keywords {
		if strings.Contains(lowered, rule.keyword) {
			return rule.action, true
		}
	}

	return "", false
}

// Fallback returns the "didn't understand" reply re-offering the initial options.
func (e *Engine) Fallback() Reply {
	return Reply{Text: fallbackText, Options: initialOptions()}
}

// Greeting returns the initial reply that opens every conversation.
func (e *Engine) Greeting() Reply {
	return e.Advance(ActionStart, "")
}
