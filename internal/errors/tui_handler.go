package errors

import (
	"time"
)

// maxMessages bounds the history a TUIHandler keeps.
const maxMessages = 50

// MessageType classifies a status message.
type MessageType int

const (
	MessageTypeError MessageType = iota
	MessageTypeWarning
	MessageTypeInfo
	MessageTypeSuccess
)

func (t MessageType) String() string {
	switch t {
	case MessageTypeError:
		return "error"
	case MessageTypeWarning:
		return "warning"
	case MessageTypeSuccess:
		return "success"
	default:
		return "info"
	}
}

// Message is one status line entry.
type Message struct {
	Text      string
	Type      MessageType
	Timestamp time.Time
}

// TUIHandler keeps messages for the status line. It is used from the
// bubbletea update loop only.
type TUIHandler struct {
	messages []Message
	ttl      time.Duration
	now      func() time.Time
	onMsg    func(msg Message)
}

// NewTUIHandler creates a handler whose messages expire after ttl.
// onMsg, if set, is called for every new message.
func NewTUIHandler(ttl time.Duration, onMsg func(msg Message)) *TUIHandler {
	return &TUIHandler{ttl: ttl, now: time.Now, onMsg: onMsg}
}

func (h *TUIHandler) Error(msg string)   { h.add(msg, MessageTypeError) }
func (h *TUIHandler) Warning(msg string) { h.add(msg, MessageTypeWarning) }
func (h *TUIHandler) Info(msg string)    { h.add(msg, MessageTypeInfo) }
func (h *TUIHandler) Success(msg string) { h.add(msg, MessageTypeSuccess) }

func (h *TUIHandler) add(text string, t MessageType) {
	msg := Message{Text: text, Type: t, Timestamp: h.now()}
	h.messages = append(h.messages, msg)
	if len(h.messages) > maxMessages {
		h.messages = h.messages[len(h.messages)-maxMessages:]
	}
	if h.onMsg != nil {
		h.onMsg(msg)
	}
}

// Current returns the newest message that has not expired.
func (h *TUIHandler) Current() (Message, bool) {
	if len(h.messages) == 0 {
		return Message{}, false
	}
	latest := h.messages[len(h.messages)-1]
	if h.ttl > 0 && h.now().Sub(latest.Timestamp) >= h.ttl {
		return Message{}, false
	}
	return latest, true
}

// TTL returns how long a message stays current.
func (h *TUIHandler) TTL() time.Duration {
	return h.ttl
}

// Clear drops all messages.
func (h *TUIHandler) Clear() {
	h.messages = nil
}

// All returns a copy of the kept messages, oldest first.
func (h *TUIHandler) All() []Message {
	return append([]Message(nil), h.messages...)
}
