package markup

import "fmt"

// EventType tells which kind of tokenizer event has been recorded.
type EventType int8

// Types of recorded events.
const (
	OpenTagEvent EventType = iota
	TextEvent
	CloseTagEvent
	EndEvent
)

func (t EventType) String() string {
	switch t {
	case OpenTagEvent:
		return "open"
	case TextEvent:
		return "text"
	case CloseTagEvent:
		return "close"
	case EndEvent:
		return "end"
	}
	return "?"
}

// Event is a recorded tokenizer event.
type Event struct {
	Type  EventType
	Name  string         // tag name for open and close events
	Attrs map[string]any // attributes of open events
	Text  string         // value of text events
}

func (e Event) String() string {
	switch e.Type {
	case OpenTagEvent:
		return fmt.Sprintf("<%s %v>", e.Name, e.Attrs)
	case TextEvent:
		return fmt.Sprintf("%q", e.Text)
	case CloseTagEvent:
		return fmt.Sprintf("</%s>", e.Name)
	}
	return e.Type.String()
}

// Recorder is a Handler which records every event it receives. It is a
// Tokenizer as well: Run replays the recorded events to its subscribers,
// adding an End event if none has been recorded.
//
// Recorders are useful for tests and for re-building trees from the same
// token stream more than once.
type Recorder struct {
	Events   []Event
	handlers handlers
}

// Record creates a recorder with a given list of events.
func Record(events ...Event) *Recorder {
	return &Recorder{Events: events}
}

// Open is a shortcut for an open tag event.
func Open(name string, attrs map[string]any) Event {
	return Event{Type: OpenTagEvent, Name: name, Attrs: attrs}
}

// Chars is a shortcut for a text event.
func Chars(text string) Event {
	return Event{Type: TextEvent, Text: text}
}

// Close is a shortcut for a close tag event.
func Close(name string) Event {
	return Event{Type: CloseTagEvent, Name: name}
}

// OpenTag is part of interface Handler.
func (r *Recorder) OpenTag(name string, attrs map[string]any) {
	copied := make(map[string]any, len(attrs))
	for k, v := range attrs {
		copied[k] = v
	}
	r.Events = append(r.Events, Open(name, copied))
}

// Text is part of interface Handler.
func (r *Recorder) Text(value string) {
	r.Events = append(r.Events, Chars(value))
}

// CloseTag is part of interface Handler.
func (r *Recorder) CloseTag(name string) {
	r.Events = append(r.Events, Close(name))
}

// End is part of interface Handler.
func (r *Recorder) End() {
	r.Events = append(r.Events, Event{Type: EndEvent})
}

// Subscribe is part of interface Tokenizer.
func (r *Recorder) Subscribe(h Handler) {
	r.handlers.add(h)
}

// Run is part of interface Tokenizer. It never fails.
func (r *Recorder) Run() error {
	Replay(r.Events, r.handlers)
	return nil
}

// Replay sends a list of events to a handler. An End event terminates the
// replay; if the list does not contain one, End is sent after the last event.
func Replay(events []Event, h Handler) {
	for _, e := range events {
		switch e.Type {
		case OpenTagEvent:
			h.OpenTag(e.Name, e.Attrs)
		case TextEvent:
			h.Text(e.Text)
		case CloseTagEvent:
			h.CloseTag(e.Name)
		case EndEvent:
			h.End()
			return
		}
	}
	h.End()
}

var _ Handler = &Recorder{}
var _ Tokenizer = &Recorder{}
