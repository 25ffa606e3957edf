package core

// Message is the payload of a log call: either plain Text or a named
// structured event with attributes.
type Message interface {
	// Name is the text of a Text message, or the event name
	Name() string
	// Attributes is nil for Text messages
	Attributes() map[string]any
}

// Text is a plain text message.
type Text string

// Name returns the text itself.
func (t Text) Name() string { return string(t) }

// Attributes returns nil.
func (t Text) Attributes() map[string]any { return nil }

// Event is a named message carrying attributes.
type Event struct {
	name  string
	attrs map[string]any
}

// NewMessage creates a structured message. The map is used as given.
func NewMessage(name string, attrs map[string]any) *Event {
	return &Event{name: name, attrs: attrs}
}

// Msg creates a structured message from a list of attributes. Later
// attributes overwrite earlier ones with the same key.
func Msg(name string, attrs ...Attr) *Event {
	m := make(map[string]any, len(attrs))
	for _, a := range attrs {
		m[a.Key] = a.Value
	}
	return &Event{name: name, attrs: m}
}

// Name returns the event name.
func (e *Event) Name() string { return e.name }

// Attributes returns the event attributes.
func (e *Event) Attributes() map[string]any { return e.attrs }

// IsText reports whether m is a plain text message.
func IsText(m Message) bool {
	_, ok := m.(Text)
	return ok
}
