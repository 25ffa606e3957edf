package core

// Record is what a writer receives for one log call: the message after
// the modifier chain has run, the message as produced by the caller, and
// the context built for the call.
type Record struct {
	Level   Level
	Text    string
	Message Message
	Context *Context
}

// Attributes returns the attributes of the underlying message.
func (r *Record) Attributes() map[string]any {
	if r.Message == nil {
		return nil
	}
	return r.Message.Attributes()
}
