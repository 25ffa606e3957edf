package modifier

import (
	"time"

	"github.com/philipp01105/bitlog/core"
)

// TimestampLayout renders as yyyy-MM-dd HH:mm:ss.SSS
const TimestampLayout = "2006-01-02 15:04:05.000"

// Timestamp prefixes the message with the context time and a space.
type Timestamp struct {
	// Location used for rendering (default: time.Local)
	Location *time.Location
	// Now is used when no context is available (default: time.Now)
	Now func() time.Time
}

// NewTimestamp creates a Timestamp modifier rendering local time.
func NewTimestamp() *Timestamp {
	return &Timestamp{}
}

// Modify implements Modifier.
func (m *Timestamp) Modify(message string, _ core.Level, ctx *core.Context) string {
	var t time.Time
	switch {
	case ctx != nil:
		t = ctx.Time()
	case m.Now != nil:
		t = m.Now()
	default:
		t = time.Now()
	}
	loc := m.Location
	if loc == nil {
		loc = time.Local
	}

	buf := getBuffer()
	defer putBuffer(buf)
	b := t.In(loc).AppendFormat(buf.AvailableBuffer(), TimestampLayout)
	buf.Write(b)
	buf.WriteByte(' ')
	buf.WriteString(message)
	return buf.String()
}
