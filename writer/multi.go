package writer

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/philipp01105/bitlog/core"
)

// Multi sends records to several writers. A failing or panicking child
// does not stop the others; their errors are combined.
type Multi struct {
	writers []Writer
}

// NewMulti creates a fan-out writer
func NewMulti(writers ...Writer) *Multi {
	return &Multi{writers: writers}
}

// WriteMessage writes rec to every child.
func (m *Multi) WriteMessage(rec *core.Record) error {
	var err error
	for _, w := range m.writers {
		err = multierr.Append(err, Safe(w, rec))
	}
	return err
}

// Close closes every child implementing io.Closer.
func (m *Multi) Close() error {
	var err error
	for _, w := range m.writers {
		err = multierr.Append(err, closeWriter(w))
	}
	return err
}

// Safe calls w.WriteMessage and turns a panic into an error.
func Safe(w Writer, rec *core.Record) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("bitlog: writer %T panicked: %v", w, r)
		}
	}()
	return w.WriteMessage(rec)
}

func closeWriter(w Writer) error {
	if c, ok := w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
