package benchmark

import "github.com/philipp01105/bitlog/core"

// noopWriter touches the record and drops it
type noopWriter struct{}

func newNoopWriter() *noopWriter {
	return &noopWriter{}
}

func (w *noopWriter) WriteMessage(rec *core.Record) error {
	_ = len(rec.Text)
	return nil
}

func (w *noopWriter) Close() error {
	return nil
}
