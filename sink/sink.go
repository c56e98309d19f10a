package sink

import (
	"io"
	"message-producer/contract"
)

// New returns the sink rendering the given format on w.
func New(format Format, w io.Writer, colours bool) (contract.EmissionSink, error) {
	if format == FormatTable {
		return NewTableSink(w), nil
	}
	return NewWriterSink(w, format, colours)
}
