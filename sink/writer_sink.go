package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"message-producer/domain"
	"message-producer/errors"
	"strconv"
	"time"

	"github.com/gookit/color"
)

type Format string

const (
	FormatPlain  Format = "plain"
	FormatJSON   Format = "json"
	FormatPretty Format = "pretty"
	FormatTable  Format = "table"
)

// WriterSink writes one line per emission.
type WriterSink struct {
	w       io.Writer
	format  Format
	colours bool
}

func NewWriterSink(w io.Writer, format Format, colours bool) (*WriterSink, error) {
	switch format {
	case FormatPlain, FormatJSON, FormatPretty:
		return &WriterSink{w: w, format: format, colours: colours}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownFormat, format)
	}
}

type jsonEmission struct {
	ID         string `json:"id"`
	Sequence   int    `json:"sequence"`
	Content    string `json:"content"`
	ProducedAt string `json:"produced_at"`
}

func (s *WriterSink) Consume(_ context.Context, e domain.Emission) error {
	switch s.format {
	case FormatJSON:
		return json.NewEncoder(s.w).Encode(jsonEmission{
			ID:         e.ID.String(),
			Sequence:   e.Sequence,
			Content:    e.Content,
			ProducedAt: e.ProducedAt.Format(time.RFC3339Nano),
		})
	case FormatPretty:
		prefix := "#" + strconv.Itoa(e.Sequence)
		if s.colours {
			prefix = color.New(color.FgCyan, color.OpBold).Render(prefix)
		}
		_, err := fmt.Fprintf(s.w, "%s %s\n", prefix, e.Content)
		return err
	default:
		_, err := fmt.Fprintln(s.w, e.Content)
		return err
	}
}
