package sink

import (
	"context"
	"io"
	"message-producer/domain"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
)

// TableSink buffers emissions and renders them as a single table on Flush.
type TableSink struct {
	w    io.Writer
	rows [][]string
}

func NewTableSink(w io.Writer) *TableSink {
	return &TableSink{w: w}
}

func (s *TableSink) Consume(_ context.Context, e domain.Emission) error {
	s.rows = append(s.rows, EmissionRow(e))
	return nil
}

func (s *TableSink) Flush() error {
	RenderTable(s.w, s.rows)
	s.rows = nil
	return nil
}

func EmissionRow(e domain.Emission) []string {
	return []string{
		strconv.Itoa(e.Sequence),
		e.ID.String(),
		e.Content,
		e.ProducedAt.Format(time.RFC3339Nano),
	}
}

// RenderTable prints rows with the emission header, left aligned and borderless.
func RenderTable(w io.Writer, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Sequence", "ID", "Content", "Produced At"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.AppendBulk(rows)
	table.Render()
}
