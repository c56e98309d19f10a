package errors

import "fmt"

var (
	ErrInvalidConfig   = fmt.Errorf("invalid configuration")
	ErrUnknownFormat   = fmt.Errorf("unknown output format")
	ErrSinkTimeout     = fmt.Errorf("sink timeout")
	ErrJournalDisabled = fmt.Errorf("journal is disabled")
)
