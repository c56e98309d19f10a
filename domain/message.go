// Package domain contains the core concepts of the message producer.
// The message itself is a constant; an Emission records one production of it.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// AnotherMessage is the fixed content returned by Produce.
const AnotherMessage = "Hello World from Another Message Producer"

// Produce returns AnotherMessage. It has no state and cannot fail,
// so it is safe to call from any number of goroutines.
func Produce() string {
	return AnotherMessage
}

// ProducerFunc adapts a plain function to contract.Producer.
type ProducerFunc func() string

func (f ProducerFunc) Produce() string { return f() }

// AnotherMessageProducer is Produce seen as a contract.Producer.
var AnotherMessageProducer = ProducerFunc(Produce)

// Emission represents one immutable invocation of a producer.
type Emission struct {
	ID         uuid.UUID // unique identifier
	Sequence   int
	Content    string
	ProducedAt time.Time
}

func NewEmission(sequence int, content string, at time.Time) Emission {
	return Emission{
		ID:         uuid.New(),
		Sequence:   sequence,
		Content:    content,
		ProducedAt: at,
	}
}
