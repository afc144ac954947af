package companion

import (
	"strings"
	"time"

	"github.com/idilsaglam/safespace/internal/model"
)

// DefaultDelay is how long the companion "thinks" before answering.
const DefaultDelay = 1500 * time.Millisecond

// Request is a pending companion answer. Mood is captured when the request
// starts and is honoured even if the selected mood changes meanwhile.
type Request struct {
	Seq  int
	Mood model.Mood
}

// Responder is the companion shown next to the journal.
type Responder struct {
	src      Source
	message  string
	thinking bool
	seq      int
}

func NewResponder(src Source) *Responder {
	if src == nil {
		src = NewSource()
	}
	return &Responder{src: src, message: Greeting}
}

// Begin enters the thinking state for an entry written under mood.
func (r *Responder) Begin(mood model.Mood) Request {
	r.seq++
	r.thinking = true
	return Request{Seq: r.seq, Mood: mood}
}

// Resolve picks the answer for req and shows it. The responder keeps thinking
// while a newer request is still pending.
func (r *Responder) Resolve(req Request) string {
	msg, err := Pick(r.src, Responses(req.Mood))
	if err != nil {
		msg = r.message
	}
	r.message = msg
	if req.Seq >= r.seq {
		r.thinking = false
	}
	return msg
}

func (r *Responder) Thinking() bool  { return r.thinking }
func (r *Responder) Message() string { return r.message }

// Ellipsis is the animated "Thinking" suffix for the given frame.
func Ellipsis(frame int) string {
	if frame < 0 {
		frame = -frame
	}
	return strings.Repeat(".", frame%4)
}

// QuoteRotator is the quote widget. It starts on the first quote.
type QuoteRotator struct {
	src     Source
	current model.Quote
}

func NewQuoteRotator(src Source) *QuoteRotator {
	if src == nil {
		src = NewSource()
	}
	return &QuoteRotator{src: src, current: quotes[0]}
}

func (q *QuoteRotator) Current() model.Quote { return q.current }

func (q *QuoteRotator) Next() model.Quote {
	if v, err := Pick(q.src, quotes); err == nil {
		q.current = v
	}
	return q.current
}
