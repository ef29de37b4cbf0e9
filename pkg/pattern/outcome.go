package pattern

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Outcome is an immutable snapshot of a finished chain.
type Outcome[R any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    R
	err       error
	matched   bool
}

func matchedOutcome[R any](r R) Outcome[R] {
	return Outcome[R]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		result:    r,
		matched:   true,
	}
}

func unmatchedOutcome[R any](err error) Outcome[R] {
	return Outcome[R]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		err:       err,
		matched:   false,
	}
}

func (o Outcome[R]) Id() uuid.UUID {
	return o.id
}

// CreatedAt time creation (UTC)
func (o Outcome[R]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[R]) Result() R {
	return o.result
}

// Err is a *NoMatchError if the chain did not match, nil otherwise.
func (o Outcome[R]) Err() error {
	return o.err
}

func (o Outcome[R]) Matched() bool {
	return o.matched
}

func (o Outcome[R]) Get() (R, error) {
	return o.result, o.err
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (o Outcome[R]) MarshalZerologObject(e *zerolog.Event) {
	e.Str("id", o.id.String()).
		Time("created_at", o.createdAt).
		Bool("matched", o.matched)

	if o.matched {
		e.Interface("result", o.result)
	} else {
		e.AnErr("error", o.err)
	}
}
