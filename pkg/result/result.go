// Package result models the outcome of a watched or polled cluster resource.
// A Result is exactly one of Pending, Ready or Failed.
package result

import "fmt"

// Phase of a Result
type Phase int

const (
	PhasePending Phase = iota
	PhaseReady
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "Pending"
	case PhaseReady:
		return "Ready"
	case PhaseFailed:
		return "Failed"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	for _, phase := range []Phase{PhasePending, PhaseReady, PhaseFailed} {
		if phase.String() == string(text) {
			*p = phase
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", text)
}

// Result holds the data of a resource once it has been loaded, or the error
// that prevented it from loading. The zero value is Pending.
type Result[T any] struct {
	phase Phase
	data  T
	err   error
}

// Pending returns a Result that has not been loaded yet
func Pending[T any]() Result[T] {
	return Result[T]{phase: PhasePending}
}

// Ready returns a loaded Result
func Ready[T any](data T) Result[T] {
	return Result[T]{phase: PhaseReady, data: data}
}

// Failed returns a Result that failed to load. A nil err is replaced so that
// a Failed result always carries an error.
func Failed[T any](err error) Result[T] {
	if err == nil {
		err = fmt.Errorf("unknown error")
	}
	return Result[T]{phase: PhaseFailed, err: err}
}

func (r Result[T]) Phase() Phase { return r.phase }

func (r Result[T]) IsPending() bool { return r.phase == PhasePending }

func (r Result[T]) IsReady() bool { return r.phase == PhaseReady }

func (r Result[T]) IsFailed() bool { return r.phase == PhaseFailed }

// Err is non-nil only for Failed results
func (r Result[T]) Err() error { return r.err }

// Data returns the loaded data and whether the result is Ready
func (r Result[T]) Data() (T, bool) {
	return r.data, r.phase == PhaseReady
}

// OrEmpty returns the data of a Ready result and the zero value otherwise.
// Callers computing summaries treat Pending and Failed inputs as empty.
func (r Result[T]) OrEmpty() T {
	if r.phase != PhaseReady {
		var zero T
		return zero
	}
	return r.data
}

// Map converts the data of a Ready result, keeping Pending and Failed as they are
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	switch r.phase {
	case PhaseReady:
		return Ready(fn(r.data))
	case PhaseFailed:
		return Failed[U](r.err)
	}
	return Pending[U]()
}
