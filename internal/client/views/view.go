// Package views contains the per-view data synchronizers. Each view owns its
// fetch lifecycle (loading/data/error), declares the dependency set that
// determines what it should display, and re-fetches whenever that set
// changes. Consistency after login, logout, or a mutation is achieved by
// re-fetching, never by patching another view's cached data.
//
// Each synchronizer guards against stale responses: the dependency key is
// captured when a fetch starts and compared against the live key when the
// response arrives; a mismatch means a newer fetch owns the view and the
// result is discarded. Superseded requests are not cancelled, only ignored.
package views

import (
	"errors"

	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/api"
)

// State describes where a view is in its fetch lifecycle.
type State int

const (
	// StateIdle: nothing requested yet.
	StateIdle State = iota
	// StateLoading: a fetch is in flight; any previous data is not current.
	StateLoading
	// StateReady: the displayed data matches the dependency set.
	StateReady
	// StateNotFound: the requested resource does not exist or is hidden.
	StateNotFound
	// StateError: the fetch ended in a failure; see the view's message.
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateNotFound:
		return "not found"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// failureMessage turns a fetch error into the message a view shows. Failures
// stop at the view boundary; nothing here is fatal.
func failureMessage(err error) string {
	switch {
	case errors.Is(err, api.ErrUnavailable):
		return "Could not reach the server. Please try again."
	case errors.Is(err, api.ErrNotFound):
		return "The requested resource was not found."
	default:
		return err.Error()
	}
}
