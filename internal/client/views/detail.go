package views

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/api"
	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/models"
	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/session"
	"github.com/kristinasrbinoska/blogtalks-vibe/internal/logging"
)

// SessionSource is the read-only slice of the session manager views depend
// on. Only the manager itself writes session state.
type SessionSource interface {
	Current() session.Session
}

// detailKey is the post detail view's dependency set: which post, and who is
// looking at it. Authorship display depends on the viewer, so a login or
// logout changes the key and invalidates whatever is cached.
type detailKey struct {
	postID  string
	subject string
}

// PostDetailView synchronizes a single post, including the viewer's
// ownership of it.
type PostDetailView struct {
	api      api.Client
	sessions SessionSource
	log      logging.Logger

	mu     sync.Mutex
	postID string
	state  State
	errMsg string
	post   *models.Post
	owned  bool
}

func NewPostDetailView(client api.Client, sessions SessionSource, log logging.Logger) *PostDetailView {
	return &PostDetailView{api: client, sessions: sessions, log: log}
}

func (v *PostDetailView) key() detailKey {
	return detailKey{postID: v.postID, subject: v.sessions.Current().SubjectID()}
}

// Snapshot returns the view's current render state. owned is only meaningful
// in StateReady.
func (v *PostDetailView) Snapshot() (State, *models.Post, bool, string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state, v.post, v.owned, v.errMsg
}

// Show switches the view to the given post and fetches it.
func (v *PostDetailView) Show(ctx context.Context, postID string) {
	v.mu.Lock()
	v.postID = postID
	v.mu.Unlock()
	v.Reload(ctx)
}

// Reload fetches the post for the current dependency key. A response that
// resolves after the key moved on (another post opened, or the session
// identity changed) is discarded.
func (v *PostDetailView) Reload(ctx context.Context) {
	v.mu.Lock()
	key := v.key()
	if key.postID == "" {
		v.mu.Unlock()
		return
	}
	v.state = StateLoading
	v.errMsg = ""
	v.mu.Unlock()

	post, err := v.api.GetPost(ctx, key.postID)

	v.mu.Lock()
	defer v.mu.Unlock()
	if key != v.key() {
		return
	}
	if errors.Is(err, api.ErrNotFound) {
		v.post = nil
		v.owned = false
		v.state = StateNotFound
		return
	}
	if err != nil {
		v.state = StateError
		v.errMsg = failureMessage(err)
		v.log.Warn(ctx, "post fetch failed", "post", key.postID, "error", err)
		return
	}
	v.post = post
	v.owned = post.OwnedBy(key.subject)
	v.state = StateReady
}

// Delete removes the shown post. confirm is the interactive gate: the delete
// call is only issued when it returns true. On success the view forgets the
// now-deleted resource and invokes navigate instead of re-fetching it.
func (v *PostDetailView) Delete(ctx context.Context, confirm func() bool, navigate func()) error {
	v.mu.Lock()
	id := v.postID
	v.mu.Unlock()
	if id == "" {
		return nil
	}
	if confirm == nil || !confirm() {
		return nil
	}

	if err := v.api.DeletePost(ctx, id); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	v.mu.Lock()
	v.postID = ""
	v.post = nil
	v.owned = false
	v.state = StateIdle
	v.mu.Unlock()

	if navigate != nil {
		navigate()
	}
	return nil
}
