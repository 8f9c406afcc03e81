package views

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/api"
	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/models"
	"github.com/kristinasrbinoska/blogtalks-vibe/internal/logging"
)

// commentsKey is the comment view's dependency set: the post under which the
// comments live, plus a tick that increments on every successful local
// submission so the list is re-fetched rather than patched in place.
type commentsKey struct {
	postID string
	tick   int
}

// CommentsView synchronizes the comment list under one post.
type CommentsView struct {
	api api.Client
	log logging.Logger

	mu       sync.Mutex
	postID   string
	tick     int
	state    State
	errMsg   string
	comments []models.Comment
}

func NewCommentsView(client api.Client, log logging.Logger) *CommentsView {
	return &CommentsView{api: client, log: log}
}

func (v *CommentsView) key() commentsKey {
	return commentsKey{postID: v.postID, tick: v.tick}
}

// Snapshot returns the view's current render state.
func (v *CommentsView) Snapshot() (State, []models.Comment, string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state, v.comments, v.errMsg
}

// Show switches the view to the given post's comments and fetches them.
func (v *CommentsView) Show(ctx context.Context, postID string) {
	v.mu.Lock()
	v.postID = postID
	v.mu.Unlock()
	v.Reload(ctx)
}

// Reload fetches the comments for the current dependency key. Responses for
// a superseded key are discarded.
func (v *CommentsView) Reload(ctx context.Context) {
	v.mu.Lock()
	key := v.key()
	if key.postID == "" {
		v.mu.Unlock()
		return
	}
	v.state = StateLoading
	v.errMsg = ""
	v.mu.Unlock()

	comments, err := v.api.ListComments(ctx, key.postID)

	v.mu.Lock()
	defer v.mu.Unlock()
	if key != v.key() {
		return
	}
	if err != nil {
		v.state = StateError
		v.errMsg = failureMessage(err)
		v.log.Warn(ctx, "comment fetch failed", "post", key.postID, "error", err)
		return
	}
	v.comments = comments
	v.state = StateReady
}

// Submit posts a new comment under the shown post. Blank input is skipped
// silently, mirroring client-side validation elsewhere. On success the
// mutation tick advances and the list is re-fetched; the server's copy of
// the new comment is never merged locally.
func (v *CommentsView) Submit(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	v.mu.Lock()
	postID := v.postID
	v.mu.Unlock()
	if postID == "" {
		return nil
	}

	if _, err := v.api.AddComment(ctx, api.CommentInput{Text: text, PostID: postID}); err != nil {
		return fmt.Errorf("add comment: %w", err)
	}

	v.mu.Lock()
	v.tick++
	v.mu.Unlock()
	v.Reload(ctx)
	return nil
}
