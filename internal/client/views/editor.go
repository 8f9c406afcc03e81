package views

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/api"
	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/models"
)

// ErrNothingToSubmit is returned when Submit is called on an editor whose
// required fields failed validation.
var ErrNothingToSubmit = errors.New("post needs a title and a body")

// Draft is the validated shape of a post under composition.
type Draft struct {
	Title string `validate:"required"`
	Text  string `validate:"required"`
}

// PostEditor drives post creation and editing. It is not a fetcher: it holds
// the draft being composed and the tag-list policy, and submits through the
// API. After a successful submit the caller navigates away; list views pick
// up the change by re-fetching.
type PostEditor struct {
	api      api.Client
	validate *validator.Validate

	postID string // empty while creating a new post
	title  string
	text   string
	tags   []string
}

func NewPostEditor(client api.Client) *PostEditor {
	return &PostEditor{
		api:      client,
		validate: validator.New(),
	}
}

// LoadForEdit fills the editor from an existing post.
func (e *PostEditor) LoadForEdit(ctx context.Context, id string) error {
	post, err := e.api.GetPost(ctx, id)
	if err != nil {
		return fmt.Errorf("load post for editing: %w", err)
	}
	e.postID = id
	e.title = post.Title
	e.text = post.Text
	e.tags = append([]string(nil), post.Tags...)
	return nil
}

func (e *PostEditor) SetTitle(s string) { e.title = strings.TrimSpace(s) }
func (e *PostEditor) SetText(s string)  { e.text = s }

func (e *PostEditor) Title() string { return e.title }
func (e *PostEditor) Text() string  { return e.text }

// IsEditing reports whether the editor targets an existing post.
func (e *PostEditor) IsEditing() bool { return e.postID != "" }

// AddTag adds a trimmed tag token. Blank input and exact duplicates are
// skipped silently; the return value only tells the caller whether the list
// changed.
func (e *PostEditor) AddTag(raw string) bool {
	tag := strings.TrimSpace(raw)
	if tag == "" {
		return false
	}
	for _, existing := range e.tags {
		if existing == tag {
			return false
		}
	}
	e.tags = append(e.tags, tag)
	return true
}

// RemoveTag removes a tag by exact text match, not by position, so removal
// still hits the intended tag after any reordering.
func (e *PostEditor) RemoveTag(raw string) bool {
	tag := strings.TrimSpace(raw)
	for i, existing := range e.tags {
		if existing == tag {
			e.tags = append(e.tags[:i], e.tags[i+1:]...)
			return true
		}
	}
	return false
}

// Tags returns a copy of the current tag list.
func (e *PostEditor) Tags() []string {
	return append([]string(nil), e.tags...)
}

// Submit validates the draft and creates or updates the post. For an update
// the returned post is nil; the caller re-fetches whatever view needs it.
func (e *PostEditor) Submit(ctx context.Context) (*models.Post, error) {
	draft := Draft{Title: e.title, Text: e.text}
	if err := e.validate.Struct(draft); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNothingToSubmit, err)
	}

	in := api.PostInput{Title: e.title, Text: e.text, Tags: e.Tags()}
	if e.postID != "" {
		if err := e.api.UpdatePost(ctx, e.postID, in); err != nil {
			return nil, fmt.Errorf("update post: %w", err)
		}
		return nil, nil
	}

	post, err := e.api.CreatePost(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}
