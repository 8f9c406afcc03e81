package views

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/api"
	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/models"
)

func TestPostEditor_TagDeduplication(t *testing.T) {
	e := NewPostEditor(&fakeAPI{})

	require.True(t, e.AddTag("go"))
	require.False(t, e.AddTag("go"), "exact duplicate must be rejected silently")
	require.Equal(t, []string{"go"}, e.Tags())

	require.True(t, e.RemoveTag("go"))
	require.Empty(t, e.Tags())
}

func TestPostEditor_TagTrimmingAndBlankRejection(t *testing.T) {
	e := NewPostEditor(&fakeAPI{})

	require.True(t, e.AddTag("  spaced  "))
	require.Equal(t, []string{"spaced"}, e.Tags())
	require.False(t, e.AddTag("spaced"), "trimmed value collides with existing tag")
	require.False(t, e.AddTag("   "))
}

func TestPostEditor_RemoveByTextNotPosition(t *testing.T) {
	e := NewPostEditor(&fakeAPI{})
	e.AddTag("a")
	e.AddTag("b")
	e.AddTag("c")

	require.True(t, e.RemoveTag("b"))
	require.Equal(t, []string{"a", "c"}, e.Tags())
	require.False(t, e.RemoveTag("b"))
}

func TestPostEditor_SubmitValidatesDraft(t *testing.T) {
	e := NewPostEditor(&fakeAPI{})
	e.SetTitle("only a title")

	_, err := e.Submit(context.Background())
	require.ErrorIs(t, err, ErrNothingToSubmit)
}

func TestPostEditor_CreateSendsDraft(t *testing.T) {
	var got api.PostInput
	fake := &fakeAPI{CreatePostFn: func(ctx context.Context, in api.PostInput) (*models.Post, error) {
		got = in
		return &models.Post{ID: "10"}, nil
	}}
	e := NewPostEditor(fake)
	e.SetTitle("Hello")
	e.SetText("World")
	e.AddTag("go")
	e.AddTag("blog")

	post, err := e.Submit(context.Background())
	require.NoError(t, err)
	require.Equal(t, "10", post.ID.String())
	require.Equal(t, "Hello", got.Title)
	require.Equal(t, "World", got.Text)
	require.Equal(t, []string{"go", "blog"}, got.Tags)
}

func TestPostEditor_EditLoadsAndUpdates(t *testing.T) {
	var updatedID string
	var updated api.PostInput
	fake := &fakeAPI{
		GetPostFn: func(ctx context.Context, id string) (*models.Post, error) {
			return &models.Post{ID: models.FlexID(id), Title: "Old", Text: "Body", Tags: []string{"keep"}}, nil
		},
		UpdatePostFn: func(ctx context.Context, id string, in api.PostInput) error {
			updatedID = id
			updated = in
			return nil
		},
	}

	e := NewPostEditor(fake)
	require.NoError(t, e.LoadForEdit(context.Background(), "3"))
	require.True(t, e.IsEditing())
	require.Equal(t, "Old", e.Title())
	require.Equal(t, []string{"keep"}, e.Tags())

	e.SetTitle("New title")
	post, err := e.Submit(context.Background())
	require.NoError(t, err)
	require.Nil(t, post, "updates return no body; callers re-fetch")
	require.Equal(t, "3", updatedID)
	require.Equal(t, "New title", updated.Title)
	require.Equal(t, []string{"keep"}, updated.Tags)
}

func TestPostEditor_LoadForEditPropagatesNotFound(t *testing.T) {
	fake := &fakeAPI{GetPostFn: func(ctx context.Context, id string) (*models.Post, error) {
		return nil, api.ErrNotFound
	}}
	e := NewPostEditor(fake)

	err := e.LoadForEdit(context.Background(), "404")
	require.ErrorIs(t, err, api.ErrNotFound)
}
