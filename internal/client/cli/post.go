package cli

import (
	"context"
	"strings"
)

// Open shows a single post together with its comments.
func (a *App) Open(ctx context.Context, id string) error {
	a.detail.Show(ctx, id)
	a.comments.Show(ctx, id)
	a.renderDetail()
	a.renderComments()
	return nil
}

// Comment prompts for a comment body and posts it to the currently open
// post. Blank input is dropped without a round trip.
func (a *App) Comment(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Log in to comment.")
		return nil
	}

	text, err := GetMultiline(a.reader, "Enter your comment", a.out)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}

	if err := a.comments.Submit(ctx, text); err != nil {
		printlnFn("Could not post the comment:", err.Error())
		return err
	}
	a.renderComments()
	return nil
}

// DeletePost deletes the currently open post after an explicit confirmation.
func (a *App) DeletePost(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Log in to delete posts.")
		return nil
	}

	confirm := func() bool {
		return GetConfirm(a.reader, "Delete this post?", a.out)
	}
	navigate := func() {
		printlnFn("Post deleted.")
	}

	if err := a.detail.Delete(ctx, confirm, navigate); err != nil {
		printlnFn("Could not delete the post:", err.Error())
		return err
	}
	return nil
}
