package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/views"
)

// NewPost walks the user through composing and publishing a post.
func (a *App) NewPost(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Log in to write posts.")
		return nil
	}

	editor := views.NewPostEditor(a.api)

	title, err := getSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}
	editor.SetTitle(title)

	text, err := GetMultiline(a.reader, "Enter post body", a.out)
	if err != nil {
		return err
	}
	editor.SetText(text)

	if err := a.collectTags(editor); err != nil {
		return err
	}

	post, err := editor.Submit(ctx)
	if err != nil {
		if errors.Is(err, views.ErrNothingToSubmit) {
			printlnFn("A post needs both a title and a body.")
			return nil
		}
		printlnFn("Could not publish the post:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Published post %s.", post.ID))
	return nil
}

// EditPost loads an existing post into the editor and saves the changes.
// Empty input keeps the current value.
func (a *App) EditPost(ctx context.Context, id string) error {
	if !a.isLoggedIn() {
		printlnFn("Log in to edit posts.")
		return nil
	}

	editor := views.NewPostEditor(a.api)
	if err := editor.LoadForEdit(ctx, id); err != nil {
		printlnFn("Could not load the post:", err.Error())
		return err
	}

	title, err := getSimpleText(a.reader, fmt.Sprintf("Title [%s]", editor.Title()), a.out)
	if err != nil {
		return err
	}
	if title != "" {
		editor.SetTitle(title)
	}

	text, err := GetMultiline(a.reader, "New body (empty keeps the current one)", a.out)
	if err != nil {
		return err
	}
	if text != "" {
		editor.SetText(text)
	}

	if len(editor.Tags()) > 0 {
		printlnFn("Current tags:", joinTags(editor.Tags()))
	}
	if err := a.collectTags(editor); err != nil {
		return err
	}

	if _, err := editor.Submit(ctx); err != nil {
		if errors.Is(err, views.ErrNothingToSubmit) {
			printlnFn("A post needs both a title and a body.")
			return nil
		}
		printlnFn("Could not save the post:", err.Error())
		return err
	}

	printlnFn("Post updated.")
	return nil
}

func (a *App) collectTags(editor *views.PostEditor) error {
	tags, err := GetTags(a.reader, a.out)
	if err != nil {
		return err
	}
	for _, tag := range tags {
		editor.AddTag(tag)
	}
	return nil
}
