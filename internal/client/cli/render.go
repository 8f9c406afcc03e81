package cli

import (
	"fmt"
	"strings"

	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/models"
	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/views"
)

func joinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

func renderPostLine(p models.Post) string {
	line := fmt.Sprintf("[%s] %s", p.ID, p.Title)
	if p.CreatorName != "" {
		line += " by " + p.CreatorName
	}
	if p.CreatedAt != "" {
		line += " (" + p.CreatedAt + ")"
	}
	return line
}

func renderPage(state views.State, posts []models.Post, meta models.PageMeta, msg string) {
	switch state {
	case views.StateError:
		printlnFn(msg)
		return
	case views.StateReady:
	default:
		return
	}

	if len(posts) == 0 {
		printlnFn("No posts found.")
		return
	}
	for _, p := range posts {
		printlnFn(renderPostLine(p))
	}
	printlnFn(fmt.Sprintf("Page %d of %d (%d posts)", meta.PageNumber, meta.TotalPages, meta.TotalCount))
}

func (a *App) renderPostList() {
	state, posts, meta, msg := a.posts.Snapshot()
	renderPage(state, posts, meta, msg)
}

func (a *App) renderSearchResults() {
	state, posts, meta, msg := a.searchView.Snapshot()
	renderPage(state, posts, meta, msg)
}

func (a *App) renderDetail() {
	state, post, owned, msg := a.detail.Snapshot()
	switch state {
	case views.StateNotFound:
		printlnFn("The requested post was not found.")
		return
	case views.StateError:
		printlnFn(msg)
		return
	case views.StateReady:
	default:
		return
	}

	printlnFn("# " + post.Title)
	if post.CreatorName != "" {
		printlnFn("by " + post.CreatorName)
	}
	if len(post.Tags) > 0 {
		printlnFn("Tags: " + joinTags(post.Tags))
	}
	printlnFn("")
	printlnFn(post.Text)
	if owned {
		printlnFn("(this is your post: 'edit " + post.ID.String() + "' or 'delete')")
	}
}

func (a *App) renderComments() {
	state, comments, msg := a.comments.Snapshot()
	switch state {
	case views.StateError:
		printlnFn(msg)
		return
	case views.StateReady:
	default:
		return
	}

	if len(comments) == 0 {
		printlnFn("No comments yet.")
		return
	}
	printlnFn(fmt.Sprintf("--- %d comment(s) ---", len(comments)))
	for _, c := range comments {
		author := c.CreatorName
		if author == "" {
			author = "anonymous"
		}
		printlnFn(fmt.Sprintf("%s: %s", author, c.Text))
	}
}
