package cli

import (
	"context"

	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/views"
)

// Posts shows the post list, optionally jumping to a specific page.
func (a *App) Posts(ctx context.Context, page int) error {
	if page > 0 && page != a.posts.Page() {
		a.posts.SetPage(ctx, page)
	} else {
		a.posts.Reload(ctx)
	}
	a.renderPostList()
	return nil
}

func (a *App) NextPage(ctx context.Context) error {
	a.posts.Next(ctx)
	a.renderPostList()
	return nil
}

func (a *App) PrevPage(ctx context.Context) error {
	a.posts.Prev(ctx)
	a.renderPostList()
	return nil
}

// Search runs a post search. Unknown modes fall back to searching everything.
func (a *App) Search(ctx context.Context, mode string, term string) error {
	a.searchView.Search(ctx, term, views.SearchMode(mode))
	a.renderSearchResults()
	return nil
}
