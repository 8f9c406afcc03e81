package views

import (
	"context"
	"sync"

	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/api"
	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/models"
	"github.com/kristinasrbinoska/blogtalks-vibe/internal/logging"
)

// DefaultPageSize matches the page size the web frontend always requested.
const DefaultPageSize = 9

// PostListView synchronizes the paginated post listing. Its dependency set
// is the 1-based page number: changing the page triggers exactly one fetch.
type PostListView struct {
	api      api.Client
	log      logging.Logger
	pageSize int

	mu     sync.Mutex
	page   int
	state  State
	errMsg string
	posts  []models.Post
	meta   models.PageMeta
}

func NewPostListView(client api.Client, log logging.Logger, pageSize int) *PostListView {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &PostListView{
		api:      client,
		log:      log,
		pageSize: pageSize,
		page:     1,
		meta:     models.PageMeta{TotalPages: 1},
	}
}

// Snapshot returns the view's current render state.
func (v *PostListView) Snapshot() (State, []models.Post, models.PageMeta, string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state, v.posts, v.meta, v.errMsg
}

func (v *PostListView) Page() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.page
}

// CanPrev reports whether a previous page exists; disabled at page 1.
func (v *PostListView) CanPrev() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.page > 1
}

// CanNext reports whether a next page exists; disabled at the last known
// total-pages value.
func (v *PostListView) CanNext() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.page < v.meta.TotalPages
}

// SetPage moves to page p and fetches it. Out-of-range or unchanged values
// are ignored without a fetch.
func (v *PostListView) SetPage(ctx context.Context, p int) {
	v.mu.Lock()
	if p < 1 || p == v.page {
		v.mu.Unlock()
		return
	}
	v.page = p
	v.mu.Unlock()
	v.Reload(ctx)
}

// Next advances one page if possible.
func (v *PostListView) Next(ctx context.Context) {
	if v.CanNext() {
		v.SetPage(ctx, v.Page()+1)
	}
}

// Prev goes back one page if possible.
func (v *PostListView) Prev(ctx context.Context) {
	if v.CanPrev() {
		v.SetPage(ctx, v.Page()-1)
	}
}

// Reload fetches the listing for the current page. A result that arrives for
// a page the user has already left is discarded.
func (v *PostListView) Reload(ctx context.Context) {
	v.mu.Lock()
	page := v.page
	v.state = StateLoading
	v.errMsg = ""
	v.mu.Unlock()

	res, err := v.api.ListPosts(ctx, api.PostQuery{Page: page, PageSize: v.pageSize})

	v.mu.Lock()
	defer v.mu.Unlock()
	if page != v.page {
		return
	}
	if err != nil {
		v.state = StateError
		v.errMsg = failureMessage(err)
		v.log.Warn(ctx, "post list fetch failed", "page", page, "error", err)
		return
	}
	v.posts = res.Posts
	v.meta = res.Meta
	v.state = StateReady
}
