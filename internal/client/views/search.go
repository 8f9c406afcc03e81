package views

import (
	"context"
	"strings"
	"sync"

	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/api"
	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/models"
	"github.com/kristinasrbinoska/blogtalks-vibe/internal/logging"
)

// SearchMode selects which filter the query term feeds.
type SearchMode string

const (
	SearchAll  SearchMode = "all"
	SearchText SearchMode = "text"
	SearchTag  SearchMode = "tag"
)

// searchKey is the search view's dependency set.
type searchKey struct {
	term string
	mode SearchMode
	page int
}

// SearchView synchronizes search results over the post listing endpoint.
type SearchView struct {
	api      api.Client
	log      logging.Logger
	pageSize int

	mu      sync.Mutex
	key     searchKey
	state   State
	errMsg  string
	results []models.Post
	meta    models.PageMeta
}

func NewSearchView(client api.Client, log logging.Logger, pageSize int) *SearchView {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &SearchView{
		api:      client,
		log:      log,
		pageSize: pageSize,
		meta:     models.PageMeta{TotalPages: 1},
	}
}

// Snapshot returns the view's current render state.
func (v *SearchView) Snapshot() (State, []models.Post, models.PageMeta, string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state, v.results, v.meta, v.errMsg
}

// Search runs a fresh query starting at page 1. A blank term is ignored.
func (v *SearchView) Search(ctx context.Context, term string, mode SearchMode) {
	term = strings.TrimSpace(term)
	if term == "" {
		return
	}
	if mode != SearchText && mode != SearchTag {
		mode = SearchAll
	}

	v.mu.Lock()
	v.key = searchKey{term: term, mode: mode, page: 1}
	v.mu.Unlock()
	v.Reload(ctx)
}

func (v *SearchView) Page() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.key.page
}

func (v *SearchView) CanPrev() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.key.page > 1
}

func (v *SearchView) CanNext() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.key.page < v.meta.TotalPages
}

// SetPage pages through the current query's results.
func (v *SearchView) SetPage(ctx context.Context, p int) {
	v.mu.Lock()
	if v.key.term == "" || p < 1 || p == v.key.page {
		v.mu.Unlock()
		return
	}
	v.key.page = p
	v.mu.Unlock()
	v.Reload(ctx)
}

// Reload fetches results for the current dependency key; stale responses are
// discarded.
func (v *SearchView) Reload(ctx context.Context) {
	v.mu.Lock()
	key := v.key
	if key.term == "" {
		v.mu.Unlock()
		return
	}
	v.state = StateLoading
	v.errMsg = ""
	v.mu.Unlock()

	q := api.PostQuery{Page: key.page, PageSize: v.pageSize}
	// "all" and "text" both search the post text; "tag" filters by tag.
	if key.mode == SearchTag {
		q.Tag = key.term
	} else {
		q.SearchWord = key.term
	}

	res, err := v.api.ListPosts(ctx, q)

	v.mu.Lock()
	defer v.mu.Unlock()
	if key != v.key {
		return
	}
	if err != nil {
		v.state = StateError
		v.errMsg = failureMessage(err)
		v.log.Warn(ctx, "search fetch failed", "term", key.term, "mode", string(key.mode), "error", err)
		return
	}
	v.results = res.Posts
	v.meta = res.Meta
	v.state = StateReady
}
