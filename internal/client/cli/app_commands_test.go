package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/api"
	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/models"
	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/session"
	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/token"
	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/views"
	"github.com/kristinasrbinoska/blogtalks-vibe/internal/logging"
)

// stubAPI is a programmable api.Client for exercising command handlers
// end to end without a server.
type stubAPI struct {
	mu sync.Mutex

	posts    map[string]*models.Post
	comments map[string][]models.Comment

	deleted   []string
	commented []api.CommentInput
}

func newStubAPI() *stubAPI {
	return &stubAPI{
		posts: map[string]*models.Post{
			"1": {ID: "1", Title: "First", Text: "body", CreatedBy: "5", CreatorName: "Alice"},
		},
		comments: map[string][]models.Comment{
			"1": {{ID: "10", PostID: "1", Text: "nice", CreatorName: "Bob"}},
		},
	}
}

func (s *stubAPI) Login(context.Context, api.LoginInput) (*api.LoginEnvelope, error) {
	return &api.LoginEnvelope{}, nil
}
func (s *stubAPI) Register(context.Context, api.RegisterInput) error { return nil }

func (s *stubAPI) ListPosts(_ context.Context, q api.PostQuery) (*models.PostPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	page := &models.PostPage{Meta: models.PageMeta{PageNumber: q.Page, PageSize: q.PageSize, TotalPages: 1}}
	for _, p := range s.posts {
		page.Posts = append(page.Posts, *p)
	}
	page.Meta.TotalCount = len(page.Posts)
	return page, nil
}

func (s *stubAPI) GetPost(_ context.Context, id string) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok {
		return nil, api.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (s *stubAPI) CreatePost(_ context.Context, in api.PostInput) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := &models.Post{ID: "2", Title: in.Title, Text: in.Text, Tags: in.Tags}
	s.posts["2"] = p
	clone := *p
	return &clone, nil
}

func (s *stubAPI) UpdatePost(_ context.Context, id string, in api.PostInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok {
		return api.ErrNotFound
	}
	p.Title, p.Text, p.Tags = in.Title, in.Text, in.Tags
	return nil
}

func (s *stubAPI) DeletePost(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, id)
	delete(s.posts, id)
	return nil
}

func (s *stubAPI) ListComments(_ context.Context, postID string) ([]models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Comment(nil), s.comments[postID]...), nil
}

func (s *stubAPI) AddComment(_ context.Context, in api.CommentInput) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commented = append(s.commented, in)
	c := models.Comment{ID: "11", PostID: models.FlexID(in.PostID), Text: in.Text}
	s.comments[in.PostID] = append(s.comments[in.PostID], c)
	return &c, nil
}

var _ api.Client = (*stubAPI)(nil)

func newTestApp(t *testing.T, stub *stubAPI, subject string) *App {
	t.Helper()
	log := logging.Discard()
	sessions := &fakeSessionService{}
	if subject != "" {
		sessions.current = session.Session{Token: "t", Identity: &token.Claims{SubjectID: subject, DisplayName: "Alice"}}
	}
	return &App{
		log:        log,
		sessions:   sessions,
		api:        stub,
		posts:      views.NewPostListView(stub, log, 9),
		detail:     views.NewPostDetailView(stub, sessions, log),
		comments:   views.NewCommentsView(stub, log),
		searchView: views.NewSearchView(stub, log, 9),
		reader:     bufio.NewReader(strings.NewReader("")),
		out:        &bytes.Buffer{},
	}
}

func collectOutput(t *testing.T) *[]string {
	t.Helper()
	orig := printlnFn
	lines := &[]string{}
	printlnFn = func(args ...any) (int, error) {
		*lines = append(*lines, fmt.Sprintln(args...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return lines
}

func TestApp_PostsListsAndPaginates(t *testing.T) {
	lines := collectOutput(t)
	stub := newStubAPI()
	a := newTestApp(t, stub, "")

	require.NoError(t, a.Posts(context.Background(), 0))

	joined := strings.Join(*lines, "\n")
	require.Contains(t, joined, "First")
	require.Contains(t, joined, "Page 1 of 1")
}

func TestApp_OpenShowsPostAndComments(t *testing.T) {
	lines := collectOutput(t)
	stub := newStubAPI()
	a := newTestApp(t, stub, "5")

	require.NoError(t, a.Open(context.Background(), "1"))

	joined := strings.Join(*lines, "\n")
	require.Contains(t, joined, "# First")
	require.Contains(t, joined, "Bob: nice")
	require.Contains(t, joined, "this is your post", "owner hint expected for the author")
}

func TestApp_OpenUnknownPost(t *testing.T) {
	lines := collectOutput(t)
	stub := newStubAPI()
	a := newTestApp(t, stub, "")

	require.NoError(t, a.Open(context.Background(), "404"))

	joined := strings.Join(*lines, "\n")
	require.Contains(t, joined, "not found")
}

func TestApp_CommentRequiresLogin(t *testing.T) {
	collectOutput(t)
	stub := newStubAPI()
	a := newTestApp(t, stub, "")
	a.Open(context.Background(), "1")

	require.NoError(t, a.Comment(context.Background()))
	require.Empty(t, stub.commented)
}

func TestApp_CommentPostsAndRefetches(t *testing.T) {
	collectOutput(t)
	stub := newStubAPI()
	a := newTestApp(t, stub, "5")
	a.Open(context.Background(), "1")
	a.reader = bufio.NewReader(strings.NewReader("great post\n\n"))

	require.NoError(t, a.Comment(context.Background()))

	require.Len(t, stub.commented, 1)
	require.Equal(t, "great post", stub.commented[0].Text)
	require.Equal(t, "1", stub.commented[0].PostID)
}

func TestApp_DeleteConfirmedRemovesPost(t *testing.T) {
	collectOutput(t)
	stub := newStubAPI()
	a := newTestApp(t, stub, "5")
	a.Open(context.Background(), "1")
	a.reader = bufio.NewReader(strings.NewReader("y\n"))

	require.NoError(t, a.DeletePost(context.Background()))
	require.Equal(t, []string{"1"}, stub.deleted)
}

func TestApp_DeleteDeclinedKeepsPost(t *testing.T) {
	collectOutput(t)
	stub := newStubAPI()
	a := newTestApp(t, stub, "5")
	a.Open(context.Background(), "1")
	a.reader = bufio.NewReader(strings.NewReader("n\n"))

	require.NoError(t, a.DeletePost(context.Background()))
	require.Empty(t, stub.deleted)
}

func TestApp_SearchByTag(t *testing.T) {
	lines := collectOutput(t)
	stub := newStubAPI()
	a := newTestApp(t, stub, "")

	require.NoError(t, a.Search(context.Background(), "tag", "go"))

	joined := strings.Join(*lines, "\n")
	require.Contains(t, joined, "First")
}

func TestApp_NewPostPublishes(t *testing.T) {
	collectOutput(t)
	stub := newStubAPI()
	a := newTestApp(t, stub, "5")

	restore := stubInputs(t, "My title", nil)
	defer restore()
	a.reader = bufio.NewReader(strings.NewReader("the body\n\ngo\n\n"))

	require.NoError(t, a.NewPost(context.Background()))

	created := stub.posts["2"]
	require.NotNil(t, created)
	require.Equal(t, "My title", created.Title)
	require.Equal(t, "the body", created.Text)
	require.Equal(t, []string{"go"}, created.Tags)
}
