package views

import (
	"context"
	"sync"

	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/api"
	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/models"
	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/session"
	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/token"
)

// fakeAPI implements api.Client with pluggable behavior per method and
// call counting for the methods views exercise.
type fakeAPI struct {
	mu sync.Mutex

	ListPostsFn    func(ctx context.Context, q api.PostQuery) (*models.PostPage, error)
	GetPostFn      func(ctx context.Context, id string) (*models.Post, error)
	CreatePostFn   func(ctx context.Context, in api.PostInput) (*models.Post, error)
	UpdatePostFn   func(ctx context.Context, id string, in api.PostInput) error
	DeletePostFn   func(ctx context.Context, id string) error
	ListCommentsFn func(ctx context.Context, postID string) ([]models.Comment, error)
	AddCommentFn   func(ctx context.Context, in api.CommentInput) (*models.Comment, error)

	listPostsCalls    int
	listCommentsCalls int
	deleteCalls       int
	addCommentCalls   int
}

func (f *fakeAPI) count(n *int) {
	f.mu.Lock()
	*n++
	f.mu.Unlock()
}

func (f *fakeAPI) calls(n *int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *n
}

func (f *fakeAPI) Login(ctx context.Context, in api.LoginInput) (*api.LoginEnvelope, error) {
	return nil, nil
}

func (f *fakeAPI) Register(ctx context.Context, in api.RegisterInput) error { return nil }

func (f *fakeAPI) ListPosts(ctx context.Context, q api.PostQuery) (*models.PostPage, error) {
	f.count(&f.listPostsCalls)
	if f.ListPostsFn == nil {
		return &models.PostPage{Meta: models.PageMeta{TotalPages: 1}}, nil
	}
	return f.ListPostsFn(ctx, q)
}

func (f *fakeAPI) GetPost(ctx context.Context, id string) (*models.Post, error) {
	if f.GetPostFn == nil {
		return &models.Post{ID: models.FlexID(id)}, nil
	}
	return f.GetPostFn(ctx, id)
}

func (f *fakeAPI) CreatePost(ctx context.Context, in api.PostInput) (*models.Post, error) {
	if f.CreatePostFn == nil {
		return &models.Post{}, nil
	}
	return f.CreatePostFn(ctx, in)
}

func (f *fakeAPI) UpdatePost(ctx context.Context, id string, in api.PostInput) error {
	if f.UpdatePostFn == nil {
		return nil
	}
	return f.UpdatePostFn(ctx, id, in)
}

func (f *fakeAPI) DeletePost(ctx context.Context, id string) error {
	f.count(&f.deleteCalls)
	if f.DeletePostFn == nil {
		return nil
	}
	return f.DeletePostFn(ctx, id)
}

func (f *fakeAPI) ListComments(ctx context.Context, postID string) ([]models.Comment, error) {
	f.count(&f.listCommentsCalls)
	if f.ListCommentsFn == nil {
		return nil, nil
	}
	return f.ListCommentsFn(ctx, postID)
}

func (f *fakeAPI) AddComment(ctx context.Context, in api.CommentInput) (*models.Comment, error) {
	f.count(&f.addCommentCalls)
	if f.AddCommentFn == nil {
		return &models.Comment{}, nil
	}
	return f.AddCommentFn(ctx, in)
}

var _ api.Client = (*fakeAPI)(nil)

// fakeSessions implements SessionSource with a settable subject.
type fakeSessions struct {
	mu sync.Mutex
	s  session.Session
}

func sessionsFor(subject string) *fakeSessions {
	f := &fakeSessions{}
	f.setSubject(subject)
	return f
}

func (f *fakeSessions) Current() session.Session {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.s
}

func (f *fakeSessions) setSubject(subject string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if subject == "" {
		f.s = session.Session{}
		return
	}
	f.s = session.Session{
		Token:    "tok",
		Identity: &token.Claims{SubjectID: subject},
	}
}
