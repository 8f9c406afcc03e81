// Package api implements the HTTP client for the BlogTalks service: the
// authentication endpoints, the post and comment resources, and the
// authorized-request wrapper that attaches the live bearer credential to
// every privileged call.
package api

import (
	"context"

	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/models"
)

// LoginInput carries the credentials sent to POST /login.
type LoginInput struct {
	Email    string `json:"Email"`
	Username string `json:"Username"`
	Password string `json:"Password"`
}

// RegisterInput carries the fields sent to POST /register.
type RegisterInput struct {
	Email    string `json:"Email"`
	Username string `json:"Username"`
	Name     string `json:"Name"`
	Password string `json:"Password"`
}

// UserPayload is the user object as the auth endpoint returns it. Both `id`
// and `userId` spellings occur in the wild.
type UserPayload struct {
	ID          models.FlexID `json:"id"`
	UserID      models.FlexID `json:"userId"`
	Email       string        `json:"email"`
	DisplayName string        `json:"displayName"`
}

// SubjectID returns the identifier of the user, whichever spelling carried it.
func (u UserPayload) SubjectID() string {
	if !u.UserID.IsZero() {
		return u.UserID.String()
	}
	return u.ID.String()
}

// LoginEnvelope is the raw login response. The endpoint is not standardized:
// token and user arrive either flat or nested under `result`. The session
// manager owns the compatibility shim that picks whichever is present.
type LoginEnvelope struct {
	Token  string       `json:"token"`
	User   *UserPayload `json:"user"`
	Result *struct {
		Token string       `json:"token"`
		User  *UserPayload `json:"user"`
	} `json:"result"`
}

// PostQuery selects one page of the post listing. SearchWord and Tag are
// optional free-text and tag filters.
type PostQuery struct {
	Page       int
	PageSize   int
	SearchWord string
	Tag        string
}

// PostInput is the payload for creating or updating a post.
type PostInput struct {
	Title string   `json:"Title"`
	Text  string   `json:"Text"`
	Tags  []string `json:"Tags"`
}

// CommentInput is the payload for adding a comment to a post.
type CommentInput struct {
	Text   string `json:"Text"`
	PostID string `json:"BlogPostId"`
}

// Client is the remote BlogTalks API surface the rest of the client programs
// against. All methods honor context cancellation.
type Client interface {
	Login(ctx context.Context, in LoginInput) (*LoginEnvelope, error)
	Register(ctx context.Context, in RegisterInput) error

	ListPosts(ctx context.Context, q PostQuery) (*models.PostPage, error)
	GetPost(ctx context.Context, id string) (*models.Post, error)
	CreatePost(ctx context.Context, in PostInput) (*models.Post, error)
	UpdatePost(ctx context.Context, id string, in PostInput) error
	DeletePost(ctx context.Context, id string) error

	ListComments(ctx context.Context, postID string) ([]models.Comment, error)
	AddComment(ctx context.Context, in CommentInput) (*models.Comment, error)
}
