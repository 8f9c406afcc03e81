package api

import "github.com/kristinasrbinoska/blogtalks-vibe/internal/client/models"

// The server has grown two divergent schemas for posts and comments across
// its endpoints: `text` vs `content`, `creatorName` vs a nested author
// object, `createdAt` vs `timestamp`. These DTOs accept every observed
// spelling and normalize into the canonical models at the fetch boundary.

type wireAuthor struct {
	ID   models.FlexID `json:"id"`
	Name string        `json:"name"`
}

type wirePost struct {
	ID          models.FlexID `json:"id"`
	Title       string        `json:"title"`
	Text        string        `json:"text"`
	Content     string        `json:"content"`
	Tags        []string      `json:"tags"`
	CreatedBy   models.FlexID `json:"createdBy"`
	CreatorName string        `json:"creatorName"`
	Author      *wireAuthor   `json:"author"`
	CreatedAt   string        `json:"createdAt"`
	Timestamp   string        `json:"timestamp"`
	UpdatedAt   string        `json:"updatedAt"`
}

func (w wirePost) normalize() models.Post {
	p := models.Post{
		ID:          w.ID,
		Title:       w.Title,
		Text:        w.Text,
		Tags:        w.Tags,
		CreatedBy:   w.CreatedBy,
		CreatorName: w.CreatorName,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
	if p.Text == "" {
		p.Text = w.Content
	}
	if p.CreatedAt == "" {
		p.CreatedAt = w.Timestamp
	}
	if w.Author != nil {
		if p.CreatorName == "" {
			p.CreatorName = w.Author.Name
		}
		if p.CreatedBy.IsZero() {
			p.CreatedBy = w.Author.ID
		}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return p
}

type wireComment struct {
	ID         models.FlexID `json:"id"`
	BlogPostID models.FlexID `json:"blogPostId"`
	Text       string        `json:"text"`
	Content    string        `json:"content"`

	CreatorName string      `json:"creatorName"`
	Author      *wireAuthor `json:"author"`
	CreatedAt   string      `json:"createdAt"`
}

func (w wireComment) normalize() models.Comment {
	c := models.Comment{
		ID:          w.ID,
		PostID:      w.BlogPostID,
		Text:        w.Text,
		CreatorName: w.CreatorName,
		CreatedAt:   w.CreatedAt,
	}
	if c.Text == "" {
		c.Text = w.Content
	}
	if c.CreatorName == "" && w.Author != nil {
		c.CreatorName = w.Author.Name
	}
	return c
}

type wirePostPage struct {
	BlogPosts []wirePost      `json:"blogPosts"`
	Metadata  models.PageMeta `json:"metadata"`
}

func (w wirePostPage) normalize() *models.PostPage {
	page := &models.PostPage{
		Posts: make([]models.Post, 0, len(w.BlogPosts)),
		Meta:  w.Metadata,
	}
	for _, p := range w.BlogPosts {
		page.Posts = append(page.Posts, p.normalize())
	}
	if page.Meta.TotalPages < 1 {
		page.Meta.TotalPages = 1
	}
	return page
}
