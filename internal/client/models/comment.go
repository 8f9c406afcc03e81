package models

// Comment is the canonical comment record.
type Comment struct {
	ID          FlexID
	PostID      FlexID
	Text        string
	CreatorName string
	CreatedAt   string
}
