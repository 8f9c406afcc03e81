// Package models defines the canonical client-side representations of
// BlogTalks resources. The remote API is not consistent about field naming or
// identifier types, so every fetch maps the wire shape into these types at the
// API boundary; nothing downstream ever sees a raw wire record.
package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// FlexID is an identifier that arrives from the API either as a JSON number
// or as a JSON string. It is always held and compared as text.
type FlexID string

// UnmarshalJSON accepts "5", 5, and null (which yields an empty ID).
func (id *FlexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = FlexID(n.String())
	return nil
}

func (id FlexID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

func (id FlexID) String() string { return string(id) }

// IsZero reports whether the identifier is absent.
func (id FlexID) IsZero() bool { return id == "" }

// Int returns the numeric value of the identifier, or 0 if it is not numeric.
func (id FlexID) Int() int {
	n, err := strconv.Atoi(string(id))
	if err != nil {
		return 0
	}
	return n
}

// Post is the canonical blog post record.
type Post struct {
	ID          FlexID
	Title       string
	Text        string
	Tags        []string
	CreatedBy   FlexID
	CreatorName string
	CreatedAt   string
	UpdatedAt   string
}

// OwnedBy reports whether the post was created by the given subject,
// comparing identifiers as text so that a numeric wire ID still matches a
// string claim.
func (p Post) OwnedBy(subjectID string) bool {
	return subjectID != "" && !p.CreatedBy.IsZero() && p.CreatedBy.String() == subjectID
}

// PageMeta is the pagination envelope returned alongside post listings.
type PageMeta struct {
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
	TotalPages int `json:"totalPages"`
}

// PostPage is one page of a post listing.
type PostPage struct {
	Posts []Post
	Meta  PageMeta
}
