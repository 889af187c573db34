package models

import (
	"time"
)

// Comment represents a visitor comment on a project.
//
// Attribution is exclusive: a comment is either owned by a native user
// (UserID set, author fields empty) or by a session pseudo-identity
// (UserID nil, at least one of AuthorName/AuthorEmail set). The
// comments table carries a CHECK constraint mirroring the same rule.
type Comment struct {
	ID          string    `json:"id" db:"id"`
	ProjectID   int64     `json:"project_id" db:"project_id"`
	UserID      *int64    `json:"user_id,omitempty" db:"user_id"`
	UserName    string    `json:"user_name,omitempty" db:"-"` // joined from users for display
	AuthorName  string    `json:"author_name,omitempty" db:"author_name"`
	AuthorEmail string    `json:"author_email,omitempty" db:"author_email"`
	Content     string    `json:"content" db:"content"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// NativeAuthored reports whether the comment is attributed to a native account.
func (c *Comment) NativeAuthored() bool {
	return c.UserID != nil
}

// DisplayAuthor returns the name to show next to the comment.
func (c *Comment) DisplayAuthor() string {
	if c.NativeAuthored() {
		return c.UserName
	}
	if c.AuthorName != "" {
		return c.AuthorName
	}
	return c.AuthorEmail
}

// MaxCommentLength is the maximum allowed comment content length in runes
const MaxCommentLength = 2000

// MinCommentLength is the minimum content length after trimming whitespace
const MinCommentLength = 2
