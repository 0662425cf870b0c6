package forum

import (
	"strings"
	"time"

	"fitness-platform/backend/internal/utils"
)

const (
	PageSize = 6

	VoteUp   = "upvote"
	VoteDown = "downvote"
)

// Post holds voter emails; an email is in at most one of Upvotes and Downvotes.
type Post struct {
	ID          string    `firestore:"-" json:"id"`
	Title       string    `firestore:"title" json:"title"`
	Content     string    `firestore:"content" json:"content"`
	AuthorEmail string    `firestore:"authorEmail" json:"authorEmail"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
	Upvotes     []string  `firestore:"upvotes" json:"upvotes"`
	Downvotes   []string  `firestore:"downvotes" json:"downvotes"`
}

// PostView is a post enriched with its author's current profile.
type PostView struct {
	Post
	AuthorName    string `json:"authorName"`
	Role          string `json:"role"`
	UpvoteCount   int    `json:"upvoteCount"`
	DownvoteCount int    `json:"downvoteCount"`
}

type PostPage struct {
	Posts       []PostView `json:"posts"`
	CurrentPage int        `json:"currentPage"`
	TotalPages  int        `json:"totalPages"`
}

type CreatePostInput struct {
	Title       string `json:"title" validate:"required"`
	Content     string `json:"content" validate:"required"`
	AuthorEmail string `json:"authorEmail" validate:"required,email"`
}

func (in *CreatePostInput) Trim() {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	in.AuthorEmail = utils.NormalizeEmail(in.AuthorEmail)
}

type VoteInput struct {
	PostID string `json:"postId" validate:"required"`
	Email  string `json:"email" validate:"required"`
	Type   string `json:"type" validate:"required,oneof=upvote downvote"`
}

func (in *VoteInput) Trim() {
	in.PostID = strings.TrimSpace(in.PostID)
	in.Email = utils.NormalizeEmail(in.Email)
	in.Type = strings.TrimSpace(in.Type)
}

// opposite returns the vote field that must not hold the voter.
func opposite(kind string) string {
	if kind == VoteUp {
		return VoteDown
	}
	return VoteUp
}

func field(kind string) string {
	if kind == VoteUp {
		return "upvotes"
	}
	return "downvotes"
}
