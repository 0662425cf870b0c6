package forum

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"fitness-platform/backend/internal/domain/user"
	"fitness-platform/backend/internal/utils"
)

const (
	defaultRole   = user.RoleMember
	defaultAuthor = "Anonymous"
)

type Repository interface {
	Create(ctx context.Context, p Post) (string, error)
	Get(ctx context.Context, id string) (*Post, error)
	Count(ctx context.Context) (int, error)
	ListPage(ctx context.Context, offset, limit int) ([]Post, error)
	Vote(ctx context.Context, postID, email, kind string) error
}

// AuthorDirectory resolves post authors to their current user records.
type AuthorDirectory interface {
	ProfilesByEmail(ctx context.Context, emails []string) (map[string]user.User, error)
}

type Service struct {
	repo     Repository
	authors  AuthorDirectory
	validate *validator.Validate
	now      func() time.Time
}

func NewService(repo Repository, authors AuthorDirectory) *Service {
	return &Service{
		repo:     repo,
		authors:  authors,
		validate: utils.NewValidator(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) CreatePost(ctx context.Context, in CreatePostInput) (string, error) {
	in.Trim()
	if err := s.validate.Struct(in); err != nil {
		return "", fmt.Errorf("%w: %s", ErrBadRequest, utils.DescribeValidation(err))
	}
	return s.repo.Create(ctx, Post{
		Title:       in.Title,
		Content:     in.Content,
		AuthorEmail: in.AuthorEmail,
		CreatedAt:   s.now(),
		Upvotes:     []string{},
		Downvotes:   []string{},
	})
}

func (s *Service) ListPosts(ctx context.Context, page int) (*PostPage, error) {
	page = utils.ClampPage(page)
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := s.repo.ListPage(ctx, utils.Offset(page, PageSize), PageSize)
	if err != nil {
		return nil, err
	}
	views, err := s.enrich(ctx, posts)
	if err != nil {
		return nil, err
	}
	return &PostPage{
		Posts:       views,
		CurrentPage: page,
		TotalPages:  utils.TotalPages(total, PageSize),
	}, nil
}

// HomeFeed is the newest page of posts without pagination metadata.
func (s *Service) HomeFeed(ctx context.Context) ([]PostView, error) {
	posts, err := s.repo.ListPage(ctx, 0, PageSize)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, posts)
}

func (s *Service) GetPost(ctx context.Context, id string) (*PostView, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: post id is required", ErrBadRequest)
	}
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	views, err := s.enrich(ctx, []Post{*p})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// Vote is idempotent: repeating the same vote leaves the sets unchanged and
// switching sides moves the voter.
func (s *Service) Vote(ctx context.Context, in VoteInput) error {
	in.Trim()
	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: invalid request", ErrBadRequest)
	}
	return s.repo.Vote(ctx, in.PostID, in.Email, in.Type)
}

func (s *Service) enrich(ctx context.Context, posts []Post) ([]PostView, error) {
	emails := make([]string, 0, len(posts))
	for _, p := range posts {
		emails = append(emails, p.AuthorEmail)
	}
	profiles, err := s.authors.ProfilesByEmail(ctx, emails)
	if err != nil {
		return nil, fmt.Errorf("author lookup: %w", err)
	}

	out := make([]PostView, 0, len(posts))
	for _, p := range posts {
		if p.Upvotes == nil {
			p.Upvotes = []string{}
		}
		if p.Downvotes == nil {
			p.Downvotes = []string{}
		}
		v := PostView{
			Post:          p,
			AuthorName:    defaultAuthor,
			Role:          defaultRole,
			UpvoteCount:   len(p.Upvotes),
			DownvoteCount: len(p.Downvotes),
		}
		if u, ok := profiles[p.AuthorEmail]; ok {
			v.AuthorName = u.NameOr(defaultAuthor)
			if u.Role != "" {
				v.Role = u.Role
			}
		}
		out = append(out, v)
	}
	return out, nil
}
