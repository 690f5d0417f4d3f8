package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"blogpost-api/internal/domain/entity"
	repo "blogpost-api/internal/domain/repository"
)

// BlogPostService is CRUD over blog posts with an ownership gate on write
// operations and viewer-aware shaping on reads.
type BlogPostService interface {
	ListAll(ctx context.Context, viewerID *int64) ([]PostView, error)
	ListByUser(ctx context.Context, ownerID int64, viewerID *int64) ([]PostView, error)
	GetByID(ctx context.Context, id int64, viewerID *int64) (*PostView, error)
	Create(ctx context.Context, in PostInput, authorID int64) (*PostView, error)
	Update(ctx context.Context, id int64, in PostInput, requesterID int64) (*PostView, error)
	Delete(ctx context.Context, id int64, requesterID int64) error
}

type PostInput struct {
	Title   string
	Content string
}

type blogPostService struct {
	posts  repo.BlogPostRepository
	users  repo.UserRepository
	logger *logrus.Logger
}

func NewBlogPostService(posts repo.BlogPostRepository, users repo.UserRepository, logger *logrus.Logger) BlogPostService {
	return &blogPostService{posts: posts, users: users, logger: logger}
}

func (s *blogPostService) ListAll(ctx context.Context, viewerID *int64) ([]PostView, error) {
	posts, err := s.posts.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return viewsOf(posts, viewerID), nil
}

func (s *blogPostService) ListByUser(ctx context.Context, ownerID int64, viewerID *int64) ([]PostView, error) {
	posts, err := s.posts.ListByUser(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return viewsOf(posts, viewerID), nil
}

func viewsOf(posts []entity.BlogPost, viewerID *int64) []PostView {
	views := make([]PostView, 0, len(posts))
	for i := range posts {
		views = append(views, *viewOf(&posts[i], viewerID))
	}
	return views
}

func (s *blogPostService) GetByID(ctx context.Context, id int64, viewerID *int64) (*PostView, error) {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return viewOf(p, viewerID), nil
}

// Create requires an authenticated author. The author display name is copied
// onto the post at this instant and never refreshed afterwards, even when
// the owner later renames their profile.
func (s *blogPostService) Create(ctx context.Context, in PostInput, authorID int64) (*PostView, error) {
	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	p := &entity.BlogPost{
		Title:   in.Title,
		Content: in.Content,
		Author:  displayNameOf(author),
		UserID:  author.ID,
		Owner:   author,
	}
	if err := s.posts.Create(ctx, p); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{"post_id": p.ID, "user_id": author.ID}).Info("blog post created")

	// The creator is always the owner-viewer of the returned representation.
	return viewOf(p, &author.ID), nil
}

func displayNameOf(u *entity.User) string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}

func (s *blogPostService) Update(ctx context.Context, id int64, in PostInput, requesterID int64) (*PostView, error) {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if p.UserID != requesterID {
		return nil, ErrNotPostOwner
	}

	p.Title = in.Title
	p.Content = in.Content
	if err := s.posts.Update(ctx, p); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{"post_id": p.ID, "user_id": requesterID}).Info("blog post updated")
	return viewOf(p, &requesterID), nil
}

func (s *blogPostService) Delete(ctx context.Context, id int64, requesterID int64) error {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	if p.UserID != requesterID {
		return ErrNotPostOwner
	}
	if err := s.posts.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrPostNotFound
		}
		return err
	}

	s.logger.WithFields(logrus.Fields{"post_id": id, "user_id": requesterID}).Info("blog post deleted")
	return nil
}
