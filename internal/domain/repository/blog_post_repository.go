package repository

import (
	"context"

	"blogpost-api/internal/domain/entity"
)

// BlogPostRepository defines the interface for blog post persistence.
// Read operations populate the Owner navigation field; ordering is
// created_at descending with id descending as the stable tie-break.
type BlogPostRepository interface {
	Create(ctx context.Context, p *entity.BlogPost) error
	GetByID(ctx context.Context, id int64) (*entity.BlogPost, error)
	ListAll(ctx context.Context) ([]entity.BlogPost, error)
	ListByUser(ctx context.Context, userID int64) ([]entity.BlogPost, error)
	Update(ctx context.Context, p *entity.BlogPost) error
	Delete(ctx context.Context, id int64) error
}
