package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blogpost-api/internal/domain/entity"
	"blogpost-api/internal/domain/repository"
)

// selectPost joins the owning user so read paths can embed the owner's
// current public profile without a second round trip.
const selectPost = `
	SELECT p.id, p.title, p.content, p.author, p.user_id, p.flag_count,
	       p.created_at, p.updated_at,
	       u.id, u.username, u.email, u.password_hash,
	       COALESCE(u.full_name, ''), COALESCE(u.bio, ''), COALESCE(u.profile_image_url, ''),
	       u.created_at, u.updated_at
	FROM blog_posts p
	JOIN users u ON u.id = p.user_id`

type BlogPostRepository struct {
	pool *pgxpool.Pool
}

func NewBlogPostRepository(pool *pgxpool.Pool) *BlogPostRepository {
	return &BlogPostRepository{pool: pool}
}

func scanPost(row pgx.Row) (*entity.BlogPost, error) {
	p := &entity.BlogPost{Owner: &entity.User{}}
	err := row.Scan(&p.ID, &p.Title, &p.Content, &p.Author, &p.UserID, &p.FlagCount,
		&p.CreatedAt, &p.UpdatedAt,
		&p.Owner.ID, &p.Owner.Username, &p.Owner.Email, &p.Owner.PasswordHash,
		&p.Owner.FullName, &p.Owner.Bio, &p.Owner.ProfileImageURL,
		&p.Owner.CreatedAt, &p.Owner.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *BlogPostRepository) Create(ctx context.Context, p *entity.BlogPost) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO blog_posts (title, content, author, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, flag_count, created_at, updated_at
	`, p.Title, p.Content, p.Author, p.UserID)

	return row.Scan(&p.ID, &p.FlagCount, &p.CreatedAt, &p.UpdatedAt)
}

func (r *BlogPostRepository) GetByID(ctx context.Context, id int64) (*entity.BlogPost, error) {
	p, err := scanPost(r.pool.QueryRow(ctx, selectPost+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *BlogPostRepository) ListAll(ctx context.Context) ([]entity.BlogPost, error) {
	rows, err := r.pool.Query(ctx, selectPost+` ORDER BY p.created_at DESC, p.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPosts(rows)
}

func (r *BlogPostRepository) ListByUser(ctx context.Context, userID int64) ([]entity.BlogPost, error) {
	rows, err := r.pool.Query(ctx, selectPost+` WHERE p.user_id = $1 ORDER BY p.created_at DESC, p.id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPosts(rows)
}

func collectPosts(rows pgx.Rows) ([]entity.BlogPost, error) {
	posts := make([]entity.BlogPost, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

// Update persists title and content only; author and user_id never change
// after creation.
func (r *BlogPostRepository) Update(ctx context.Context, p *entity.BlogPost) error {
	p.UpdatedAt = time.Now().UTC()

	res, err := r.pool.Exec(ctx, `
		UPDATE blog_posts
		SET title = $1, content = $2, updated_at = $3
		WHERE id = $4
	`, p.Title, p.Content, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *BlogPostRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.BlogPostRepository = (*BlogPostRepository)(nil)
