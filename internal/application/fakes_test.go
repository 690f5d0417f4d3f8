package application

import (
	"context"
	"sort"
	"time"

	"blogpost-api/internal/domain/entity"
	"blogpost-api/internal/domain/repository"
)

// In-memory repositories backing the service tests.

type fakeUserRepo struct {
	nextID int64
	users  map[int64]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.nextID++
	u.ID = r.nextID
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmailOrUsername(_ context.Context, login string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == login || u.Username == login {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	u.UpdatedAt = time.Now().UTC()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

type fakePostRepo struct {
	nextID int64
	posts  map[int64]*entity.BlogPost
	users  *fakeUserRepo
}

func newFakePostRepo(users *fakeUserRepo) *fakePostRepo {
	return &fakePostRepo{posts: make(map[int64]*entity.BlogPost), users: users}
}

func (r *fakePostRepo) withOwner(p *entity.BlogPost) *entity.BlogPost {
	cp := *p
	if u, ok := r.users.users[p.UserID]; ok {
		ucp := *u
		cp.Owner = &ucp
	}
	return &cp
}

func (r *fakePostRepo) Create(_ context.Context, p *entity.BlogPost) error {
	r.nextID++
	p.ID = r.nextID
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	p.UpdatedAt = p.CreatedAt
	cp := *p
	cp.Owner = nil
	r.posts[p.ID] = &cp
	return nil
}

func (r *fakePostRepo) GetByID(_ context.Context, id int64) (*entity.BlogPost, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return r.withOwner(p), nil
}

func (r *fakePostRepo) ListAll(_ context.Context) ([]entity.BlogPost, error) {
	out := make([]entity.BlogPost, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, *r.withOwner(p))
	}
	sortPosts(out)
	return out, nil
}

func (r *fakePostRepo) ListByUser(_ context.Context, userID int64) ([]entity.BlogPost, error) {
	out := make([]entity.BlogPost, 0)
	for _, p := range r.posts {
		if p.UserID == userID {
			out = append(out, *r.withOwner(p))
		}
	}
	sortPosts(out)
	return out, nil
}

func sortPosts(posts []entity.BlogPost) {
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}

func (r *fakePostRepo) Update(_ context.Context, p *entity.BlogPost) error {
	stored, ok := r.posts[p.ID]
	if !ok {
		return repository.ErrNotFound
	}
	p.UpdatedAt = time.Now().UTC()
	stored.Title = p.Title
	stored.Content = p.Content
	stored.UpdatedAt = p.UpdatedAt
	return nil
}

func (r *fakePostRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}
