package application

import (
	"time"

	"blogpost-api/internal/domain/entity"
)

// UserProfile is the public projection of a user. The password hash is
// never part of it.
type UserProfile struct {
	ID              int64     `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	FullName        string    `json:"fullName"`
	Bio             string    `json:"bio"`
	ProfileImageURL string    `json:"profileImageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
}

// AuthResult is the register/login response body: a bearer token plus the
// public profile of the authenticated user.
type AuthResult struct {
	Token string       `json:"token"`
	User  *UserProfile `json:"user"`
}

// PostView is the per-viewer projection of a blog post. IsOwner is computed
// at assembly time from the requesting identity and is never stored, so the
// same post serializes differently for different viewers.
type PostView struct {
	ID        int64        `json:"id"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	Author    string       `json:"author"`
	UserID    int64        `json:"userId"`
	FlagCount int          `json:"flagCount"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
	IsOwner   bool         `json:"isOwner"`
	User      *UserProfile `json:"user"`
}

func profileOf(u *entity.User) *UserProfile {
	if u == nil {
		return nil
	}
	return &UserProfile{
		ID:              u.ID,
		Username:        u.Username,
		Email:           u.Email,
		FullName:        u.FullName,
		Bio:             u.Bio,
		ProfileImageURL: u.ProfileImageURL,
		CreatedAt:       u.CreatedAt,
	}
}

// viewOf shapes a post for the given viewer. A nil viewerID is the
// anonymous case and always yields IsOwner == false.
func viewOf(p *entity.BlogPost, viewerID *int64) *PostView {
	return &PostView{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Author:    p.Author,
		UserID:    p.UserID,
		FlagCount: p.FlagCount,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		IsOwner:   viewerID != nil && *viewerID == p.UserID,
		User:      profileOf(p.Owner),
	}
}
