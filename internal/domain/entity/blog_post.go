package entity

import (
	"time"
)

// BlogPost belongs to exactly one User. UserID is immutable after creation;
// Author is the owner's display name copied at creation time and is
// intentionally not refreshed when the owner renames their profile.
type BlogPost struct {
	ID        int64
	Title     string
	Content   string
	Author    string
	UserID    int64
	FlagCount int
	CreatedAt time.Time
	UpdatedAt time.Time

	// Owner is the joined owning user, populated by repository reads.
	Owner *User
}
