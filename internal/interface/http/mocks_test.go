package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"blogpost-api/internal/application"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Register(ctx context.Context, in application.RegisterInput) (*application.AuthResult, error) {
	args := m.Called(ctx, in)
	if res := args.Get(0); res != nil {
		return res.(*application.AuthResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, login, password string) (*application.AuthResult, error) {
	args := m.Called(ctx, login, password)
	if res := args.Get(0); res != nil {
		return res.(*application.AuthResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthService) GetProfile(ctx context.Context, userID int64) (*application.UserProfile, error) {
	args := m.Called(ctx, userID)
	if res := args.Get(0); res != nil {
		return res.(*application.UserProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthService) UpdateProfile(ctx context.Context, userID int64, in application.UpdateProfileInput) (*application.UserProfile, error) {
	args := m.Called(ctx, userID, in)
	if res := args.Get(0); res != nil {
		return res.(*application.UserProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockBlogPostService struct {
	mock.Mock
}

func (m *mockBlogPostService) ListAll(ctx context.Context, viewerID *int64) ([]application.PostView, error) {
	args := m.Called(ctx, viewerID)
	if res := args.Get(0); res != nil {
		return res.([]application.PostView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBlogPostService) ListByUser(ctx context.Context, ownerID int64, viewerID *int64) ([]application.PostView, error) {
	args := m.Called(ctx, ownerID, viewerID)
	if res := args.Get(0); res != nil {
		return res.([]application.PostView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBlogPostService) GetByID(ctx context.Context, id int64, viewerID *int64) (*application.PostView, error) {
	args := m.Called(ctx, id, viewerID)
	if res := args.Get(0); res != nil {
		return res.(*application.PostView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBlogPostService) Create(ctx context.Context, in application.PostInput, authorID int64) (*application.PostView, error) {
	args := m.Called(ctx, in, authorID)
	if res := args.Get(0); res != nil {
		return res.(*application.PostView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBlogPostService) Update(ctx context.Context, id int64, in application.PostInput, requesterID int64) (*application.PostView, error) {
	args := m.Called(ctx, id, in, requesterID)
	if res := args.Get(0); res != nil {
		return res.(*application.PostView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBlogPostService) Delete(ctx context.Context, id int64, requesterID int64) error {
	args := m.Called(ctx, id, requesterID)
	return args.Error(0)
}
