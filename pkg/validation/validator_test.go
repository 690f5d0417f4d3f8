package validation

import (
	"encoding/json"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Username string `json:"username" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,pwd"`
	Content  string `json:"content" binding:"omitempty,min=10"`
}

func validate(t *testing.T, in sampleRequest) error {
	t.Helper()
	Init()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	return v.Struct(in)
}

func TestToDetailsUsesJSONFieldNames(t *testing.T) {
	err := validate(t, sampleRequest{})
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "is required", details["username"])
	assert.Equal(t, "is required", details["email"])
	assert.Equal(t, "is required", details["password"])
	assert.NotContains(t, details, "Username")
}

func TestToDetailsMessages(t *testing.T) {
	tests := []struct {
		name  string
		in    sampleRequest
		field string
		want  string
	}{
		{
			name:  "bad email",
			in:    sampleRequest{Username: "alice", Email: "nope", Password: "secret123"},
			field: "email",
			want:  "must be a valid email",
		},
		{
			name:  "short password",
			in:    sampleRequest{Username: "alice", Email: "a@example.com", Password: "abc"},
			field: "password",
			want:  "must be at least 6 characters long",
		},
		{
			name:  "short content",
			in:    sampleRequest{Username: "alice", Email: "a@example.com", Password: "secret123", Content: "tiny"},
			field: "content",
			want:  "must be at least 10 characters long",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(t, tt.in)
			require.Error(t, err)
			details := ToDetails(err)
			assert.Equal(t, tt.want, details[tt.field])
		})
	}
}

func TestToDetailsMaxLength(t *testing.T) {
	long := make([]byte, 60)
	for i := range long {
		long[i] = 'a'
	}
	err := validate(t, sampleRequest{Username: string(long), Email: "a@example.com", Password: "secret123"})
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "must be at most 50 characters long", details["username"])
}

func TestToDetailsMalformedJSON(t *testing.T) {
	var req sampleRequest
	err := json.Unmarshal([]byte("{"), &req)
	require.Error(t, err)
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))

	err = json.Unmarshal([]byte(`{"username": 7}`), &req)
	require.Error(t, err)
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))
}

func TestToDetailsNil(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
}
