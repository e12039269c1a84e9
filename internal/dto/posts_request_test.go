package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validPostRequest() CreatePostRequest {
	return CreatePostRequest{
		Title:   "Hello World",
		Slug:    "hello-world",
		Content: "This is long enough to pass.",
		Tags:    "go,web",
	}
}

func TestCreatePostRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *CreatePostRequest)
		wantErr bool
	}{
		{
			name:   "valid request",
			mutate: func(r *CreatePostRequest) {},
		},
		{
			name:   "tags are optional",
			mutate: func(r *CreatePostRequest) { r.Tags = "" },
		},
		{
			name:    "title too short",
			mutate:  func(r *CreatePostRequest) { r.Title = "ab" },
			wantErr: true,
		},
		{
			name:    "title missing",
			mutate:  func(r *CreatePostRequest) { r.Title = "" },
			wantErr: true,
		},
		{
			name:    "slug too short",
			mutate:  func(r *CreatePostRequest) { r.Slug = "ab" },
			wantErr: true,
		},
		{
			name:    "slug with uppercase",
			mutate:  func(r *CreatePostRequest) { r.Slug = "Hello-World" },
			wantErr: true,
		},
		{
			name:    "slug with spaces",
			mutate:  func(r *CreatePostRequest) { r.Slug = "hello world" },
			wantErr: true,
		},
		{
			name:    "slug with unicode",
			mutate:  func(r *CreatePostRequest) { r.Slug = "héllo" },
			wantErr: true,
		},
		{
			name:   "slug with digits and dashes",
			mutate: func(r *CreatePostRequest) { r.Slug = "post-42" },
		},
		{
			name:    "content too short",
			mutate:  func(r *CreatePostRequest) { r.Content = "short" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validPostRequest()
			tt.mutate(&r)

			err := r.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateCommentRequest_Validate(t *testing.T) {
	assert.Error(t, CreateCommentRequest{Content: ""}.Validate())
	assert.NoError(t, CreateCommentRequest{Content: "nice post"}.Validate())

	parentID := int64(7)
	assert.NoError(t, CreateCommentRequest{Content: "reply", ParentID: &parentID}.Validate())
}
