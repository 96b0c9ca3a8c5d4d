package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/jaekyeom/go-bulletin-board/models"
	"github.com/stretchr/testify/assert"
)

func TestValidate_PostDraft(t *testing.T) {
	v := NewBoardValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		draft   models.PostDraft
		wantErr error
	}{
		{
			name:  "valid draft",
			draft: models.PostDraft{Title: "T", Content: "C"},
		},
		{
			name:  "valid draft with category",
			draft: models.PostDraft{Title: "T", Content: "C", Category: "general"},
		},
		{
			name:    "empty title",
			draft:   models.PostDraft{Content: "C"},
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "whitespace title",
			draft:   models.PostDraft{Title: "   ", Content: "C"},
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "empty content",
			draft:   models.PostDraft{Title: "T"},
			wantErr: ErrEmptyContent,
		},
		{
			name:    "title too long",
			draft:   models.PostDraft{Title: strings.Repeat("x", maxTitleLen+1), Content: "C"},
			wantErr: ErrTitleTooLong,
		},
		{
			name:    "content too long",
			draft:   models.PostDraft{Title: "T", Content: strings.Repeat("x", maxContentLen+1)},
			wantErr: ErrContentTooLong,
		},
		{
			name:    "category too long",
			draft:   models.PostDraft{Title: "T", Content: "C", Category: strings.Repeat("x", maxCategoryLen+1)},
			wantErr: ErrCategoryTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.draft)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_PostDraftFieldScoping(t *testing.T) {
	v := NewBoardValidator()
	ctx := context.Background()

	// Only the title is checked, the empty content passes.
	err := v.Validate(ctx, models.PostDraft{Title: "T"}, FieldTitle)
	assert.NoError(t, err)

	err = v.Validate(ctx, models.PostDraft{Title: "T"}, FieldContent)
	assert.ErrorIs(t, err, ErrEmptyContent)

	err = v.Validate(ctx, models.PostDraft{Title: "T", Content: "C"}, "no-such-field")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestValidate_UserCredentials(t *testing.T) {
	v := NewBoardValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.User{Username: "alice", Password: "pw"}))
	assert.ErrorIs(t, v.Validate(ctx, models.User{Password: "pw"}), ErrEmptyUsername)
	assert.ErrorIs(t, v.Validate(ctx, models.User{Username: "alice"}), ErrEmptyPassword)
	assert.ErrorIs(t,
		v.Validate(ctx, models.User{Username: strings.Repeat("a", maxUsernameLen+1), Password: "pw"}),
		ErrUsernameTooLong,
	)

	// Pointer values validate the same as values.
	assert.NoError(t, v.Validate(ctx, &models.User{Username: "alice", Password: "pw"}))
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewBoardValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}
