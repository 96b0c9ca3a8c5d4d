package validators

import (
	"context"
	"strings"

	"github.com/jaekyeom/go-bulletin-board/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldTitle targets the post title.
	FieldTitle = "title"

	// FieldContent targets the post body.
	FieldContent = "content"

	// FieldCategory targets the optional post category.
	FieldCategory = "category"

	// FieldUsername targets the account name in register/login requests.
	FieldUsername = "username"

	// FieldPassword targets the plain-text password in register/login
	// requests.
	FieldPassword = "password"
)

// Size caps enforced on incoming drafts. The database columns are TEXT, so
// these are API limits, not storage limits.
const (
	maxTitleLen    = 200
	maxContentLen  = 10000
	maxCategoryLen = 40
	maxUsernameLen = 64
)

// BoardValidator validates the request payloads of the bulletin board API:
// post drafts and user credentials.
type BoardValidator struct {
}

func NewBoardValidator() Validator {
	return &BoardValidator{}
}

func (v *BoardValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PostDraft:
		return v.validatePostDraft(ctx, value, fields...)
	case *models.PostDraft:
		return v.validatePostDraft(ctx, *value, fields...)

	case models.User:
		return v.validateUserCredentials(ctx, value, fields...)
	case *models.User:
		return v.validateUserCredentials(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *BoardValidator) validatePostDraft(_ context.Context, draft models.PostDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent, FieldCategory}
	}

	for _, field := range fields {
		switch field {
		case FieldTitle:
			if strings.TrimSpace(draft.Title) == "" {
				return ErrEmptyTitle
			}
			if len(draft.Title) > maxTitleLen {
				return ErrTitleTooLong
			}
		case FieldContent:
			if strings.TrimSpace(draft.Content) == "" {
				return ErrEmptyContent
			}
			if len(draft.Content) > maxContentLen {
				return ErrContentTooLong
			}
		case FieldCategory:
			// The category is optional; only its size is checked.
			if len(draft.Category) > maxCategoryLen {
				return ErrCategoryTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *BoardValidator) validateUserCredentials(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldUsername:
			if user.Username == "" {
				return ErrEmptyUsername
			}
			if len(user.Username) > maxUsernameLen {
				return ErrUsernameTooLong
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
