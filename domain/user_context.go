package domain

import (
	"context"

	"github.com/google/uuid"
)

// DefaultWordsPerMinute is used when the user/auth collaborator does
// not supply a reading-speed setting.
const DefaultWordsPerMinute = 200

// UserContext carries the authenticated owner and their reading-speed
// setting used for reading-time calculation.
type UserContext struct {
	UserID         uuid.UUID `json:"user_id"`
	WordsPerMinute int       `json:"words_per_minute"`
}

// IsValid checks that the context identifies a real user.
func (uc *UserContext) IsValid() bool {
	return uc.UserID != uuid.Nil
}

// ReadingSpeed returns the words-per-minute setting, falling back to
// the default when unset.
func (uc *UserContext) ReadingSpeed() int {
	if uc.WordsPerMinute <= 0 {
		return DefaultWordsPerMinute
	}
	return uc.WordsPerMinute
}

type contextKey string

const UserContextKey contextKey = "user_context"

func GetUserFromContext(ctx context.Context) (*UserContext, error) {
	user, ok := ctx.Value(UserContextKey).(*UserContext)
	if !ok || user == nil || !user.IsValid() {
		return nil, ErrInvalidUserContext
	}

	return user, nil
}

func SetUserContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}
