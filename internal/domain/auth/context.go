package auth

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
)

// UserIDFromContext extracts the acting user's id from the verified JWT
// claims. Ledger rows record this as created_by / approved_by.
func UserIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", ErrMissingUser
	}

	return userID, nil
}
