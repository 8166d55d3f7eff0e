package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidSelectionToken covers every way a selection token can fail to
// verify: bad signature, expiry, or presentation by a different user.
var ErrInvalidSelectionToken = errors.New("invalid selection token")

// PendingSelection is the recipe snapshot captured when a user views a
// recipe's detail. Confirming the add persists exactly these values — the
// catalog is not consulted again.
type PendingSelection struct {
	RecipeID int     `json:"recipe_id"`
	Title    string  `json:"title"`
	Calories int     `json:"calories"`
	Protein  string  `json:"protein"`
	Fat      string  `json:"fat"`
	Carbs    string  `json:"carbs"`
	Price    float64 `json:"price"`
}

type selectionClaims struct {
	UserID    uint             `json:"user_id"`
	Selection PendingSelection `json:"selection"`
	jwt.RegisteredClaims
}

// SignSelectionToken wraps a pending selection in a short-lived signed token.
// The token replaces server-side session scratch state for the two-step
// view-then-confirm flow: the detail response hands it to the client, the
// confirm request hands it back.
func SignSelectionToken(userID uint, sel PendingSelection, ttl time.Duration) (string, error) {
	claims := selectionClaims{
		UserID:    userID,
		Selection: sel,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// ParseSelectionToken verifies the token signature and expiry and checks the
// token was issued to the presenting user.
func ParseSelectionToken(tokenString string, userID uint) (*PendingSelection, error) {
	var claims selectionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidSelectionToken
	}
	if claims.UserID != userID {
		return nil, ErrInvalidSelectionToken
	}
	return &claims.Selection, nil
}
