package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jaekyeom/go-bulletin-board/models"
	"github.com/golang-jwt/jwt/v5"
)

// boardClaims are the JWT claims carried by a session token: the registered
// set plus the username for display purposes.
type boardClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username,omitempty"`
}

// GenerateJWTToken creates a signed HMAC-SHA256 session token.
//
// Claims:
//   - Issuer    (iss): identifies the issuing service
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - username:        display identity for the client
//
// Returns an error if issuer, tokenDuration, or signKey is empty or zero.
func GenerateJWTToken(issuer string, userID int64, username string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	expiresAt := now.Add(tokenDuration)
	claims := &boardClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Username: username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		SignedString: tokenString,
		UserID:       userID,
		Username:     username,
		ExpiresAt:    expiresAt,
	}, nil
}

// ValidateAndParseJWTToken verifies the signature, issuer, and expiry of a
// raw token string and extracts the user id and username.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &boardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}
	if !token.Valid {
		return models.Token{}, errors.New("invalid token")
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during converting subject to user id: %w", err)
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return models.Token{
		SignedString: tokenString,
		UserID:       userID,
		Username:     claims.Username,
		ExpiresAt:    expiresAt,
	}, nil
}

// ParseBearerToken extracts the token value from an "Authorization: Bearer x"
// header.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
