package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/salesdesk/salesdesk/internal/domain"
)

const tokenIssuer = "salesdesk"

// tokenClaims is the payload of a sign-in token
type tokenClaims struct {
	Email       string `json:"email"`
	Role        string `json:"role"`
	ReferenceID string `json:"referenceid"`
	jwt.RegisteredClaims
}

type AuthService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type AuthServiceConfig struct {
	Secret   string
	TokenTTL time.Duration
}

func NewAuthService(cfg AuthServiceConfig) (*AuthService, error) {
	if len(cfg.Secret) < 16 {
		return nil, fmt.Errorf("token secret must be at least 16 characters")
	}
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &AuthService{
		secret: []byte(cfg.Secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// IssueToken signs an HS256 token for user and returns it with its expiry
func (s *AuthService) IssueToken(user *domain.User) (string, time.Time, error) {
	if user == nil || user.ID.IsZero() {
		return "", time.Time{}, fmt.Errorf("cannot issue a token without a user id")
	}

	issuedAt := s.now().UTC().Truncate(time.Second)
	expiresAt := issuedAt.Add(s.ttl)

	claims := tokenClaims{
		Email:       user.Email,
		Role:        user.Role,
		ReferenceID: user.ReferenceID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tokenIssuer,
			Subject:   user.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// VerifyToken checks signature, algorithm, issuer and expiry
func (s *AuthService) VerifyToken(token string) (*domain.Principal, error) {
	if token == "" {
		return nil, &domain.ErrUnauthorized{Message: "missing token"}
	}

	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, &domain.ErrUnauthorized{Message: "token expired"}
		}
		return nil, &domain.ErrUnauthorized{Message: "invalid token"}
	}
	if claims.Subject == "" {
		return nil, &domain.ErrUnauthorized{Message: "invalid token"}
	}

	return &domain.Principal{
		UserID:      claims.Subject,
		Email:       claims.Email,
		Role:        claims.Role,
		ReferenceID: claims.ReferenceID,
	}, nil
}
