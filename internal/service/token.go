package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pageza/macroplan/backend/internal/types"
)

const tokenIssuer = "macroplan"

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrMissingProfileID  = errors.New("token has no profile id")
	ErrUnexpectedSigning = errors.New("unexpected signing method")
)

// TokenService issues and validates the bearer tokens that guard plan
// access. Tokens are minted by the surrounding application; this service
// only needs the shared HMAC secret.
type TokenService struct {
	jwtSecret []byte
	ttl       time.Duration
}

func NewTokenService(jwtSecret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{
		jwtSecret: []byte(jwtSecret),
		ttl:       ttl,
	}
}

// GenerateToken signs claims with HS256, filling in issuer and expiry when
// they are unset.
func (s *TokenService) GenerateToken(claims *types.TokenClaims) (string, error) {
	if claims.ProfileID == "" {
		return "", ErrMissingProfileID
	}
	now := time.Now()
	if claims.IssuedAt == nil {
		claims.IssuedAt = jwt.NewNumericDate(now)
	}
	if claims.ExpiresAt == nil {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}
	if claims.Issuer == "" {
		claims.Issuer = tokenIssuer
	}
	if claims.Subject == "" {
		claims.Subject = claims.ProfileID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *TokenService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	claims := &types.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnexpectedSigning
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.ProfileID == "" {
		return nil, ErrMissingProfileID
	}
	return claims, nil
}
