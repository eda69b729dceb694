package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// TokenExpiry is the fixed validity window for identity tokens. There is no
// refresh or revocation path; tokens simply age out.
const TokenExpiry = 7 * 24 * time.Hour

var (
	// ErrTokenMalformed is returned when a token cannot be structurally decoded.
	ErrTokenMalformed = errors.New("token is malformed")
	// ErrTokenExpired is returned when a token's expiry has passed.
	ErrTokenExpired = errors.New("token is expired")
	// ErrTokenSignature is returned when signature verification fails.
	ErrTokenSignature = errors.New("token signature is invalid")
	// ErrTokenMissingSubject is returned when the subject claim is absent.
	ErrTokenMissingSubject = errors.New("missing user ID")
)

// Claims represents identity token claims. The subject claim is keyed "ID"
// for compatibility with tokens minted by record-access aware stores.
type Claims struct {
	UserID string `json:"ID"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and reads signed identity tokens.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a token service with the given signing secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{
		secret: []byte(secret),
	}
}

// Issue builds and signs an identity token for the user. The expiry is always
// IssuedAt plus TokenExpiry.
func (s *TokenService) Issue(userID, email, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse validates a token's signature, structure and expiry against the
// process secret and returns its claims.
func (s *TokenService) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenSignature
		default:
			return nil, err
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenMalformed
	}
	if claims.UserID == "" {
		return nil, ErrTokenMissingSubject
	}
	return claims, nil
}

// DecodeUnverified structurally decodes a token without checking its
// signature or expiry. It exists for the identity gate, which extracts claims
// from tokens whose signatures are enforced by the credential store that
// minted them; every token this process issues itself is read with Parse.
func (s *TokenService) DecodeUnverified(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, ErrTokenMalformed
		}
		return nil, err
	}
	return claims, nil
}
