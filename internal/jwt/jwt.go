package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultCookieName is the cookie the browser flow stores its token in.
const DefaultCookieName = "warbler_session"

// JWT signs and verifies session tokens. The token payload is the session ID,
// never the user ID: sessions stay revocable server-side, the signature only
// keeps the cookie tamper-proof.
type JWT struct {
	SecretKey  string        // Secret key for signing tokens
	Exp        time.Duration // Token expiration duration
	CookieName string        // Cookie holding the token in the browser flow
}

// Option configures a JWT instance.
type Option func(*JWT)

// WithSecretKey sets the HMAC signing secret.
func WithSecretKey(secret string) Option {
	return func(j *JWT) { j.SecretKey = secret }
}

// WithExpiration sets the token lifetime.
func WithExpiration(exp time.Duration) Option {
	return func(j *JWT) { j.Exp = exp }
}

// WithCookieName overrides the session cookie name.
func WithCookieName(name string) Option {
	return func(j *JWT) { j.CookieName = name }
}

// New creates a new JWT instance.
func New(opts ...Option) *JWT {
	j := &JWT{
		SecretKey:  "secret",
		Exp:        24 * time.Hour,
		CookieName: DefaultCookieName,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate creates a signed token for a given session ID.
func (j *JWT) Generate(ctx context.Context, sessionID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"sid": sessionID.String(),
		"exp": time.Now().Add(j.Exp).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// Validate checks the token signature and expiry.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetSessionID(ctx, tokenString)
	return err
}

// GetSessionID parses the token string and returns the session ID if valid.
func (j *JWT) GetSessionID(ctx context.Context, tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if sidStr, ok := claims["sid"].(string); ok {
			sid, err := uuid.Parse(sidStr)
			if err != nil {
				return uuid.Nil, errors.New("invalid sid format")
			}
			return sid, nil
		}
		return uuid.Nil, errors.New("sid not found in token")
	}
	return uuid.Nil, errors.New("invalid token")
}

// GetTokenFromRequest extracts the token string from the request: the session
// cookie for browser traffic, the Authorization header for API clients.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	if c, err := r.Cookie(j.CookieName); err == nil && c.Value != "" {
		return c.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("no session cookie and no authorization header")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
