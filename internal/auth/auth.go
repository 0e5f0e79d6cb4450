package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// RoleAdmin is the only role allowed to change site content.
const RoleAdmin = "admin"

var (
	ErrMissingHeader      = errors.New("authorization header is missing")
	ErrMalformedHeader    = errors.New("authorization header is malformed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInsufficientRole   = errors.New("insufficient privileges")
)

// Authorizer decides whether the caller of a write endpoint may proceed.
type Authorizer interface {
	Authorize(r *http.Request) error
}

// Challenger is implemented by authorizers that want a WWW-Authenticate header on failure.
type Challenger interface {
	Challenge() string
}

// Open lets every caller through.
type Open struct{}

func (Open) Authorize(*http.Request) error { return nil }

// Basic checks HTTP basic credentials against a bcrypt hash.
type Basic struct {
	user     string
	passHash []byte
}

func NewBasic(user, passHash string) *Basic {
	return &Basic{user: user, passHash: []byte(passHash)}
}

func (b *Basic) Authorize(r *http.Request) error {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ErrMissingHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Basic" {
		return ErrMalformedHeader
	}

	decoded, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return ErrMalformedHeader
	}

	creds := strings.SplitN(string(decoded), ":", 2)
	if len(creds) != 2 {
		return ErrMalformedHeader
	}
	// Run bcrypt even on a user mismatch so timing does not leak the user name.
	userOK := subtle.ConstantTimeCompare([]byte(creds[0]), []byte(b.user)) == 1
	passErr := bcrypt.CompareHashAndPassword(b.passHash, []byte(creds[1]))
	if !userOK || passErr != nil {
		return ErrInvalidCredentials
	}
	return nil
}

func (b *Basic) Challenge() string {
	return `Basic realm="folio", charset="UTF-8"`
}

// Token accepts HS256 bearer tokens carrying role=admin.
type Token struct {
	authenticator *JWTAuthenticator
}

func NewToken(authenticator *JWTAuthenticator) *Token {
	return &Token{authenticator: authenticator}
}

func (t *Token) Authorize(r *http.Request) error {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ErrMissingHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ErrMalformedHeader
	}

	token, err := t.authenticator.ValidateAccessToken(parts[1])
	if err != nil {
		return errors.Join(ErrInvalidCredentials, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ErrInvalidCredentials
	}
	if role, _ := claims["role"].(string); role != RoleAdmin {
		return ErrInsufficientRole
	}
	return nil
}

func (t *Token) Challenge() string {
	return `Bearer realm="folio"`
}
