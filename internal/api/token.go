package api

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenSource supplies the bearer token attached to every backend call.
type TokenSource interface {
	// Token returns the current bearer token. An error means no usable
	// token exists and the call must fail without going to the network.
	Token() (string, error)
}

// StaticToken is a fixed token, used in tests and one-shot commands.
type StaticToken string

func (t StaticToken) Token() (string, error) {
	if t == "" {
		return "", &ErrNoToken{}
	}
	return string(t), nil
}

// FileTokenSource reads the bearer token saved by `fuji login`. The token
// is read-only shared state from the client's perspective: every call site
// reads it, only the login flow writes it.
type FileTokenSource struct {
	Path string
}

func (f *FileTokenSource) Token() (string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", &ErrNoToken{Err: err}
	}
	tok := strings.TrimSpace(string(data))
	if tok == "" {
		return "", &ErrNoToken{}
	}
	if expired, err := tokenExpired(tok, time.Now()); err == nil && expired {
		return "", &ErrNoToken{Err: fmt.Errorf("session expired")}
	}
	return tok, nil
}

// Save writes a fresh token, creating the parent directory as needed.
func (f *FileTokenSource) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	if err := os.WriteFile(f.Path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

// Clear removes the saved token.
func (f *FileTokenSource) Clear() error {
	err := os.Remove(f.Path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}

// tokenExpired peeks at the JWT exp claim without verifying the signature;
// verification is the backend's job, the client only wants to say "please
// log in again" before issuing a doomed call. Opaque (non-JWT) tokens are
// treated as non-expiring.
func tokenExpired(token string, now time.Time) (bool, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false, err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false, err
	}
	return now.After(exp.Time), nil
}
