package client

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/blockwise/blockwise/internal/infrastructure/uuid"
	"github.com/blockwise/blockwise/internal/session"
)

const sessionFileName = "session_id"

// token fragment length, collision resistance only needs to cover
// concurrent first launches
const fragmentLength = 16

// GetOrCreateSessionID load the persisted session token from the given
// storage scope, generating and persisting a fresh one on first use.
// Repeated calls against the same directory return the identical token
func GetOrCreateSessionID(dir string) (string, error) {
	path := filepath.Join(dir, sessionFileName)
	if raw, err := ioutil.ReadFile(path); err == nil {
		token := strings.TrimSpace(string(raw))
		if _, err := session.Parse(token); err == nil {
			return token, nil
		}
		// corrupted file, fall through and regenerate
	}

	token, err := newSessionToken()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("create session scope %s: %w", dir, err)
	}
	if err := ioutil.WriteFile(path, []byte(token+"\n"), 0600); err != nil {
		return "", fmt.Errorf("persist session id: %w", err)
	}
	return token, nil
}

// newSessionToken combine a random base-36 fragment with a base-36
// timestamp. Uniqueness across clients is practical, not cryptographic,
// the token is a tracking key and never an auth credential
func newSessionToken() (string, error) {
	fragment, err := uuid.NewBase36Generator(fragmentLength).Generate()
	if err != nil {
		return "", fmt.Errorf("generate session fragment: %w", err)
	}
	stamp := strconv.FormatInt(time.Now().UnixNano()/int64(time.Millisecond), 36)
	token := fragment + "-" + stamp
	if _, err := session.Parse(token); err != nil {
		return "", err
	}
	return token, nil
}

// DefaultSessionDir per-user storage scope for the session token
func DefaultSessionDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "blockwise"), nil
}
