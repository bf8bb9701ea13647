package utils

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

const csrfTokenBytes = 32

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	NewUUID() (string, error)
	NewCSRFToken() (string, error)
}

type utils struct {
	tokenBytes int
}

func New() IUtils {
	return &utils{
		tokenBytes: csrfTokenBytes,
	}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// NewUUID returns a random (version 4) UUID used as a record primary key.
func (u *utils) NewUUID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// NewCSRFToken returns 32 bytes from crypto/rand, hex encoded.
func (u *utils) NewCSRFToken() (string, error) {
	buf := make([]byte, u.tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
