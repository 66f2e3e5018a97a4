package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/sync/semaphore"

	apperrors "github.com/bloodlink-my/bloodlink/internal/errors"
)

// HasherParams tune the argon2id KDF. The defaults follow the argon2
// first-recommended option (64 MiB, 1 pass) scaled to interactive logins.
type HasherParams struct {
	Memory      uint32
	Time        uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultHasherParams returns the production KDF parameters.
func DefaultHasherParams() HasherParams {
	return HasherParams{
		Memory:      64 * 1024,
		Time:        3,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   32,
	}
}

// Hasher hashes and verifies passwords with argon2id. Both operations run
// behind a weighted semaphore: the KDF is deliberately expensive, and an
// unbounded burst of logins would otherwise monopolise every CPU and starve
// request handling.
type Hasher struct {
	params HasherParams
	sem    *semaphore.Weighted
}

// NewHasher creates a Hasher limited to the given number of concurrent KDF
// computations. workers <= 0 defaults to GOMAXPROCS.
func NewHasher(params HasherParams, workers int64) *Hasher {
	if workers <= 0 {
		workers = int64(runtime.GOMAXPROCS(0))
	}
	return &Hasher{params: params, sem: semaphore.NewWeighted(workers)}
}

// Hash derives an encoded argon2id hash for the plaintext with a fresh
// random salt. Blocks until a KDF worker slot is free or ctx is done.
func (h *Hasher) Hash(ctx context.Context, plaintext string) (string, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeCanceled, "password hash canceled")
	}
	defer h.sem.Release(1)

	salt := make([]byte, h.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(plaintext), salt, h.params.Time, h.params.Memory, h.params.Parallelism, h.params.KeyLength)
	return encodeHash(h.params, salt, key), nil
}

// Verify checks the plaintext against an encoded hash. It distinguishes a
// mismatch (wrong password) from a malformed stored hash (corrupt data).
func (h *Hasher) Verify(ctx context.Context, plaintext, encoded string) error {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeCanceled, "password verify canceled")
	}
	defer h.sem.Release(1)

	params, salt, key, err := decodeHash(encoded)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodePasswordHash, "malformed password hash")
	}

	candidate := argon2.IDKey([]byte(plaintext), salt, params.Time, params.Memory, params.Parallelism, uint32(len(key)))
	if subtle.ConstantTimeCompare(key, candidate) != 1 {
		return apperrors.New(apperrors.ErrCodeLoginWrongPassword, "password mismatch")
	}
	return nil
}

// encodeHash renders the PHC string form:
// $argon2id$v=19$m=65536,t=3,p=2$<salt>$<hash>.
func encodeHash(params HasherParams, salt, key []byte) string {
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		params.Memory, params.Time, params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
}

func decodeHash(encoded string) (HasherParams, []byte, []byte, error) {
	var params HasherParams
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return params, nil, nil, fmt.Errorf("unexpected hash format")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return params, nil, nil, fmt.Errorf("parse version: %w", err)
	}
	if version != argon2.Version {
		return params, nil, nil, fmt.Errorf("unsupported argon2 version %d", version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.Memory, &params.Time, &params.Parallelism); err != nil {
		return params, nil, nil, fmt.Errorf("parse parameters: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return params, nil, nil, fmt.Errorf("decode salt: %w", err)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return params, nil, nil, fmt.Errorf("decode hash: %w", err)
	}
	params.SaltLength = uint32(len(salt))
	params.KeyLength = uint32(len(key))
	return params, salt, key, nil
}
