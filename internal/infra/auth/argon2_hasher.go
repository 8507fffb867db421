// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha1" //nolint:gosec // legacy passlib hashes only, verified then upgraded
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"hash"
	"strconv"
	"strings"

	"carecorner/config"
	domainerrors "carecorner/internal/domain/errors"
	"carecorner/internal/domain/service"
	"carecorner/internal/errors"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

const (
	argon2idPrefix     = "$argon2id$"
	pbkdf2Prefix       = "$pbkdf2"
	pbkdf2SHA1Prefix   = "$pbkdf2$"
	pbkdf2SHA256Prefix = "$pbkdf2-sha256$"
)

var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// argon2Hasher implements service.PasswordHasher with Argon2id PHC strings:
//
//	$argon2id$v=19$m=65536,t=3,p=4$<salt>$<digest>
//
// It also verifies legacy bcrypt and passlib PBKDF2 hashes, which always need a rehash.
type argon2Hasher struct {
	params config.Argon2Config
}

// NewArgon2Hasher is the constructor for argon2Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewArgon2Hasher(cfg *config.Config) service.PasswordHasher {
	params := config.DefaultArgon2
	if cfg != nil && cfg.Auth != nil {
		params = cfg.Auth.Argon2
	}

	return newArgon2Hasher(params)
}

func newArgon2Hasher(params config.Argon2Config) *argon2Hasher {
	return &argon2Hasher{params: params}
}

// Hash generates an Argon2id hash with a fresh random salt.
func (h *argon2Hasher) Hash(password string) (encoded string, err error) {
	p := h.params
	if p.Memory == 0 || p.Iterations == 0 || p.Parallelism == 0 || p.KeyLength == 0 || p.SaltLength == 0 {
		return "", domainerrors.ErrHashingFailed.WithDetails("invalid argon2 parameters")
	}

	salt := make([]byte, p.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", domainerrors.ErrHashingFailed.WithCause(errors.Wrap(err, "read salt"))
	}

	defer func() {
		if r := recover(); r != nil {
			encoded = ""
			err = domainerrors.ErrHashingFailed.WithCause(errors.Errorf("argon2: %v", r))
		}
	}()

	digest := argon2.IDKey([]byte(password), salt, p.Iterations, p.Memory, p.Parallelism, p.KeyLength)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.Memory, p.Iterations, p.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(digest),
	), nil
}

// Verify checks password against any recognized hash encoding.
func (h *argon2Hasher) Verify(encoded, password string) (bool, error) {
	switch {
	case strings.HasPrefix(encoded, argon2idPrefix):
		return verifyArgon2id(encoded, password)
	case hasAnyPrefix(encoded, bcryptPrefixes):
		return verifyBcrypt(encoded, password)
	case strings.HasPrefix(encoded, pbkdf2Prefix):
		return verifyPBKDF2(encoded, password)
	default:
		return false, domainerrors.ErrMalformedHash.WithDetails("unrecognized hash encoding")
	}
}

// NeedsRehash reports true for non-Argon2id hashes, malformed hashes, and Argon2id
// hashes whose parameters are below the configured target.
func (h *argon2Hasher) NeedsRehash(encoded string) bool {
	if !strings.HasPrefix(encoded, argon2idPrefix) {
		return true
	}

	decoded, err := decodeArgon2id(encoded)
	if err != nil {
		return true
	}

	return decoded.version < argon2.Version ||
		decoded.memory < h.params.Memory ||
		decoded.iterations < h.params.Iterations ||
		decoded.parallelism < h.params.Parallelism ||
		uint32(len(decoded.digest)) < h.params.KeyLength
}

// RecognizedPrefixes returns every prefix Verify accepts.
func (h *argon2Hasher) RecognizedPrefixes() []string {
	prefixes := []string{argon2idPrefix, pbkdf2Prefix}

	return append(prefixes, bcryptPrefixes...)
}

type argon2idHash struct {
	version     int
	memory      uint32
	iterations  uint32
	parallelism uint8
	salt        []byte
	digest      []byte
}

func decodeArgon2id(encoded string) (*argon2idHash, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, errors.New("argon2id: wrong number of segments")
	}

	var decoded argon2idHash
	if _, err := fmt.Sscanf(parts[2], "v=%d", &decoded.version); err != nil {
		return nil, errors.Wrap(err, "argon2id: version")
	}

	for _, kv := range strings.Split(parts[3], ",") {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, errors.Errorf("argon2id: bad parameter %q", kv)
		}
		switch key {
		case "m":
			n, err := strconv.ParseUint(value, 10, 32)
			if err != nil {
				return nil, errors.Wrap(err, "argon2id: memory")
			}
			decoded.memory = uint32(n)
		case "t":
			n, err := strconv.ParseUint(value, 10, 32)
			if err != nil {
				return nil, errors.Wrap(err, "argon2id: iterations")
			}
			decoded.iterations = uint32(n)
		case "p":
			n, err := strconv.ParseUint(value, 10, 8)
			if err != nil {
				return nil, errors.Wrap(err, "argon2id: parallelism")
			}
			decoded.parallelism = uint8(n)
		default:
			return nil, errors.Errorf("argon2id: unknown parameter %q", key)
		}
	}
	if decoded.memory == 0 || decoded.iterations == 0 || decoded.parallelism == 0 {
		return nil, errors.New("argon2id: missing parameters")
	}

	var err error
	if decoded.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return nil, errors.Wrap(err, "argon2id: salt")
	}
	if decoded.digest, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return nil, errors.Wrap(err, "argon2id: digest")
	}
	if len(decoded.digest) == 0 {
		return nil, errors.New("argon2id: empty digest")
	}

	return &decoded, nil
}

func verifyArgon2id(encoded, password string) (bool, error) {
	decoded, err := decodeArgon2id(encoded)
	if err != nil {
		return false, domainerrors.ErrMalformedHash.WithCause(err)
	}
	if decoded.version != argon2.Version {
		return false, domainerrors.ErrMalformedHash.WithDetails("unsupported argon2 version")
	}

	digest := argon2.IDKey([]byte(password), decoded.salt,
		decoded.iterations, decoded.memory, decoded.parallelism, uint32(len(decoded.digest)))

	return subtle.ConstantTimeCompare(digest, decoded.digest) == 1, nil
}

func verifyBcrypt(encoded, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, domainerrors.ErrMalformedHash.WithCause(err)
	}
}

// verifyPBKDF2 handles passlib's modular crypt format:
//
//	$pbkdf2$<rounds>$<salt>$<checksum>          (HMAC-SHA1)
//	$pbkdf2-sha256$<rounds>$<salt>$<checksum>
//
// Salt and checksum use passlib's adapted base64 ('.' instead of '+', unpadded).
func verifyPBKDF2(encoded, password string) (bool, error) {
	var newHash func() hash.Hash
	switch {
	case strings.HasPrefix(encoded, pbkdf2SHA1Prefix):
		newHash = sha1.New
	case strings.HasPrefix(encoded, pbkdf2SHA256Prefix):
		newHash = sha256.New
	default:
		return false, domainerrors.ErrMalformedHash.WithDetails("unsupported pbkdf2 digest")
	}

	parts := strings.Split(encoded, "$")
	if len(parts) != 5 {
		return false, domainerrors.ErrMalformedHash.WithDetails("pbkdf2: wrong number of segments")
	}

	rounds, err := strconv.Atoi(parts[2])
	if err != nil || rounds <= 0 {
		return false, domainerrors.ErrMalformedHash.WithDetails("pbkdf2: bad rounds")
	}
	salt, err := decodeAdaptedBase64(parts[3])
	if err != nil {
		return false, domainerrors.ErrMalformedHash.WithCause(err)
	}
	checksum, err := decodeAdaptedBase64(parts[4])
	if err != nil || len(checksum) == 0 {
		return false, domainerrors.ErrMalformedHash.WithDetails("pbkdf2: bad checksum")
	}

	digest := pbkdf2.Key([]byte(password), salt, rounds, len(checksum), newHash)

	return subtle.ConstantTimeCompare(digest, checksum) == 1, nil
}

func decodeAdaptedBase64(s string) ([]byte, error) {
	b, err := base64.RawStdEncoding.DecodeString(strings.ReplaceAll(s, ".", "+"))
	if err != nil {
		return nil, errors.Wrap(err, "decode base64")
	}

	return b, nil
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}

	return false
}
