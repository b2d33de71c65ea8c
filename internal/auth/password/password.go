// Package password hashes account passwords with Argon2id using the
// standard PHC string encoding ($argon2id$v=19$m=...,t=...,p=...$salt$hash).
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

type params struct {
	memory  uint32
	time    uint32
	threads uint8
}

// defaults follow the RFC 9106 low-memory recommendation.
var defaults = params{memory: 64 * 1024, time: 1, threads: 4}

const (
	keyLen  = 32
	saltLen = 16
)

// Hash derives an Argon2id hash of the password under a fresh random salt.
func Hash(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	key := argon2.IDKey([]byte(password), salt, defaults.time, defaults.memory, defaults.threads, keyLen)

	return fmt.Sprintf("$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		defaults.memory, defaults.time, defaults.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify reports whether the password matches an encoded hash. The cost
// parameters come from the encoded string, so hashes created under older
// settings keep verifying after the defaults change.
func Verify(password, encoded string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" || parts[2] != "v=19" {
		return false
	}
	p, ok := parseParams(parts[3])
	if !ok {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false
	}

	got := argon2.IDKey([]byte(password), salt, p.time, p.memory, p.threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(want, got) == 1
}

func parseParams(encoded string) (params, bool) {
	fields := strings.Split(encoded, ",")
	if len(fields) != 3 {
		return params{}, false
	}
	m, okM := parseField(fields[0], "m=", 32)
	t, okT := parseField(fields[1], "t=", 32)
	p, okP := parseField(fields[2], "p=", 8)
	if !okM || !okT || !okP {
		return params{}, false
	}
	return params{memory: uint32(m), time: uint32(t), threads: uint8(p)}, true
}

func parseField(field, prefix string, bits int) (uint64, bool) {
	raw, ok := strings.CutPrefix(field, prefix)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseUint(raw, 10, bits)
	if err != nil {
		return 0, false
	}
	return v, true
}
