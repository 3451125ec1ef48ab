package crypto

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const (
	currentVersion = "v1"
	separator      = ":"
	nonceSize      = 12
	tagSize        = 16
)

// envelope is a decoded "v1:<iv>:<payload>" value.
type envelope struct {
	version string
	iv      []byte
	payload []byte
}

func (e envelope) String() string {
	return e.version + separator +
		base64.StdEncoding.EncodeToString(e.iv) + separator +
		base64.StdEncoding.EncodeToString(e.payload)
}

// parseEnvelope splits and decodes a ciphertext. The version is checked
// first: an unknown version is rejected before anything else is decoded.
func parseEnvelope(value string) (envelope, error) {
	parts := strings.Split(value, separator)
	if len(parts) != 3 {
		return envelope{}, fmt.Errorf("%w: malformed ciphertext", ErrDecryptionFailed)
	}

	version := parts[0]
	if version != currentVersion {
		if isVersionTag(version) {
			return envelope{}, fmt.Errorf("%w: %w: %q", ErrDecryptionFailed, ErrUnsupportedVersion, version)
		}
		return envelope{}, fmt.Errorf("%w: malformed version tag", ErrDecryptionFailed)
	}

	iv, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil || len(iv) != nonceSize {
		return envelope{}, fmt.Errorf("%w: malformed iv", ErrDecryptionFailed)
	}

	payload, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil || len(payload) < tagSize {
		return envelope{}, fmt.Errorf("%w: malformed payload", ErrDecryptionFailed)
	}

	return envelope{version: version, iv: iv, payload: payload}, nil
}

// IsEncrypted reports whether value is structurally a ciphertext:
// a "v<digits>" tag, a 12-byte base64 IV and a base64 payload that is at
// least one GCM tag long. Values with an unknown version still count, so
// they are never treated as plaintext.
func IsEncrypted(value string) bool {
	parts := strings.Split(value, separator)
	if len(parts) != 3 || !isVersionTag(parts[0]) {
		return false
	}

	iv, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil || len(iv) != nonceSize {
		return false
	}

	payload, err := base64.StdEncoding.DecodeString(parts[2])
	return err == nil && len(payload) >= tagSize
}

func isVersionTag(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
