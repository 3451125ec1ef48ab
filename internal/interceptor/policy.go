package interceptor

import "github.com/MKhiriev/go-zk-vault/internal/config"

// NoKeyPolicy decides what happens to an outgoing request that has fields
// to encrypt while no master key is available.
type NoKeyPolicy int

const (
	// NoKeyBlock fails the request with keystore.ErrNoKeyAvailable.
	// Nothing is sent.
	NoKeyBlock NoKeyPolicy = iota
	// NoKeySendPlaintext sends the body unencrypted and logs a warning.
	// It breaks the zero-knowledge guarantee and must be opted into.
	NoKeySendPlaintext
)

func (p NoKeyPolicy) String() string {
	if p == NoKeySendPlaintext {
		return "send-plaintext"
	}
	return "block"
}

// DefaultUnreadablePlaceholder replaces response fields that cannot be
// decrypted.
const DefaultUnreadablePlaceholder = "[unable to decrypt]"

// Policy is the explicit, auditable behavior of the interceptor.
type Policy struct {
	NoKey NoKeyPolicy

	// LegacyPlaintextFallback keeps plaintext values found in response
	// fields that should hold ciphertext. When false such values are
	// replaced with the placeholder.
	LegacyPlaintextFallback bool

	UnreadablePlaceholder string
}

// DefaultPolicy blocks requests without a key and rejects legacy plaintext.
func DefaultPolicy() Policy {
	return Policy{
		NoKey:                 NoKeyBlock,
		UnreadablePlaceholder: DefaultUnreadablePlaceholder,
	}
}

// PolicyFromConfig builds a Policy from the client configuration.
func PolicyFromConfig(cfg config.Interceptor) Policy {
	p := DefaultPolicy()
	if cfg.AllowPlaintextWithoutKey {
		p.NoKey = NoKeySendPlaintext
	}
	p.LegacyPlaintextFallback = cfg.LegacyPlaintextFallback
	if cfg.UnreadablePlaceholder != "" {
		p.UnreadablePlaceholder = cfg.UnreadablePlaceholder
	}
	return p
}
