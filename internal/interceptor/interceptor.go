// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package interceptor encrypts registered fields of outgoing JSON bodies and
// decrypts them in responses, so the server only ever stores ciphertext.
package interceptor

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rcrowley/go-metrics"

	"github.com/MKhiriev/go-zk-vault/internal/crypto"
	"github.com/MKhiriev/go-zk-vault/internal/keystore"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/registry"
)

// KeyProvider returns a copy of the live master key without blocking on
// I/O. The interceptor wipes the copy after use. [keystore.KeyStore]
// implements it.
type KeyProvider interface {
	EncryptionKey() (crypto.EncryptionKey, error)
}

// Interceptor transforms JSON payloads according to a field registry.
type Interceptor struct {
	registry *registry.Registry
	keys     KeyProvider
	keychain crypto.KeyChainService
	policy   Policy
	logger   *logger.Logger

	encrypted      metrics.Counter
	decrypted      metrics.Counter
	unreadable     metrics.Counter
	legacy         metrics.Counter
	blocked        metrics.Counter
	plaintextSent  metrics.Counter
	alreadySkipped metrics.Counter
}

// Option configures an [Interceptor].
type Option func(*options)

type options struct {
	metrics metrics.Registry
}

// WithMetricsRegistry records counters in r instead of the default registry.
func WithMetricsRegistry(r metrics.Registry) Option {
	return func(o *options) { o.metrics = r }
}

// New builds an Interceptor.
func New(reg *registry.Registry, keys KeyProvider, keychain crypto.KeyChainService, policy Policy, log *logger.Logger, opts ...Option) *Interceptor {
	o := options{metrics: metrics.DefaultRegistry}
	for _, opt := range opts {
		opt(&o)
	}
	if policy.UnreadablePlaceholder == "" {
		policy.UnreadablePlaceholder = DefaultUnreadablePlaceholder
	}

	return &Interceptor{
		registry:       reg,
		keys:           keys,
		keychain:       keychain,
		policy:         policy,
		logger:         log.WithComponent("interceptor"),
		encrypted:      metrics.GetOrRegisterCounter("interceptor.fields.encrypted", o.metrics),
		decrypted:      metrics.GetOrRegisterCounter("interceptor.fields.decrypted", o.metrics),
		unreadable:     metrics.GetOrRegisterCounter("interceptor.fields.unreadable", o.metrics),
		legacy:         metrics.GetOrRegisterCounter("interceptor.fields.legacy_plaintext", o.metrics),
		alreadySkipped: metrics.GetOrRegisterCounter("interceptor.fields.already_encrypted", o.metrics),
		blocked:        metrics.GetOrRegisterCounter("interceptor.requests.blocked", o.metrics),
		plaintextSent:  metrics.GetOrRegisterCounter("interceptor.requests.plaintext_sent", o.metrics),
	}
}

// Policy returns the active policy.
func (i *Interceptor) Policy() Policy {
	return i.policy
}

// Applies reports whether payloads for path are transformed at all.
func (i *Interceptor) Applies(path string) bool {
	return !i.registry.ShouldSkipEncryption(path)
}

// EncryptRequestPayload encrypts every registered non-empty string field of
// body. Bodies for unregistered paths, non-JSON bodies and bodies without
// eligible fields are returned unchanged. Values that are already
// ciphertext are left as they are.
//
// The key is resolved once, before any field is sealed. Without a key the
// request is blocked with keystore.ErrNoKeyAvailable unless the policy is
// NoKeySendPlaintext.
func (i *Interceptor) EncryptRequestPayload(path string, body []byte) ([]byte, error) {
	paths := i.registry.FieldPaths(path)
	if len(paths) == 0 || len(bytes.TrimSpace(body)) == 0 {
		return body, nil
	}

	doc, err := decode(body)
	if err != nil {
		i.logger.Debug().Str("path", path).Msg("request body is not JSON, sent as is")
		return body, nil
	}

	eligible := false
	for _, fp := range paths {
		walk(doc, fp, func(field, value string) (string, bool) {
			if value != "" && !crypto.IsEncrypted(value) {
				eligible = true
			}
			return "", false
		})
	}
	if !eligible {
		return body, nil
	}

	key, err := i.keys.EncryptionKey()
	if errors.Is(err, keystore.ErrNoKeyAvailable) && i.policy.NoKey == NoKeySendPlaintext {
		i.plaintextSent.Inc(1)
		i.logger.Warn().Str("path", path).Msg("no encryption key, request sent in plaintext by policy")
		return body, nil
	}
	if err != nil {
		i.blocked.Inc(1)
		i.logger.Warn().Err(err).Str("path", path).Msg("request blocked, no encryption key")
		return nil, fmt.Errorf("encrypt request %s: %w", path, err)
	}
	defer key.Wipe()

	var sealErr error
	for _, fp := range paths {
		walk(doc, fp, func(field, value string) (string, bool) {
			if sealErr != nil || value == "" {
				return "", false
			}
			if crypto.IsEncrypted(value) {
				i.alreadySkipped.Inc(1)
				return "", false
			}
			ct, err := i.keychain.Encrypt(value, key)
			if err != nil {
				sealErr = fmt.Errorf("encrypt field %s: %w", field, err)
				return "", false
			}
			i.encrypted.Inc(1)
			return ct, true
		})
	}
	if sealErr != nil {
		return nil, fmt.Errorf("encrypt request %s: %w", path, sealErr)
	}

	return encode(doc)
}

// DecryptResponsePayload decrypts every registered ciphertext field of body.
// It never fails because of a single field: a value that cannot be opened,
// or cannot be opened for lack of a key, becomes the unreadable
// placeholder. Plaintext values are kept only under LegacyPlaintextFallback.
func (i *Interceptor) DecryptResponsePayload(path string, body []byte) ([]byte, error) {
	paths := i.registry.FieldPaths(path)
	if len(paths) == 0 || len(bytes.TrimSpace(body)) == 0 {
		return body, nil
	}

	doc, err := decode(body)
	if err != nil {
		i.logger.Debug().Str("path", path).Msg("response body is not JSON, passed through")
		return body, nil
	}

	var (
		key      crypto.EncryptionKey
		keyErr   error
		resolved bool
	)
	resolve := func() (crypto.EncryptionKey, error) {
		if !resolved {
			key, keyErr = i.keys.EncryptionKey()
			resolved = true
		}
		return key, keyErr
	}
	defer func() { key.Wipe() }()

	changed := false
	for _, fp := range paths {
		if walk(doc, fp, func(field, value string) (string, bool) {
			return i.openField(path, field, value, resolve)
		}) {
			changed = true
		}
	}
	if !changed {
		return body, nil
	}

	return encode(doc)
}

func (i *Interceptor) openField(path, field, value string, resolve func() (crypto.EncryptionKey, error)) (string, bool) {
	if value == "" {
		return "", false
	}

	if !crypto.IsEncrypted(value) {
		if i.policy.LegacyPlaintextFallback {
			i.legacy.Inc(1)
			return "", false
		}
		i.unreadable.Inc(1)
		i.logger.Warn().Str("path", path).Str("field", field).Msg("plaintext value in encrypted field rejected")
		return i.policy.UnreadablePlaceholder, true
	}

	key, err := resolve()
	if err != nil {
		i.unreadable.Inc(1)
		return i.policy.UnreadablePlaceholder, true
	}

	plaintext, err := i.keychain.Decrypt(value, key)
	if err != nil {
		i.unreadable.Inc(1)
		i.logger.Warn().Err(err).Str("path", path).Str("field", field).Msg("field left unreadable")
		return i.policy.UnreadablePlaceholder, true
	}

	i.decrypted.Inc(1)
	return plaintext, true
}

func decode(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("trailing data after JSON value")
	}
	return doc, nil
}

func encode(doc any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
