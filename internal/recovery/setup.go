// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package recovery implements the two recovery procedures: setting up a
// 24-word recovery phrase that wraps the master key, and restoring the
// master key on a new device from that phrase.
//
// The phrase never leaves the process. Only the wrapped master key is
// uploaded, and the server cannot open it.
package recovery

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"slices"
	"strings"
	"sync"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-zk-vault/internal/crypto"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/models"
)

// VerifyWordCount is how many words the user re-types during setup.
const VerifyWordCount = 3

// SetupStep is a state of [SetupFlow].
type SetupStep int

const (
	StepIntro SetupStep = iota
	StepDisplay
	StepVerify
	StepSuccess
	StepCanceled
)

func (s SetupStep) String() string {
	switch s {
	case StepIntro:
		return "intro"
	case StepDisplay:
		return "display"
	case StepVerify:
		return "verify"
	case StepSuccess:
		return "success"
	case StepCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("SetupStep(%d)", int(s))
	}
}

// SetupFlow walks the user through Intro → Display → Verify → Success.
//
// The phrase is kept in a locked memguard buffer and destroyed on Cancel,
// on Close and after a successful upload.
type SetupFlow struct {
	mu sync.Mutex

	keychain crypto.KeyChainService
	keys     KeyHolder
	blobs    BlobStore
	logger   *logger.Logger

	step      SetupStep
	phrase    *memguard.LockedBuffer
	positions []int
}

// NewSetupFlow returns a flow in StepIntro.
func NewSetupFlow(keychain crypto.KeyChainService, keys KeyHolder, blobs BlobStore, log *logger.Logger) *SetupFlow {
	return &SetupFlow{
		keychain: keychain,
		keys:     keys,
		blobs:    blobs,
		logger:   log.WithComponent("recovery-setup"),
	}
}

// Step returns the current step.
func (f *SetupFlow) Step() SetupStep {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// Start generates a fresh phrase and moves to StepDisplay. It returns the
// 24 words to show. Calling Start again from Display regenerates the phrase.
func (f *SetupFlow) Start() ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepIntro && f.step != StepDisplay {
		return nil, fmt.Errorf("start recovery setup in step %s: %w", f.step, ErrInvalidStep)
	}

	mnemonic, err := f.keychain.GenerateRecoveryMnemonic()
	if err != nil {
		return nil, fmt.Errorf("generate recovery phrase: %w", err)
	}

	f.wipe()
	f.phrase = memguard.NewBufferFromBytes([]byte(mnemonic))
	f.step = StepDisplay

	return f.words(), nil
}

// Words returns the phrase while it is shown or verified.
func (f *SetupFlow) Words() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepDisplay && f.step != StepVerify {
		return nil
	}
	return f.words()
}

// BeginVerification picks VerifyWordCount distinct random positions
// (1-based, ascending) the user has to re-type, and moves to StepVerify.
func (f *SetupFlow) BeginVerification() ([]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepDisplay {
		return nil, fmt.Errorf("begin verification in step %s: %w", f.step, ErrInvalidStep)
	}

	positions, err := pickPositions(crypto.MnemonicWords, VerifyWordCount)
	if err != nil {
		return nil, err
	}

	f.positions = positions
	f.step = StepVerify
	return slices.Clone(positions), nil
}

// ShowWordsAgain returns from StepVerify to StepDisplay.
func (f *SetupFlow) ShowWordsAgain() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepVerify {
		return fmt.Errorf("show words in step %s: %w", f.step, ErrInvalidStep)
	}
	f.positions = nil
	f.step = StepDisplay
	return nil
}

// Verify checks the re-typed words, keyed by 1-based position. The check
// is case-insensitive and ignores surrounding whitespace. Any mismatch
// returns ErrVerificationMismatch and the flow stays in StepVerify.
//
// On a full match the current master key is wrapped under the
// phrase-derived key and only the wrapped ciphertext is uploaded. The
// local recovery flag is set and the phrase destroyed once the upload
// succeeded.
func (f *SetupFlow) Verify(ctx context.Context, answers map[int]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepVerify {
		return fmt.Errorf("verify in step %s: %w", f.step, ErrInvalidStep)
	}

	words := f.words()
	for _, pos := range f.positions {
		got := strings.TrimSpace(answers[pos])
		if !strings.EqualFold(got, words[pos-1]) {
			return fmt.Errorf("word #%d: %w", pos, ErrVerificationMismatch)
		}
	}

	wrappingKey, err := f.keychain.DeriveKeyFromMnemonic(string(f.phrase.Bytes()))
	if err != nil {
		return fmt.Errorf("derive recovery key: %w", err)
	}
	defer wrappingKey.Wipe()

	var wrapped models.WrappedMasterKey
	err = f.keys.WithKey(func(masterKey crypto.EncryptionKey) error {
		var err error
		wrapped, err = f.keychain.WrapMasterKey(masterKey, wrappingKey)
		return err
	})
	if err != nil {
		return fmt.Errorf("wrap master key for recovery: %w", err)
	}

	if err = ctx.Err(); err != nil {
		return err
	}

	blob := wrapped.EncryptedKey
	if err = f.blobs.PutRecoveryKey(ctx, models.RecoveryKey{RecoveryBlob: &blob, Version: wrapped.Version}); err != nil {
		f.logger.Warn().Err(err).Msg("recovery key upload failed")
		return fmt.Errorf("upload recovery key: %w", err)
	}

	f.keys.SetHasRecoveryKey(ctx, true)
	f.wipe()
	f.step = StepSuccess
	f.logger.Info().Msg("recovery key set up")
	return nil
}

// Cancel aborts the flow before success and destroys the phrase.
// Nothing has been uploaded unless Verify already succeeded.
func (f *SetupFlow) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.wipe()
	if f.step != StepSuccess {
		f.step = StepCanceled
	}
}

// Close releases sensitive state whatever the outcome. It is what the UI
// calls when the setup screen goes away.
func (f *SetupFlow) Close() {
	f.Cancel()
}

func (f *SetupFlow) words() []string {
	if f.phrase == nil || !f.phrase.IsAlive() {
		return nil
	}
	return strings.Fields(string(f.phrase.Bytes()))
}

func (f *SetupFlow) wipe() {
	if f.phrase != nil {
		f.phrase.Destroy()
		f.phrase = nil
	}
	f.positions = nil
}

// pickPositions draws k distinct positions in [1, n] from crypto/rand.
func pickPositions(n, k int) ([]int, error) {
	seen := make(map[int]struct{}, k)
	out := make([]int, 0, k)
	for len(out) < k {
		v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
		if err != nil {
			return nil, fmt.Errorf("pick verification words: %w", err)
		}
		pos := int(v.Int64()) + 1
		if _, dup := seen[pos]; dup {
			continue
		}
		seen[pos] = struct{}{}
		out = append(out, pos)
	}
	slices.Sort(out)
	return out, nil
}
