package recovery

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-zk-vault/internal/crypto"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/models"
)

// RestoreFlow recovers the master key from the 24-word phrase:
// collect words → fetch blob → derive → unwrap → persist → confirm.
//
// The key store is written only after the blob was opened, so a flow that
// fails or is canceled earlier leaves the device untouched. Every typed
// word sits in its own locked memguard buffer, destroyed on Cancel, on
// Close and after a successful restore.
type RestoreFlow struct {
	mu sync.Mutex

	keychain crypto.KeyChainService
	keys     KeyHolder
	blobs    BlobStore
	logger   *logger.Logger

	words [crypto.MnemonicWords]*memguard.LockedBuffer
	done  bool
}

// NewRestoreFlow returns a flow with empty word inputs.
func NewRestoreFlow(keychain crypto.KeyChainService, keys KeyHolder, blobs BlobStore, log *logger.Logger) *RestoreFlow {
	return &RestoreFlow{
		keychain: keychain,
		keys:     keys,
		blobs:    blobs,
		logger:   log.WithComponent("recovery-restore"),
	}
}

// SetWord sets the word at the 1-based position.
func (f *RestoreFlow) SetWord(position int, word string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if position < 1 || position > len(f.words) {
		return fmt.Errorf("position %d: %w", position, ErrInvalidPosition)
	}
	f.setWord(position-1, strings.ToLower(strings.TrimSpace(word)))
	return nil
}

// Paste fills every input from a pasted phrase. The phrase must contain
// exactly 24 words, otherwise ErrInvalidWordCount is returned and the
// inputs are left as they were.
func (f *RestoreFlow) Paste(text string) error {
	words := strings.Fields(crypto.NormalizeMnemonic(text))
	if len(words) != crypto.MnemonicWords {
		return fmt.Errorf("pasted %d words: %w", len(words), ErrInvalidWordCount)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for i, w := range words {
		f.setWord(i, w)
	}
	return nil
}

// Words returns a copy of the current inputs.
func (f *RestoreFlow) Words() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.wordList()
}

// Complete reports whether every input holds a word.
func (f *RestoreFlow) Complete() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.words {
		if f.word(i) == "" {
			return false
		}
	}
	return true
}

// Done reports whether a restore succeeded.
func (f *RestoreFlow) Done() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.done
}

// Restore runs the restore procedure with the collected words.
//
// Errors are distinguishable with errors.Is:
//   - ErrInvalidWordCount: an input is empty;
//   - ErrBlobNotFound: the account has no recovery key set up;
//   - ErrIncorrectRecoveryPhrase (and crypto.ErrDecryptionFailed): the
//     phrase does not open the blob;
//   - anything else is a network, server or key store failure.
func (f *RestoreFlow) Restore(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	phrase := strings.Join(f.wordList(), " ")
	if len(strings.Fields(phrase)) != crypto.MnemonicWords {
		return ErrInvalidWordCount
	}

	stored, err := f.blobs.GetRecoveryKey(ctx)
	if err != nil {
		return fmt.Errorf("fetch recovery key: %w", err)
	}
	if stored.RecoveryBlob == nil || *stored.RecoveryBlob == "" {
		return ErrBlobNotFound
	}

	wrappingKey, err := f.keychain.DeriveKeyFromMnemonic(phrase)
	if err != nil {
		return fmt.Errorf("derive recovery key: %w", err)
	}
	defer wrappingKey.Wipe()

	version := stored.Version
	if version == 0 {
		version = models.WrapVersionV1
	}

	masterKey, err := f.keychain.UnwrapMasterKey(models.WrappedMasterKey{EncryptedKey: *stored.RecoveryBlob, Version: version}, wrappingKey)
	switch {
	case errors.Is(err, crypto.ErrUnsupportedVersion):
		return fmt.Errorf("open recovery key: %w", err)
	case errors.Is(err, crypto.ErrDecryptionFailed):
		f.logger.Info().Msg("recovery phrase rejected")
		return fmt.Errorf("%w: %w", ErrIncorrectRecoveryPhrase, err)
	case err != nil:
		return fmt.Errorf("open recovery key: %w", err)
	}
	defer masterKey.Wipe()

	if err = ctx.Err(); err != nil {
		return err
	}

	if err = f.keys.Install(ctx, masterKey); err != nil {
		return fmt.Errorf("persist recovered master key: %w", err)
	}

	err = f.keys.WithKey(func(live crypto.EncryptionKey) error {
		if subtle.ConstantTimeCompare(live, masterKey) != 1 {
			return ErrRestoreUnverified
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("confirm recovered master key: %w", err)
	}

	f.keys.SetHasRecoveryKey(ctx, true)
	f.clearWords()
	f.done = true
	f.logger.Info().Msg("master key restored from recovery phrase")
	return nil
}

// Cancel clears every input. It does not undo a successful restore.
func (f *RestoreFlow) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clearWords()
}

// Close releases the inputs when the restore screen goes away.
func (f *RestoreFlow) Close() {
	f.Cancel()
}

func (f *RestoreFlow) setWord(i int, w string) {
	if f.words[i] != nil {
		f.words[i].Destroy()
		f.words[i] = nil
	}
	if w != "" {
		f.words[i] = memguard.NewBufferFromBytes([]byte(w))
	}
}

func (f *RestoreFlow) word(i int) string {
	buf := f.words[i]
	if buf == nil || !buf.IsAlive() {
		return ""
	}
	return string(buf.Bytes())
}

func (f *RestoreFlow) wordList() []string {
	out := make([]string, len(f.words))
	for i := range f.words {
		out[i] = f.word(i)
	}
	return out
}

func (f *RestoreFlow) clearWords() {
	for i := range f.words {
		f.setWord(i, "")
	}
}
