package crypto

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/tyler-smith/go-bip39"
)

const (
	// MnemonicWords is the length of a recovery phrase.
	MnemonicWords = 24

	mnemonicEntropyBits = 256
	recoverySalt        = "go-zk-vault/recovery-key/v1"
)

var (
	wordIndexOnce sync.Once
	wordIndex     map[string]struct{}
)

// GenerateRecoveryMnemonic implements [KeyChainService].
func (k *keyChainService) GenerateRecoveryMnemonic() (string, error) {
	entropy := make([]byte, mnemonicEntropyBits/8)
	if _, err := io.ReadFull(k.random, entropy); err != nil {
		return "", fmt.Errorf("generate mnemonic entropy: %w", err)
	}
	defer clear(entropy)

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("encode mnemonic: %w", err)
	}
	return mnemonic, nil
}

// DeriveKeyFromMnemonic implements [KeyChainService]. Only the word count is
// validated: a phrase with a wrong word still derives a key, and the wrong
// key is then rejected by the AEAD when the recovery blob is opened.
func (k *keyChainService) DeriveKeyFromMnemonic(mnemonic string) (EncryptionKey, error) {
	normalized := NormalizeMnemonic(mnemonic)
	if n := len(strings.Fields(normalized)); n != MnemonicWords {
		return nil, fmt.Errorf("%w: got %d words, want %d", ErrInvalidMnemonic, n, MnemonicWords)
	}
	return k.DeriveKey(normalized, Salt(recoverySalt))
}

// NormalizeMnemonic lowercases the phrase and collapses all whitespace to
// single spaces, so a re-typed phrase derives the same key.
func NormalizeMnemonic(mnemonic string) string {
	return strings.Join(strings.Fields(strings.ToLower(mnemonic)), " ")
}

// IsMnemonicWord reports whether w is in the BIP-39 English wordlist.
// UIs use it to flag typos before the phrase is submitted.
func IsMnemonicWord(w string) bool {
	wordIndexOnce.Do(func() {
		list := bip39.GetWordList()
		wordIndex = make(map[string]struct{}, len(list))
		for _, word := range list {
			wordIndex[word] = struct{}{}
		}
	})
	_, ok := wordIndex[strings.ToLower(strings.TrimSpace(w))]
	return ok
}
