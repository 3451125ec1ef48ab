package recovery_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-zk-vault/internal/crypto"
	"github.com/MKhiriev/go-zk-vault/internal/keystore"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/mock"
	"github.com/MKhiriev/go-zk-vault/internal/recovery"
	"github.com/MKhiriev/go-zk-vault/models"
)

func answersFor(words []string, positions []int) map[int]string {
	answers := make(map[int]string, len(positions))
	for _, pos := range positions {
		answers[pos] = words[pos-1]
	}
	return answers
}

func TestSetupFlow_HappyPath(t *testing.T) {
	ctx := context.Background()
	kc := newKeychain()
	dev, mk := readyDevice(t, kc)
	blobs := &memBlobs{}

	flow := recovery.NewSetupFlow(kc, dev.keys, blobs, logger.Nop())
	assert.Equal(t, recovery.StepIntro, flow.Step())

	words, err := flow.Start()
	require.NoError(t, err)
	require.Len(t, words, crypto.MnemonicWords)
	assert.Equal(t, recovery.StepDisplay, flow.Step())
	assert.Equal(t, words, flow.Words())
	for _, w := range words {
		assert.True(t, crypto.IsMnemonicWord(w), w)
	}

	positions, err := flow.BeginVerification()
	require.NoError(t, err)
	require.Len(t, positions, recovery.VerifyWordCount)
	assert.Equal(t, recovery.StepVerify, flow.Step())

	answers := answersFor(words, positions)
	for pos, w := range answers {
		answers[pos] = "  " + strings.ToUpper(w) + " "
	}
	require.NoError(t, flow.Verify(ctx, answers))

	assert.Equal(t, recovery.StepSuccess, flow.Step())
	assert.Nil(t, flow.Words(), "phrase must be gone after success")
	assert.True(t, dev.keys.HasRecoveryKey())
	assert.Equal(t, 1, blobs.puts)

	require.NotNil(t, blobs.key.RecoveryBlob)
	blob := *blobs.key.RecoveryBlob
	assert.True(t, kc.IsEncrypted(blob))
	assert.NotContains(t, blob, words[0])

	// the uploaded blob opens with the phrase and yields the live key
	wk, err := kc.DeriveKeyFromMnemonic(strings.Join(words, " "))
	require.NoError(t, err)
	got, err := kc.UnwrapMasterKey(models.WrappedMasterKey{EncryptedKey: blob, Version: blobs.key.Version}, wk)
	require.NoError(t, err)
	assert.Equal(t, mk, got)

	// Cancel after success keeps the outcome
	flow.Cancel()
	assert.Equal(t, recovery.StepSuccess, flow.Step())
}

func TestSetupFlow_VerificationPositions(t *testing.T) {
	kc := newKeychain()
	dev, _ := readyDevice(t, kc)
	flow := recovery.NewSetupFlow(kc, dev.keys, &memBlobs{}, logger.Nop())
	defer flow.Close()

	_, err := flow.Start()
	require.NoError(t, err)

	for range 50 {
		positions, err := flow.BeginVerification()
		require.NoError(t, err)

		require.Len(t, positions, recovery.VerifyWordCount)
		for i, pos := range positions {
			assert.GreaterOrEqual(t, pos, 1)
			assert.LessOrEqual(t, pos, crypto.MnemonicWords)
			if i > 0 {
				assert.Greater(t, pos, positions[i-1], "positions must be distinct and ascending")
			}
		}
		require.NoError(t, flow.ShowWordsAgain())
	}
}

func TestSetupFlow_Mismatch(t *testing.T) {
	kc := newKeychain()
	dev, _ := readyDevice(t, kc)
	blobs := &memBlobs{}
	flow := recovery.NewSetupFlow(kc, dev.keys, blobs, logger.Nop())
	defer flow.Close()

	words, err := flow.Start()
	require.NoError(t, err)
	positions, err := flow.BeginVerification()
	require.NoError(t, err)

	answers := answersFor(words, positions)
	answers[positions[1]] = "notaword"

	err = flow.Verify(context.Background(), answers)
	require.ErrorIs(t, err, recovery.ErrVerificationMismatch)

	assert.Equal(t, recovery.StepVerify, flow.Step())
	assert.Zero(t, blobs.puts)
	assert.False(t, dev.keys.HasRecoveryKey())

	t.Run("missing answer", func(t *testing.T) {
		answers := answersFor(words, positions)
		delete(answers, positions[0])
		require.ErrorIs(t, flow.Verify(context.Background(), answers), recovery.ErrVerificationMismatch)
	})

	t.Run("retry succeeds", func(t *testing.T) {
		require.NoError(t, flow.Verify(context.Background(), answersFor(words, positions)))
		assert.Equal(t, 1, blobs.puts)
	})
}

func TestSetupFlow_UploadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	kc := newKeychain()
	dev, _ := readyDevice(t, kc)

	blobs := mock.NewMockBlobStore(ctrl)
	blobs.EXPECT().PutRecoveryKey(gomock.Any(), gomock.Any()).Return(errors.New("503 service unavailable"))

	flow := recovery.NewSetupFlow(kc, dev.keys, blobs, logger.Nop())
	defer flow.Close()

	words, err := flow.Start()
	require.NoError(t, err)
	positions, err := flow.BeginVerification()
	require.NoError(t, err)

	err = flow.Verify(context.Background(), answersFor(words, positions))
	require.Error(t, err)

	assert.Equal(t, recovery.StepVerify, flow.Step(), "user can retry")
	assert.Equal(t, words, flow.Words())
	assert.False(t, dev.keys.HasRecoveryKey())
}

func TestSetupFlow_NoLiveKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	kc := newKeychain()

	// no expectations: nothing may be uploaded
	blobs := mock.NewMockBlobStore(ctrl)
	flow := recovery.NewSetupFlow(kc, newDevice().keys, blobs, logger.Nop())
	defer flow.Close()

	words, err := flow.Start()
	require.NoError(t, err)
	positions, err := flow.BeginVerification()
	require.NoError(t, err)

	err = flow.Verify(context.Background(), answersFor(words, positions))
	require.ErrorIs(t, err, keystore.ErrNoKeyAvailable)
}

func TestSetupFlow_CanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	kc := newKeychain()
	dev, _ := readyDevice(t, kc)
	blobs := mock.NewMockBlobStore(ctrl)

	flow := recovery.NewSetupFlow(kc, dev.keys, blobs, logger.Nop())
	defer flow.Close()

	words, err := flow.Start()
	require.NoError(t, err)
	positions, err := flow.BeginVerification()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, flow.Verify(ctx, answersFor(words, positions)), context.Canceled)
}

func TestSetupFlow_Cancel(t *testing.T) {
	kc := newKeychain()
	dev, _ := readyDevice(t, kc)
	blobs := &memBlobs{}
	flow := recovery.NewSetupFlow(kc, dev.keys, blobs, logger.Nop())

	_, err := flow.Start()
	require.NoError(t, err)

	flow.Cancel()
	assert.Equal(t, recovery.StepCanceled, flow.Step())
	assert.Nil(t, flow.Words())
	assert.Zero(t, blobs.puts)

	_, err = flow.Start()
	assert.ErrorIs(t, err, recovery.ErrInvalidStep)
}

func TestSetupFlow_StepGuards(t *testing.T) {
	kc := newKeychain()
	dev, _ := readyDevice(t, kc)
	flow := recovery.NewSetupFlow(kc, dev.keys, &memBlobs{}, logger.Nop())
	defer flow.Close()

	_, err := flow.BeginVerification()
	assert.ErrorIs(t, err, recovery.ErrInvalidStep)
	assert.ErrorIs(t, flow.Verify(context.Background(), nil), recovery.ErrInvalidStep)
	assert.ErrorIs(t, flow.ShowWordsAgain(), recovery.ErrInvalidStep)
	assert.Nil(t, flow.Words())

	first, err := flow.Start()
	require.NoError(t, err)
	second, err := flow.Start()
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "Start from display regenerates the phrase")
}

func TestSetupFlow_GenerateError(t *testing.T) {
	ctrl := gomock.NewController(t)
	kc := mock.NewMockKeyChainService(ctrl)
	kc.EXPECT().GenerateRecoveryMnemonic().Return("", errors.New("entropy source closed"))

	flow := recovery.NewSetupFlow(kc, newDevice().keys, &memBlobs{}, logger.Nop())
	_, err := flow.Start()
	require.Error(t, err)
	assert.Equal(t, recovery.StepIntro, flow.Step())
}

func TestSetupStep_String(t *testing.T) {
	assert.Equal(t, "intro", recovery.StepIntro.String())
	assert.Equal(t, "display", recovery.StepDisplay.String())
	assert.Equal(t, "verify", recovery.StepVerify.String())
	assert.Equal(t, "success", recovery.StepSuccess.String())
	assert.Equal(t, "canceled", recovery.StepCanceled.String())
	assert.Equal(t, "SetupStep(42)", recovery.SetupStep(42).String())
}
