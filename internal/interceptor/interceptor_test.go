package interceptor

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rcrowley/go-metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-zk-vault/internal/config"
	"github.com/MKhiriev/go-zk-vault/internal/crypto"
	"github.com/MKhiriev/go-zk-vault/internal/keystore"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/registry"
	"github.com/MKhiriev/go-zk-vault/internal/securestore"
)

type staticKeys struct {
	key crypto.EncryptionKey
	err error
}

func (s staticKeys) EncryptionKey() (crypto.EncryptionKey, error) {
	if s.err != nil {
		return nil, s.err
	}
	return append(crypto.EncryptionKey(nil), s.key...), nil
}

type fixture struct {
	ic      *Interceptor
	kc      crypto.KeyChainService
	key     crypto.EncryptionKey
	metrics metrics.Registry
}

func testRegistry() *registry.Registry {
	return registry.MustNew(
		registry.FieldEncryptionConfig{Pattern: "/api/auth/*", Skip: true},
		registry.FieldEncryptionConfig{Pattern: "/api/tasks", Fields: []string{"title", "description"}},
		registry.FieldEncryptionConfig{Pattern: "/api/tasks/:id", Fields: []string{"title", "description"}},
		registry.FieldEncryptionConfig{
			Pattern: "/api/sprints/:id/overview",
			Fields:  []string{"sprint.title", "tasks[].title", "tasks[].comments[].body"},
		},
	)
}

func newFixture(t *testing.T, keys KeyProvider, policy Policy) fixture {
	t.Helper()
	kc := crypto.NewKeyChainService(crypto.WithKDFIterations(1000))
	m := metrics.NewRegistry()

	var key crypto.EncryptionKey
	if keys == nil {
		var err error
		key, err = kc.GenerateMasterKey()
		require.NoError(t, err)
		keys = staticKeys{key: key}
	}

	return fixture{
		ic:      New(testRegistry(), keys, kc, policy, logger.Nop(), WithMetricsRegistry(m)),
		kc:      kc,
		key:     key,
		metrics: m,
	}
}

func (f fixture) count(name string) int64 {
	return metrics.GetOrRegisterCounter(name, f.metrics).Count()
}

func decodeMap(t *testing.T, b []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	return m
}

// ── Outgoing ──

func TestEncryptRequestPayload_UnregisteredPathUnchanged(t *testing.T) {
	f := newFixture(t, nil, DefaultPolicy())
	body := []byte(`{"title":  "plain",   "id":7}`)

	for _, p := range []string{"/api/unknown", "/api/auth/login", "/api/tasks/1/comments"} {
		out, err := f.ic.EncryptRequestPayload(p, body)
		require.NoError(t, err)
		assert.Equal(t, body, out, p)
	}
}

func TestEncryptRequestPayload_OnlyNamedFields(t *testing.T) {
	f := newFixture(t, nil, DefaultPolicy())
	body := []byte(`{"id":12345678901234567890,"title":"Write <report> & send","description":"due friday","status":"open","sprintId":"s-1","createdAt":"2026-01-02T03:04:05Z","meta":{"title":"nested untouched"}}`)

	out, err := f.ic.EncryptRequestPayload("/api/tasks/42", body)
	require.NoError(t, err)

	got := decodeMap(t, out)
	assert.True(t, crypto.IsEncrypted(got["title"].(string)))
	assert.True(t, crypto.IsEncrypted(got["description"].(string)))
	assert.Equal(t, "open", got["status"])
	assert.Equal(t, "s-1", got["sprintId"])
	assert.Equal(t, "2026-01-02T03:04:05Z", got["createdAt"])
	assert.Equal(t, map[string]any{"title": "nested untouched"}, got["meta"])
	assert.Contains(t, string(out), `"id":12345678901234567890`)
	assert.Equal(t, int64(2), f.count("interceptor.fields.encrypted"))

	back, err := f.ic.DecryptResponsePayload("/api/tasks/42", out)
	require.NoError(t, err)
	assert.JSONEq(t, string(body), string(back))
	assert.Contains(t, string(back), `Write <report> & send`)
}

func TestEncryptRequestPayload_NestedPaths(t *testing.T) {
	f := newFixture(t, nil, DefaultPolicy())
	body := []byte(`{
		"sprint": {"id": 1, "title": "Sprint 12"},
		"tasks": [
			{"id": 10, "title": "A", "comments": [{"id": 100, "body": "first"}, {"id": 101, "body": ""}]},
			{"id": 11, "title": "B", "comments": []},
			{"id": 12, "comments": "not a list"},
			"not an object"
		]
	}`)

	out, err := f.ic.EncryptRequestPayload("/api/sprints/1/overview", body)
	require.NoError(t, err)

	got := decodeMap(t, out)
	sprint := got["sprint"].(map[string]any)
	assert.True(t, crypto.IsEncrypted(sprint["title"].(string)))
	assert.EqualValues(t, 1, sprint["id"])

	tasks := got["tasks"].([]any)
	t0 := tasks[0].(map[string]any)
	assert.True(t, crypto.IsEncrypted(t0["title"].(string)))
	assert.EqualValues(t, 10, t0["id"])
	comments := t0["comments"].([]any)
	assert.True(t, crypto.IsEncrypted(comments[0].(map[string]any)["body"].(string)))
	assert.Equal(t, "", comments[1].(map[string]any)["body"], "empty strings stay empty")
	assert.Equal(t, "not a list", tasks[2].(map[string]any)["comments"])
	assert.Equal(t, "not an object", tasks[3])

	back, err := f.ic.DecryptResponsePayload("/api/sprints/1/overview", out)
	require.NoError(t, err)
	assert.JSONEq(t, string(body), string(back))
}

func TestEncryptRequestPayload_TopLevelArray(t *testing.T) {
	f := newFixture(t, nil, DefaultPolicy())
	body := []byte(`[{"id":1,"title":"a"},{"id":2,"title":"b","description":"c"}]`)

	out, err := f.ic.EncryptRequestPayload("/api/tasks", body)
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(out, &got))
	for _, item := range got {
		assert.True(t, crypto.IsEncrypted(item["title"].(string)))
	}
	assert.Equal(t, int64(3), f.count("interceptor.fields.encrypted"))
}

func TestEncryptRequestPayload_AlreadyEncryptedLeftAsIs(t *testing.T) {
	f := newFixture(t, nil, DefaultPolicy())
	ct, err := f.kc.Encrypt("sealed earlier", f.key)
	require.NoError(t, err)

	body, err := json.Marshal(map[string]any{"title": ct, "description": "fresh"})
	require.NoError(t, err)

	out, err := f.ic.EncryptRequestPayload("/api/tasks", body)
	require.NoError(t, err)

	got := decodeMap(t, out)
	assert.Equal(t, ct, got["title"])
	assert.True(t, crypto.IsEncrypted(got["description"].(string)))
	assert.Equal(t, int64(1), f.count("interceptor.fields.already_encrypted"))
}

func TestEncryptRequestPayload_NoKeyBlocks(t *testing.T) {
	f := newFixture(t, staticKeys{err: keystore.ErrNoKeyAvailable}, DefaultPolicy())

	out, err := f.ic.EncryptRequestPayload("/api/tasks", []byte(`{"title":"secret plan"}`))
	assert.ErrorIs(t, err, keystore.ErrNoKeyAvailable)
	assert.Nil(t, out)
	assert.Equal(t, int64(1), f.count("interceptor.requests.blocked"))
}

func TestEncryptRequestPayload_NoKeySendPlaintextOptIn(t *testing.T) {
	policy := PolicyFromConfig(config.Interceptor{AllowPlaintextWithoutKey: true})
	f := newFixture(t, staticKeys{err: keystore.ErrNoKeyAvailable}, policy)
	body := []byte(`{"title":"secret plan"}`)

	out, err := f.ic.EncryptRequestPayload("/api/tasks", body)
	require.NoError(t, err)
	assert.Equal(t, body, out)
	assert.Equal(t, int64(1), f.count("interceptor.requests.plaintext_sent"))
}

func TestEncryptRequestPayload_NoEligibleFieldsNeedsNoKey(t *testing.T) {
	f := newFixture(t, staticKeys{err: keystore.ErrNoKeyAvailable}, DefaultPolicy())

	for _, body := range []string{`{"status":"done"}`, `{"title":""}`, `{"title":5}`, `[]`, ``, `not json`} {
		out, err := f.ic.EncryptRequestPayload("/api/tasks/1", []byte(body))
		require.NoError(t, err, body)
		assert.Equal(t, body, string(out))
	}
}

func TestEncryptRequestPayload_WithKeyStore(t *testing.T) {
	ctx := context.Background()
	kc := crypto.NewKeyChainService(crypto.WithKDFIterations(1000))
	ks := keystore.New(securestore.NewMemoryStore(), kc, nil, logger.Nop())
	ic := New(testRegistry(), ks, kc, DefaultPolicy(), logger.Nop(), WithMetricsRegistry(metrics.NewRegistry()))

	_, err := ic.EncryptRequestPayload("/api/tasks", []byte(`{"title":"x"}`))
	assert.ErrorIs(t, err, keystore.ErrNoKeyAvailable)

	mk, err := kc.GenerateMasterKey()
	require.NoError(t, err)
	require.NoError(t, ks.Install(ctx, mk))

	out, err := ic.EncryptRequestPayload("/api/tasks", []byte(`{"title":"x"}`))
	require.NoError(t, err)
	title := decodeMap(t, out)["title"].(string)
	plain, err := kc.Decrypt(title, mk)
	require.NoError(t, err)
	assert.Equal(t, "x", plain)

	require.NoError(t, ks.Clear(ctx))
	_, err = ic.EncryptRequestPayload("/api/tasks", []byte(`{"title":"x"}`))
	assert.ErrorIs(t, err, keystore.ErrNoKeyAvailable)
}

// ── Incoming ──

func TestDecryptResponsePayload_CorruptFieldDegrades(t *testing.T) {
	f := newFixture(t, nil, DefaultPolicy())
	good, err := f.kc.Encrypt("readable", f.key)
	require.NoError(t, err)
	otherKey, err := f.kc.GenerateMasterKey()
	require.NoError(t, err)
	foreign, err := f.kc.Encrypt("someone else's", otherKey)
	require.NoError(t, err)
	future := "v9" + strings.TrimPrefix(good, "v1")

	body, err := json.Marshal([]map[string]any{
		{"id": 1, "title": good},
		{"id": 2, "title": foreign},
		{"id": 3, "title": future, "description": good},
	})
	require.NoError(t, err)

	out, err := f.ic.DecryptResponsePayload("/api/tasks", body)
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, "readable", got[0]["title"])
	assert.Equal(t, DefaultUnreadablePlaceholder, got[1]["title"])
	assert.Equal(t, DefaultUnreadablePlaceholder, got[2]["title"])
	assert.Equal(t, "readable", got[2]["description"])
	assert.Equal(t, int64(2), f.count("interceptor.fields.unreadable"))
	assert.Equal(t, int64(2), f.count("interceptor.fields.decrypted"))
}

func TestDecryptResponsePayload_NoKeyGivesPlaceholders(t *testing.T) {
	kc := crypto.NewKeyChainService(crypto.WithKDFIterations(1000))
	key, err := kc.GenerateMasterKey()
	require.NoError(t, err)
	ct, err := kc.Encrypt("hidden", key)
	require.NoError(t, err)

	policy := DefaultPolicy()
	policy.UnreadablePlaceholder = "<locked>"
	f := newFixture(t, staticKeys{err: keystore.ErrNoKeyAvailable}, policy)

	body, err := json.Marshal(map[string]any{"id": 1, "title": ct})
	require.NoError(t, err)

	out, err := f.ic.DecryptResponsePayload("/api/tasks/1", body)
	require.NoError(t, err)
	assert.Equal(t, "<locked>", decodeMap(t, out)["title"])
}

func TestDecryptResponsePayload_LegacyPlaintextFallback(t *testing.T) {
	body := []byte(`{"id":1,"title":"written before encryption","description":""}`)

	strict := newFixture(t, nil, DefaultPolicy())
	out, err := strict.ic.DecryptResponsePayload("/api/tasks/1", body)
	require.NoError(t, err)
	got := decodeMap(t, out)
	assert.Equal(t, DefaultUnreadablePlaceholder, got["title"])
	assert.Equal(t, "", got["description"])

	lenient := newFixture(t, nil, PolicyFromConfig(config.Interceptor{LegacyPlaintextFallback: true}))
	out, err = lenient.ic.DecryptResponsePayload("/api/tasks/1", body)
	require.NoError(t, err)
	assert.Equal(t, body, out, "nothing replaced, original bytes returned")
	assert.Equal(t, int64(1), lenient.count("interceptor.fields.legacy_plaintext"))
}

func TestDecryptResponsePayload_Passthrough(t *testing.T) {
	f := newFixture(t, nil, DefaultPolicy())

	for _, tc := range []struct{ path, body string }{
		{"/api/unknown", `{"title":"v1:x:y"}`},
		{"/api/auth/login", `{"title":"plain"}`},
		{"/api/tasks", `not json`},
		{"/api/tasks", ``},
		{"/api/tasks", `{"other":"x"}`},
	} {
		out, err := f.ic.DecryptResponsePayload(tc.path, []byte(tc.body))
		require.NoError(t, err)
		assert.Equal(t, tc.body, string(out))
	}
}

func TestPolicy(t *testing.T) {
	p := DefaultPolicy()
	assert.Equal(t, NoKeyBlock, p.NoKey)
	assert.False(t, p.LegacyPlaintextFallback)
	assert.Equal(t, "block", p.NoKey.String())

	p = PolicyFromConfig(config.Interceptor{AllowPlaintextWithoutKey: true, UnreadablePlaceholder: "?"})
	assert.Equal(t, NoKeySendPlaintext, p.NoKey)
	assert.Equal(t, "send-plaintext", p.NoKey.String())
	assert.Equal(t, "?", p.UnreadablePlaceholder)

	ic := New(testRegistry(), staticKeys{}, nil, Policy{}, logger.Nop(), WithMetricsRegistry(metrics.NewRegistry()))
	assert.Equal(t, DefaultUnreadablePlaceholder, ic.Policy().UnreadablePlaceholder)
}
