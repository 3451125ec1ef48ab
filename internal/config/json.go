package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of [StructuredConfig].
type StructuredJSONConfig struct {
	App struct {
		PasswordHashKey string   `json:"password_hash_key"`
		TokenSignKey    string   `json:"token_sign_key"`
		TokenIssuer     string   `json:"token_issuer"`
		TokenDuration   Duration `json:"token_duration"`
		Version         string   `json:"version"`
	} `json:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db"`
		Local struct {
			DSN string `json:"dsn"`
		} `json:"local"`
	} `json:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter"`

	SecureStore struct {
		ServiceName  string `json:"service_name"`
		Backend      string `json:"backend"`
		FileDir      string `json:"file_dir"`
		FilePassword string `json:"file_password"`
	} `json:"secure_store"`

	Interceptor struct {
		AllowPlaintextWithoutKey bool   `json:"allow_plaintext_without_key"`
		LegacyPlaintextFallback  bool   `json:"legacy_plaintext_fallback"`
		UnreadablePlaceholder    string `json:"unreadable_placeholder"`
	} `json:"interceptor"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			PasswordHashKey: j.App.PasswordHashKey,
			TokenSignKey:    j.App.TokenSignKey,
			TokenIssuer:     j.App.TokenIssuer,
			TokenDuration:   time.Duration(j.App.TokenDuration),
			Version:         j.App.Version,
		},
		Storage: Storage{
			DB:    DB{DSN: j.Storage.DB.DSN},
			Local: Local{DSN: j.Storage.Local.DSN},
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    j.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
		},
		SecureStore: SecureStore{
			ServiceName:  j.SecureStore.ServiceName,
			Backend:      j.SecureStore.Backend,
			FileDir:      j.SecureStore.FileDir,
			FilePassword: j.SecureStore.FilePassword,
		},
		Interceptor: Interceptor{
			AllowPlaintextWithoutKey: j.Interceptor.AllowPlaintextWithoutKey,
			LegacyPlaintextFallback:  j.Interceptor.LegacyPlaintextFallback,
			UnreadablePlaceholder:    j.Interceptor.UnreadablePlaceholder,
		},
	}, nil
}

// Duration is a time.Duration that unmarshals from "1h"-style strings or
// from nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
