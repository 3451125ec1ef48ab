package utils

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", 123, time.Hour, "secret-key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.UserID != 123 {
		t.Errorf("expected UserID 123, got %d", token.UserID)
	}

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("expected issuer test-issuer, got %s", claims.Issuer)
	}
	if claims.Subject != "123" {
		t.Errorf("expected subject '123', got %s", claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"negative duration", "iss", -time.Second, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key)
			if !errors.Is(err, ErrInvalidJWTParams) {
				t.Errorf("expected ErrInvalidJWTParams, got %v", err)
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	gen, err := GenerateJWTToken("test-issuer", 456, 5*time.Minute, "secret-key")
	if err != nil {
		t.Fatal(err)
	}

	parsed, err := ValidateAndParseJWTToken(gen.SignedString, "secret-key", "test-issuer")
	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsed.UserID != 456 {
		t.Errorf("expected userID 456, got %d", parsed.UserID)
	}
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	valid, err := GenerateJWTToken("real-issuer", 1, time.Hour, "key")
	if err != nil {
		t.Fatal(err)
	}

	expiredClaims := jwt.RegisteredClaims{
		Issuer:    "real-issuer",
		Subject:   strconv.Itoa(1),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims).SignedString([]byte("key"))
	if err != nil {
		t.Fatal(err)
	}

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Issuer: "real-issuer", Subject: "1"}).SignedString([]byte("key"))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
		target error
	}{
		{"wrong key", valid.SignedString, "other-key", "real-issuer", jwt.ErrTokenSignatureInvalid},
		{"wrong issuer", valid.SignedString, "key", "fake-issuer", jwt.ErrTokenInvalidIssuer},
		{"expired", expired, "key", "real-issuer", jwt.ErrTokenExpired},
		{"no expiry", noExpiry, "key", "real-issuer", jwt.ErrTokenRequiredClaimMissing},
		{"malformed", "not.a.token", "key", "real-issuer", jwt.ErrTokenMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			if !errors.Is(err, tt.target) {
				t.Errorf("expected %v, got %v", tt.target, err)
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", true},
		{"bearer abc", "abc", true},
		{"  Bearer   abc  ", "abc", true},
		{"Bearer", "", false},
		{"Bearer ", "", false},
		{"Basic abc", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, err := ParseBearerToken(tt.header)
		if tt.ok && (err != nil || got != tt.want) {
			t.Errorf("ParseBearerToken(%q) = %q, %v; want %q", tt.header, got, err, tt.want)
		}
		if !tt.ok && !errors.Is(err, ErrInvalidAuthorizationValue) {
			t.Errorf("ParseBearerToken(%q) expected error, got %q", tt.header, got)
		}
	}
}

func TestParseUserIDFromJWT(t *testing.T) {
	gen, err := GenerateJWTToken("iss", 99, time.Hour, "key")
	if err != nil {
		t.Fatal(err)
	}

	id, err := ParseUserIDFromJWT(gen.SignedString)
	if err != nil || id != 99 {
		t.Fatalf("expected 99, got %d (%v)", id, err)
	}

	if _, err = ParseUserIDFromJWT("garbage"); err == nil {
		t.Error("expected error for garbage token")
	}
}
