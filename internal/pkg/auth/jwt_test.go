package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/rawad/acadex/internal/app/models"
)

func testService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "acadex.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testService(time.Hour)
	user := &models.User{ID: 42, Username: "amal", Role: models.RoleDoctor}

	token, expiresIn, err := svc.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken() returned an empty token")
	}
	if expiresIn != int(time.Hour.Seconds()) {
		t.Errorf("expiresIn = %d, want %d", expiresIn, int(time.Hour.Seconds()))
	}

	claims, err := svc.ValidateAndExtractClaims(token)
	if err != nil {
		t.Fatalf("ValidateAndExtractClaims() error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("claims.UserID = %d, want 42", claims.UserID)
	}
	if claims.Username != "amal" {
		t.Errorf("claims.Username = %q, want amal", claims.Username)
	}
	if claims.Role != string(models.RoleDoctor) {
		t.Errorf("claims.Role = %q, want %q", claims.Role, models.RoleDoctor)
	}
	if claims.Issuer != "acadex.test" {
		t.Errorf("claims.Issuer = %q, want acadex.test", claims.Issuer)
	}
}

func TestValidateToken_Expired(t *testing.T) {
	svc := testService(-time.Minute)
	user := &models.User{ID: 1, Username: "amal", Role: models.RoleStudent}

	token, _, err := svc.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("ValidateToken() error = %v, want ErrExpiredToken", err)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	user := &models.User{ID: 1, Username: "amal", Role: models.RoleStudent}
	token, _, err := testService(time.Hour).GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	other := NewJWTService(JWTConfig{
		SecretKey:      "different-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "acadex.test",
	})
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}

func TestValidateAndExtractClaims_Empty(t *testing.T) {
	svc := testService(time.Hour)
	if _, err := svc.ValidateAndExtractClaims(""); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("error = %v, want ErrInvalidToken", err)
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := testService(time.Hour)
	if _, err := svc.ValidateToken("not.a.token"); err == nil {
		t.Error("expected an error for a malformed token")
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer prefix", header: "Bearer abc123", want: "abc123"},
		{name: "bare token", header: "abc123", want: "abc123"},
		{name: "empty header", header: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tc.header)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractBearerToken() error: %v", err)
			}
			if got != tc.want {
				t.Errorf("ExtractBearerToken() = %q, want %q", got, tc.want)
			}
		})
	}
}
