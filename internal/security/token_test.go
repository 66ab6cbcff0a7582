package security

import (
	"testing"
)

const testSecret = "this_is_a_test_secret_key_with_32_chars_minimum"

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := GenerateJWT(42, RoleAdmin, testSecret)
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}
	if token == "" {
		t.Fatal("GenerateJWT() returned empty token")
	}

	claims, err := ValidateJWT(token, testSecret)
	if err != nil {
		t.Fatalf("ValidateJWT() error = %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Role != RoleAdmin {
		t.Errorf("Role = %q, want %q", claims.Role, RoleAdmin)
	}
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT(42, RoleAdmin, testSecret)
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	if _, err := ValidateJWT(token, "a_completely_different_secret_of_32_chars"); err == nil {
		t.Error("ValidateJWT() accepted token signed with another secret")
	}
}

func TestValidateJWT_Garbage(t *testing.T) {
	if _, err := ValidateJWT("not.a.token", testSecret); err == nil {
		t.Error("ValidateJWT() accepted garbage input")
	}
}
