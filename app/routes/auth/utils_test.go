package auth

import (
	"testing"
	"time"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret-password" {
		t.Fatal("password stored in plaintext")
	}
	if !CheckPasswordHash("s3cret-password", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Error("wrong password accepted")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("user-123", "staff")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Errorf("UserID = %q, want %q", claims.UserID, "user-123")
	}
	if claims.Role != "staff" {
		t.Errorf("Role = %q, want %q", claims.Role, "staff")
	}
}

func TestJWTTamperedTokenRejected(t *testing.T) {
	token, err := GenerateJWT("user-123", "student")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	// flip a character in the signature segment
	tampered := token[:len(token)-2] + "xx"
	if _, err := ValidateJWT(tampered); err == nil {
		t.Error("tampered token accepted")
	}
}

func TestSessionExpiryInFuture(t *testing.T) {
	expires := SessionExpiry()
	if !expires.After(time.Now()) {
		t.Errorf("session expiry %v is not in the future", expires)
	}
}

func TestGenerateSessionIDUnique(t *testing.T) {
	a := GenerateSessionID()
	b := GenerateSessionID()
	if a == "" || a == b {
		t.Errorf("session ids not unique: %q, %q", a, b)
	}
}
