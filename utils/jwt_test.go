package utils

import (
	"testing"
	"time"

	"intothestar/config"

	"github.com/golang-jwt/jwt"
)

func TestAdminTokenRoundTrip(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	tokenString, err := GenerateAdminToken("admin", time.Hour)
	if err != nil {
		t.Fatalf("GenerateAdminToken failed: %v", err)
	}

	role, err := ExtractRoleFromToken(tokenString)
	if err != nil {
		t.Fatalf("ExtractRoleFromToken failed: %v", err)
	}
	if role != "admin" {
		t.Fatalf("expected role admin, got %q", role)
	}

	token, err := ValidateToken(tokenString)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if claims["sub"] != "admin" {
		t.Fatalf("unexpected subject claim: %v", claims["sub"])
	}
	if claims["jti"] == "" {
		t.Fatal("token must carry a jti claim")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	tokenString, err := GenerateAdminToken("admin", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateAdminToken failed: %v", err)
	}
	if _, err := ExtractRoleFromToken(tokenString); err == nil {
		t.Fatal("expired token must not validate")
	}
}

func TestTokenSignedWithWrongSecretRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	tokenString, err := GenerateAdminToken("admin", time.Hour)
	if err != nil {
		t.Fatalf("GenerateAdminToken failed: %v", err)
	}

	config.AppConfig.JWTSecret = "a-different-secret"
	defer func() { config.AppConfig.JWTSecret = "test-secret" }()

	if _, err := ExtractRoleFromToken(tokenString); err == nil {
		t.Fatal("token signed with another secret must not validate")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	if _, err := ExtractRoleFromToken("not.a.token"); err == nil {
		t.Fatal("garbage token must not validate")
	}
}
