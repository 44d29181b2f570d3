package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("demopassword")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "demopassword" {
		t.Fatal("password stored in the clear")
	}
	if !CheckPasswordHash("demopassword", hash) {
		t.Error("expected matching password to verify")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("expected wrong password to fail")
	}
}

func TestGenerateJWT_Roundtrip(t *testing.T) {
	JwtSecret = []byte("test-secret")

	tokenString, err := GenerateJWT("USR-1A2B3C4D", "ngo@example.com", "ngo", "Helping Hands", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return JwtSecret, nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("expected token to parse and validate: %v", err)
	}

	if claims.UserID != "USR-1A2B3C4D" || claims.UserType != "ngo" || claims.OrgName != "Helping Hands" {
		t.Errorf("claims not carried through: %+v", claims)
	}
	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) > time.Hour {
		t.Errorf("unexpected expiry: %v", claims.ExpiresAt)
	}
}
