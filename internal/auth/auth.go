// server/internal/auth/auth.go
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// JWTClaims defines the payload for the JWT.
type JWTClaims struct {
	UserID   string `json:"userID"`
	Email    string `json:"email"`
	UserType string `json:"userType"` // "hotel" or "ngo"
	OrgName  string `json:"orgName"`  // businessName / organizationName
	jwt.RegisteredClaims
}

// Hashing
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// JwtSecret is assigned from config at startup, before the router is built.
var JwtSecret []byte

// GenerateJWT issues an HS256 token carrying the caller's identity and
// account type.
func GenerateJWT(userID, email, userType, orgName string, lifetime time.Duration) (string, error) {
	claims := &JWTClaims{
		UserID:   userID,
		Email:    email,
		UserType: userType,
		OrgName:  orgName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(lifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JwtSecret)
}
