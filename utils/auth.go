// utils/auth.go
package utils

import (
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// SessionCookie carries the dashboard session token.
const SessionCookie = "auth_session"

// CheckAccessCode compares a submitted access code with the configured one,
// which may be stored either as a bcrypt hash or in plain text.
func CheckAccessCode(code, configured string) bool {
	if code == "" || configured == "" {
		return false
	}
	if strings.HasPrefix(configured, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(configured), []byte(code)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(code), []byte(configured)) == 1
}

// Generate JWT token
func GenerateToken(subject, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("JWT_SECRET not set")
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": now.Add(ttl).Unix(),
		"iat": now.Unix(),
	})
	return token.SignedString([]byte(secret))
}

// ParseToken validates a token and returns its subject.
func ParseToken(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}
	return token.Claims.GetSubject()
}

// Auth middleware
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, _ := c.Cookie(SessionCookie)
		if header := c.GetHeader("Authorization"); header != "" {
			tokenString = header
			if len(header) > 7 && strings.ToUpper(header[0:6]) == "BEARER" {
				tokenString = header[7:]
			}
		}
		if tokenString == "" {
			RespondWithError(c, 401, "Authorization required")
			return
		}

		subject, err := ParseToken(tokenString, secret)
		if err != nil {
			RespondWithError(c, 401, "Invalid token")
			return
		}

		c.Set("session", subject)
		c.Next()
	}
}
