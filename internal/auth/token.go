/* 관리자 JWT 토큰 생성 및 검증 */

package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenIssuer  = "cardserv-api"
	tokenSubject = "admin_auth_token"
	tokenTTL     = 24 * time.Hour
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Claims 구조체, JWT 페이로드에 사용자명 포함
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenIssuer checks the single admin account and signs tokens for it.
type TokenIssuer struct {
	key          []byte
	username     string
	passwordHash []byte
	now          func() time.Time
}

func NewTokenIssuer(secret, username, passwordHash string) *TokenIssuer {
	return &TokenIssuer{
		key:          []byte(secret),
		username:     username,
		passwordHash: []byte(passwordHash),
		now:          time.Now,
	}
}

// HashPassword is used by the CLI to produce ADMIN_PASSWORD_HASH values.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (i *TokenIssuer) CheckCredentials(username, password string) error {
	if username == "" || password == "" || username != i.username {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(i.passwordHash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// JWT 토큰 생성
func (i *TokenIssuer) GenerateToken(username string) (string, error) {
	now := i.now()
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   tokenSubject,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.key)
}

// JWT 토큰 검증
func (i *TokenIssuer) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return i.key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if claims.Username != i.username {
		return nil, ErrInvalidCredentials
	}
	return claims, nil
}
