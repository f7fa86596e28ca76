package service

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const TokenType = "Bearer"

// Claims 只帶 subject (email) 與時間欄位
type Claims struct {
	jwt.RegisteredClaims
}

// Tokens 以 RSA 金鑰對簽發與驗證 RS256 JWT
type Tokens struct {
	private *rsa.PrivateKey
	public  *rsa.PublicKey
	ttl     time.Duration
	now     func() time.Time
}

func NewTokens(private *rsa.PrivateKey, public *rsa.PublicKey, ttl time.Duration) *Tokens {
	return &Tokens{private: private, public: public, ttl: ttl, now: time.Now}
}

var readFile = os.ReadFile

// LoadTokens 讀取 PEM 金鑰，任一讀取或解析失敗都回傳錯誤
func LoadTokens(privatePath, publicPath string, ttl time.Duration) (*Tokens, error) {
	privPEM, err := readFile(privatePath)
	if err != nil {
		return nil, fmt.Errorf("讀取私鑰失敗: %w", err)
	}
	private, err := jwt.ParseRSAPrivateKeyFromPEM(privPEM)
	if err != nil {
		return nil, fmt.Errorf("解析私鑰失敗: %w", err)
	}
	pubPEM, err := readFile(publicPath)
	if err != nil {
		return nil, fmt.Errorf("讀取公鑰失敗: %w", err)
	}
	public, err := jwt.ParseRSAPublicKeyFromPEM(pubPEM)
	if err != nil {
		return nil, fmt.Errorf("解析公鑰失敗: %w", err)
	}
	return NewTokens(private, public, ttl), nil
}

// Issue 簽發 token，回傳 token 與到期時間
func (t *Tokens) Issue(subject string) (string, time.Time, error) {
	now := t.now()
	expires := now.Add(t.ttl)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(t.private)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expires, nil
}

// Verify 驗證簽章與到期時間，只接受 RS256
func (t *Tokens) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return t.public, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// GenerateKeyPair 產生 PKCS#8 私鑰與 PKIX 公鑰 (PEM)
func GenerateKeyPair(bits int) (privatePEM, publicPEM []byte, err error) {
	key, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, nil, err
	}
	privDER, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, nil, err
	}
	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return nil, nil, err
	}
	privatePEM = pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: privDER})
	publicPEM = pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})
	return privatePEM, publicPEM, nil
}
