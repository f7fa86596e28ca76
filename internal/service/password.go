// File: internal/service/password.go
package service

import (
	"errors"

	"focusflow/internal/model"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials 帳號不存在或密碼錯誤，兩者不區分
var ErrInvalidCredentials = errors.New("incorrect email or password")

// 測試可覆寫
var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

// HashPassword 接收明文密碼，回傳 bcrypt 哈希字串 (每次 salt 不同)
func HashPassword(password string) (string, error) {
	hashBytes, err := bcryptGenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// ComparePassword 比對明文密碼與 bcrypt 哈希，成功回傳 nil
func ComparePassword(hash, password string) error {
	return bcryptCompareHashAndPassword([]byte(hash), []byte(password))
}

// AuthenticateUser 驗證使用者密碼
func AuthenticateUser(user *model.User, password string) error {
	if user == nil || user.HashedPassword == "" {
		return ErrInvalidCredentials
	}
	if err := ComparePassword(user.HashedPassword, password); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
