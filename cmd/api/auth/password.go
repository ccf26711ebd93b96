package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword 는 평문 비밀번호를 bcrypt 해시로 변환한다.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword 는 hash 가 plain 과 일치하는지 확인한다. 불일치는 false, nil.
func CheckPassword(hash, plain string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
