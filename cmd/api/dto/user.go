package dto

import (
	"time"

	"flight-booking/models"
)

// UserDTO 는 관리자 화면/내 정보 응답이다. 비밀번호는 포함하지 않는다.
type UserDTO struct {
	ID          int64     `json:"id" example:"1"`
	Username    string    `json:"username" example:"alice"`
	IsSuperuser bool      `json:"is_superuser" example:"false"`
	FirstName   string    `json:"first_name" example:"Alice"`
	LastName    string    `json:"last_name" example:"Kim"`
	PhoneNumber string    `json:"phone_number" example:"010-1234-5678"`
	IsActive    bool      `json:"is_active" example:"true"`
	DateJoined  time.Time `json:"date_joined" example:"2026-01-01T12:00:00Z"`
}

func NewUserDTO(u models.User) UserDTO {
	return UserDTO{
		ID:          u.ID,
		Username:    u.Username,
		IsSuperuser: u.IsSuperuser,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		PhoneNumber: u.PhoneNumber,
		IsActive:    u.IsActive,
		DateJoined:  u.DateJoined,
	}
}

// PublicUserDTO 는 /users/{username} 응답이다. id 와 비밀번호는 노출하지 않는다.
type PublicUserDTO struct {
	Username    string    `json:"username" example:"alice"`
	IsSuperuser bool      `json:"is_superuser" example:"false"`
	FirstName   string    `json:"first_name" example:"Alice"`
	LastName    string    `json:"last_name" example:"Kim"`
	PhoneNumber string    `json:"phone_number" example:"010-1234-5678"`
	IsActive    bool      `json:"is_active" example:"true"`
	DateJoined  time.Time `json:"date_joined" example:"2026-01-01T12:00:00Z"`
}

func NewPublicUserDTO(u models.User) PublicUserDTO {
	return PublicUserDTO{
		Username:    u.Username,
		IsSuperuser: u.IsSuperuser,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		PhoneNumber: u.PhoneNumber,
		IsActive:    u.IsActive,
		DateJoined:  u.DateJoined,
	}
}

// RegisterRequest 는 회원 가입 요청이다. 필수 값 검증 메시지는 서비스가 만든다.
type RegisterRequest struct {
	Username    string `json:"username" form:"username" example:"alice"`
	Password    string `json:"password" form:"password" example:"p@ssw0rd"`
	FirstName   string `json:"first_name" form:"first_name" example:"Alice"`
	LastName    string `json:"last_name" form:"last_name" example:"Kim"`
	PhoneNumber string `json:"phone_number" form:"phone_number" example:"010-1234-5678"`
}

// AdminAddUserRequest 는 관리자 화면의 사용자 추가 요청이다.
type AdminAddUserRequest struct {
	RegisterRequest
	IsSuperuser bool `json:"is_superuser" form:"is_superuser" example:"false"`
}

type LoginRequest struct {
	Username string `json:"username" form:"username" example:"alice"`
	Password string `json:"password" form:"password" example:"p@ssw0rd"`
}

// LoginResponseDTO 는 로그인 성공 응답이다. 세션 쿠키도 함께 설정된다.
type LoginResponseDTO struct {
	Message     string    `json:"message" example:"Welcome, alice!"`
	Admin       bool      `json:"admin" example:"false"`
	AccessToken string    `json:"access_token" example:"eyJhbGciOi..."`
	TokenType   string    `json:"token_type" example:"Bearer"`
	ExpiresAt   time.Time `json:"expires_at" example:"2026-01-02T12:00:00Z"`
}

type UpdateInfoRequest struct {
	Username       string `json:"username" form:"username" example:"alice"`
	Password       string `json:"password" form:"password" example:"n3w-p@ss"`
	PasswordRepeat string `json:"password_repeat" form:"password_repeat" example:"n3w-p@ss"`
	FirstName      string `json:"first_name" form:"first_name" example:"Alice"`
	LastName       string `json:"last_name" form:"last_name" example:"Kim"`
	PhoneNumber    string `json:"phone_number" form:"phone_number" example:"010-1234-5678"`
}

// UserFilterQuery 는 관리자 사용자 검색 쿼리다. is_active 는 "true"/"false".
type UserFilterQuery struct {
	Username  string `form:"username"`
	FirstName string `form:"first_name"`
	LastName  string `form:"last_name"`
	IsActive  string `form:"is_active" binding:"omitempty,oneof=true false"`
}
