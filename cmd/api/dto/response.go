package dto

// ErrorResponseDTO는 공통 에러 응답 형식을 통일하기 위한 DTO이다.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"No available seat!"`
}

// MessageResponseDTO는 단순 메시지 응답 형식을 통일하기 위한 DTO이다.
type MessageResponseDTO struct {
	Message string `json:"message" example:"Order successfully made!"`
}

// HealthResponseDTO 는 /health 응답이다. 각 의존성은 "ok" 또는 에러 문자열이다.
type HealthResponseDTO struct {
	Status   string `json:"status" example:"ok"`
	Postgres string `json:"postgres" example:"ok"`
	Mongo    string `json:"mongo" example:"ok"`
}
