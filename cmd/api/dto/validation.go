package dto

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// flightNumberPattern: 항공사 코드 2자리 + 편명 1~4자리 (+선택 접미 문자). 예: KE123, OZ1085, 7C1101A
var flightNumberPattern = regexp.MustCompile(`^[A-Z0-9]{2}[0-9]{1,4}[A-Z]?$`)

// RegisterValidators 는 요청 DTO 에서 쓰는 커스텀 binding 규칙을 등록한다.
//   - flightno: 항공편 번호 형식
//   - boa: "before" / "after" (대소문자 무시)
func RegisterValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("flightno", func(fl validator.FieldLevel) bool {
		return flightNumberPattern.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("boa", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "before", "after":
			return true
		}
		return false
	})
}
