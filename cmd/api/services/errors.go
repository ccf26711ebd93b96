package services

import (
	"errors"
	"fmt"
)

// Kind 는 서비스 에러의 분류다. 핸들러는 Kind 로 HTTP 상태 코드를 정한다.
type Kind int

const (
	KindInvalid Kind = iota + 1
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	}
	return "unknown"
}

// Error 는 사용자에게 그대로 보여줄 수 있는 메시지를 가진 비즈니스 에러다.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is 는 같은 Kind/Message 를 가진 에러를 동일하게 취급한다.
// wrap 된 사본도 errors.Is(err, ErrNoAvailableSeat) 로 판별할 수 있다.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

// with 는 원인 에러를 붙인 사본을 만든다.
func (e *Error) with(cause error) *Error {
	return &Error{Kind: e.Kind, Message: e.Message, Err: cause}
}

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

var (
	ErrUsernameRequired   = newError(KindInvalid, "`Username` is required")
	ErrPasswordRequired   = newError(KindInvalid, "`Password` is required")
	ErrPasswordMismatch   = newError(KindInvalid, "'Password' wrongly repeated")
	ErrInvalidInput       = newError(KindInvalid, "Invalid input")
	ErrUsernameExists     = newError(KindConflict, "`Username` already existed")
	ErrInvalidCredentials = newError(KindUnauthorized, "Invalid username/password")
	ErrLoginRequired      = newError(KindUnauthorized, "Login required")
	ErrAdminRequired      = newError(KindForbidden, "Administrator privileges required")
	ErrUserNotFound       = newError(KindNotFound, "Requested user does not exist")
	ErrFlightNotFound     = newError(KindNotFound, "Requested flight does not exist")
	ErrOrderNotFound      = newError(KindNotFound, "Requested order does not exist")
	ErrNoAvailableSeat    = newError(KindConflict, "No available seat!")
	ErrAlreadyOrdered     = newError(KindConflict, "You have already ordered this flight")
	ErrSeatsBelowOrders   = newError(KindConflict, "The number of seat can't be smaller than existing orders")
	ErrFlightHasOrders    = newError(KindConflict, "You can't cancel a flight already ordered.")
	ErrFlightExists       = newError(KindConflict, "Flight number already existed")
	ErrToggleSelf         = newError(KindConflict, "You can't change your own status")
)

// AsError 는 err 체인에서 *Error 를 찾는다.
func AsError(err error) (*Error, bool) {
	var se *Error
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
