package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"flight-booking/cmd/api/auth"
	"flight-booking/pagination"
)

// pageRequest 는 ?page= 값을 읽는다. 숫자가 아니면 0 으로 두어
// 목록 조회 단계에서 InvalidPageError(400)가 나도록 한다.
func pageRequest(c *gin.Context) pagination.Request {
	n, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		n = 0
	}
	return pagination.NewRequest(n)
}

// principal 은 인증 미들웨어가 심어둔 사용자를 꺼낸다. 익명이면 nil.
func principal(c *gin.Context) *auth.Principal {
	p, _ := auth.CurrentPrincipal(c)
	return p
}

func parseOptionalBool(v string) *bool {
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil
	}
	return &b
}
