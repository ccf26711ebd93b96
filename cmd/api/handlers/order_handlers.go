package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flight-booking/cmd/api/dto"
	"flight-booking/cmd/api/services"
)

// ListMyOrdersHandler godoc
// @Summary      내 예약 목록
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "페이지 (기본 1)"
// @Success      200   {object}  dto.Pagination[dto.OrderDetailDTO]
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Router       /api/v1/myorders [get]
func ListMyOrdersHandler(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := svc.ListMine(c.Request.Context(), principal(c), pageRequest(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.FromPage(page, dto.NewOrderDetailDTO))
	}
}

// SearchMyOrdersHandler godoc
// @Summary      내 예약 검색
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        departure    query     string  false  "출발지"
// @Param        destination  query     string  false  "도착지"
// @Param        airline      query     string  false  "항공사"
// @Param        page         query     int     false  "페이지 (기본 1)"
// @Success      200          {object}  dto.Pagination[dto.OrderDetailDTO]
// @Failure      401          {object}  dto.ErrorResponseDTO
// @Router       /api/v1/myorders/search [get]
func SearchMyOrdersHandler(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q dto.FlightSearchQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			bindError(c, err)
			return
		}
		page, err := svc.SearchMine(c.Request.Context(), principal(c), services.OrderSearch{
			Departure:   q.Departure,
			Destination: q.Destination,
			Airline:     q.Airline,
		}, pageRequest(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.FromPage(page, dto.NewOrderDetailDTO))
	}
}

// CancelMyOrderHandler godoc
// @Summary      예약 취소
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.FlightNumberRequest  true  "항공편 번호"
// @Success      200   {object}  dto.MessageResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Failure      404   {object}  dto.ErrorResponseDTO
// @Router       /api/v1/myorders/cancel [post]
func CancelMyOrderHandler(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.FlightNumberRequest
		if err := c.ShouldBind(&req); err != nil {
			bindError(c, err)
			return
		}
		if err := svc.Cancel(c.Request.Context(), principal(c), req.FlightNumber); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "Order successfully cancelled!"})
	}
}
