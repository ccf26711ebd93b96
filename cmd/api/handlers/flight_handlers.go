package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flight-booking/cmd/api/dto"
	"flight-booking/cmd/api/services"
)

// ListFlightsHandler godoc
// @Summary      항공편 목록
// @Description  출발 시각 순. 로그인한 일반 사용자는 이미 예약한 항공편이 빠진다.
// @Tags         flights
// @Produce      json
// @Param        page  query     int  false  "페이지 (기본 1)"
// @Success      200   {object}  dto.Pagination[dto.FlightDTO]
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Router       /api/v1/flights [get]
func ListFlightsHandler(svc *services.FlightService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := svc.ListAvailable(c.Request.Context(), principal(c), pageRequest(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.FromPage(page, dto.NewFlightDTO))
	}
}

// SearchFlightsHandler godoc
// @Summary      항공편 검색
// @Tags         flights
// @Produce      json
// @Param        departure    query     string  false  "출발지"
// @Param        destination  query     string  false  "도착지"
// @Param        airline      query     string  false  "항공사"
// @Param        page         query     int     false  "페이지 (기본 1)"
// @Success      200          {object}  dto.Pagination[dto.FlightDTO]
// @Failure      400          {object}  dto.ErrorResponseDTO
// @Router       /api/v1/flights/search [get]
func SearchFlightsHandler(svc *services.FlightService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q dto.FlightSearchQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			bindError(c, err)
			return
		}
		page, err := svc.Search(c.Request.Context(), principal(c), services.FlightSearch{
			Departure:   q.Departure,
			Destination: q.Destination,
			Airline:     q.Airline,
		}, pageRequest(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.FromPage(page, dto.NewFlightDTO))
	}
}

// GetFlightHandler godoc
// @Summary      항공편 상세
// @Tags         flights
// @Produce      json
// @Param        flight_number  path      string  true  "항공편 번호"
// @Success      200            {object}  dto.FlightDTO
// @Failure      404            {object}  dto.ErrorResponseDTO
// @Router       /api/v1/flights/{flight_number} [get]
func GetFlightHandler(svc *services.FlightService) gin.HandlerFunc {
	return func(c *gin.Context) {
		flight, err := svc.Get(c.Request.Context(), c.Param("flight_number"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewFlightDTO(flight))
	}
}

// PurchaseHandler godoc
// @Summary      항공편 예약
// @Tags         flights
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.FlightNumberRequest  true  "항공편 번호"
// @Success      201   {object}  dto.MessageResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Failure      404   {object}  dto.ErrorResponseDTO
// @Failure      409   {object}  dto.ErrorResponseDTO
// @Router       /api/v1/flights/purchase [post]
func PurchaseHandler(svc *services.FlightService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.FlightNumberRequest
		if err := c.ShouldBind(&req); err != nil {
			bindError(c, err)
			return
		}
		if _, err := svc.Purchase(c.Request.Context(), principal(c), req.FlightNumber); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.MessageResponseDTO{Message: "Order successfully made!"})
	}
}
