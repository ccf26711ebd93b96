package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"flight-booking/cmd/api/dto"
	"flight-booking/cmd/api/services"
	"flight-booking/repositories"
)

// -------------------- Users --------------------

// AdminListUsersHandler godoc
// @Summary      사용자 목록 (관리자)
// @Description  슈퍼유저가 먼저, 그다음 id 순이다.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        username    query     string  false  "사용자 이름"
// @Param        first_name  query     string  false  "이름"
// @Param        last_name   query     string  false  "성"
// @Param        is_active   query     string  false  "true/false"
// @Param        page        query     int     false  "페이지 (기본 1)"
// @Success      200         {object}  dto.Pagination[dto.UserDTO]
// @Failure      400         {object}  dto.ErrorResponseDTO
// @Failure      401         {object}  dto.ErrorResponseDTO
// @Failure      403         {object}  dto.ErrorResponseDTO
// @Router       /api/v1/admin/users [get]
func AdminListUsersHandler(svc *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q dto.UserFilterQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			bindError(c, err)
			return
		}
		page, err := svc.ListUsers(c.Request.Context(), userFilter(q), pageRequest(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.FromPage(page, dto.NewUserDTO))
	}
}

func userFilter(q dto.UserFilterQuery) repositories.UserFilter {
	return repositories.UserFilter{
		Username:  q.Username,
		FirstName: q.FirstName,
		LastName:  q.LastName,
		IsActive:  parseOptionalBool(q.IsActive),
	}
}

// AdminAddUserHandler godoc
// @Summary      사용자 추가 (관리자)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.AdminAddUserRequest  true  "사용자 정보"
// @Success      201   {object}  dto.UserDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      409   {object}  dto.ErrorResponseDTO
// @Router       /api/v1/admin/users [post]
func AdminAddUserHandler(svc *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.AdminAddUserRequest
		if err := c.ShouldBind(&req); err != nil {
			bindError(c, err)
			return
		}
		user, err := svc.AddUser(c.Request.Context(), registerInput(req.RegisterRequest, req.IsSuperuser))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.NewUserDTO(user))
	}
}

// AdminToggleActiveHandler godoc
// @Summary      사용자 활성/비활성 전환 (관리자)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "사용자 id"
// @Success      200  {object}  dto.UserDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /api/v1/admin/users/{id}/toggle-active [post]
func AdminToggleActiveHandler(svc *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil || id <= 0 {
			writeError(c, services.ErrInvalidInput)
			return
		}
		user, err := svc.ToggleActive(c.Request.Context(), principal(c), id)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewUserDTO(user))
	}
}

// -------------------- Flights --------------------

// AdminListFlightsHandler godoc
// @Summary      항공편 목록 (관리자)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        flight_number  query     string  false  "항공편 번호"
// @Param        departure      query     string  false  "출발지"
// @Param        destination    query     string  false  "도착지"
// @Param        airline        query     string  false  "항공사"
// @Param        page           query     int     false  "페이지 (기본 1)"
// @Success      200            {object}  dto.Pagination[dto.FlightDTO]
// @Router       /api/v1/admin/flights [get]
func AdminListFlightsHandler(svc *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q dto.AdminFlightQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			bindError(c, err)
			return
		}
		page, err := svc.ListFlights(c.Request.Context(), repositories.FlightFilter{
			FlightNumber: q.FlightNumber,
			Departure:    q.Departure,
			Destination:  q.Destination,
			Airline:      q.Airline,
		}, pageRequest(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.FromPage(page, dto.NewFlightDTO))
	}
}

// flightInput 은 요청의 시각 문자열을 해석한다. 실패하면 ErrInvalidInput.
func flightInput(req dto.FlightRequest) (services.FlightInput, error) {
	dept, ok := services.ParseTime(req.DeptTime)
	if !ok {
		return services.FlightInput{}, services.ErrInvalidInput
	}
	arrv, ok := services.ParseTime(req.ArrvTime)
	if !ok {
		return services.FlightInput{}, services.ErrInvalidInput
	}
	return services.FlightInput{
		FlightNumber: req.FlightNumber,
		Departure:    req.Departure,
		Destination:  req.Destination,
		DeptTime:     dept,
		DeptAirport:  req.DeptAirport,
		ArrvTime:     arrv,
		ArrvAirport:  req.ArrvAirport,
		Airline:      req.Airline,
		Price:        req.Price,
		TotalSeat:    req.TotalSeat,
	}, nil
}

// AdminAddFlightHandler godoc
// @Summary      항공편 추가 (관리자)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.FlightRequest  true  "항공편 정보"
// @Success      201   {object}  dto.MessageResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      409   {object}  dto.ErrorResponseDTO
// @Router       /api/v1/admin/flights [post]
func AdminAddFlightHandler(svc *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.FlightRequest
		if err := c.ShouldBind(&req); err != nil {
			bindError(c, err)
			return
		}
		in, err := flightInput(req)
		if err != nil {
			writeError(c, err)
			return
		}
		if _, err := svc.AddFlight(c.Request.Context(), in); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.MessageResponseDTO{Message: "New flight successfully added!"})
	}
}

// AdminResetFlightHandler godoc
// @Summary      항공편 정보 재설정 (관리자)
// @Description  항공편 번호는 경로 값이 기준이다. 남은 좌석은 기존 예약 수를 유지하도록 다시 계산된다.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        flight_number  path      string             true  "항공편 번호"
// @Param        body           body      dto.FlightRequest  true  "항공편 정보"
// @Success      200            {object}  dto.MessageResponseDTO
// @Failure      400            {object}  dto.ErrorResponseDTO
// @Failure      404            {object}  dto.ErrorResponseDTO
// @Failure      409            {object}  dto.ErrorResponseDTO
// @Router       /api/v1/admin/flights/{flight_number} [put]
func AdminResetFlightHandler(svc *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.FlightRequest
		if err := c.ShouldBind(&req); err != nil {
			bindError(c, err)
			return
		}
		if number := c.Param("flight_number"); number != "" && number != req.FlightNumber {
			writeError(c, services.ErrInvalidInput)
			return
		}
		in, err := flightInput(req)
		if err != nil {
			writeError(c, err)
			return
		}
		if _, err := svc.ResetFlight(c.Request.Context(), in); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "Flight Infomation successfully reset!"})
	}
}

// AdminCancelFlightHandler godoc
// @Summary      항공편 취소 (관리자)
// @Description  예약이 남아 있는 항공편은 취소할 수 없다.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        flight_number  path      string  true  "항공편 번호"
// @Success      200            {object}  dto.MessageResponseDTO
// @Failure      404            {object}  dto.ErrorResponseDTO
// @Failure      409            {object}  dto.ErrorResponseDTO
// @Router       /api/v1/admin/flights/{flight_number} [delete]
func AdminCancelFlightHandler(svc *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.CancelFlight(c.Request.Context(), principal(c), c.Param("flight_number")); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "Flight successfully cancelled!"})
	}
}

// -------------------- Orders --------------------

func adminOrderQuery(q dto.AdminOrderQuery) services.AdminOrderQuery {
	return services.AdminOrderQuery{
		FlightNumber: q.FlightNumber,
		Departure:    q.Departure,
		Destination:  q.Destination,
		Airline:      q.Airline,
		Username:     q.Username,
		DeptBoa:      q.DeptBoa,
		DeptTime:     q.DeptTime,
		ArrvBoa:      q.ArrvBoa,
		ArrvTime:     q.ArrvTime,
	}
}

// AdminListOrdersHandler godoc
// @Summary      예약 목록 (관리자)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        flight_number  query     string  false  "항공편 번호"
// @Param        departure      query     string  false  "출발지"
// @Param        destination    query     string  false  "도착지"
// @Param        airline        query     string  false  "항공사"
// @Param        username       query     string  false  "사용자 이름"
// @Param        dept_boa       query     string  false  "before/after"
// @Param        dept_time      query     string  false  "출발 시각"
// @Param        arrv_boa       query     string  false  "before/after"
// @Param        arrv_time      query     string  false  "도착 시각"
// @Param        page           query     int     false  "페이지 (기본 1)"
// @Success      200            {object}  dto.Pagination[dto.OrderDetailDTO]
// @Failure      400            {object}  dto.ErrorResponseDTO
// @Router       /api/v1/admin/orders [get]
func AdminListOrdersHandler(svc *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q dto.AdminOrderQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			bindError(c, err)
			return
		}
		page, err := svc.ListOrders(c.Request.Context(), adminOrderQuery(q), pageRequest(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.FromPage(page, dto.NewOrderDetailDTO))
	}
}

// AdminDeleteOrderHandler godoc
// @Summary      예약 삭제 (관리자)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        flight_number  path      string  true  "항공편 번호"
// @Param        username       path      string  true  "사용자 이름"
// @Success      200            {object}  dto.MessageResponseDTO
// @Failure      404            {object}  dto.ErrorResponseDTO
// @Router       /api/v1/admin/orders/{flight_number}/{username} [delete]
func AdminDeleteOrderHandler(svc *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := svc.DeleteOrder(c.Request.Context(), principal(c), c.Param("flight_number"), c.Param("username"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "Order successfully deleted!"})
	}
}

// -------------------- Events --------------------

// AdminListEventsHandler godoc
// @Summary      예약 감사 로그 (관리자)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "페이지 (기본 1)"
// @Success      200   {object}  dto.Pagination[dto.BookingEventDTO]
// @Router       /api/v1/admin/events [get]
func AdminListEventsHandler(svc *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := svc.ListBookingEvents(c.Request.Context(), pageRequest(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.FromPage(page, dto.NewBookingEventDTO))
	}
}
