package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"flight-booking/cmd/api/auth"
	"flight-booking/cmd/api/dto"
	"flight-booking/cmd/api/services"
	"flight-booking/cmd/internal/logger"
	"flight-booking/pagination"
	"flight-booking/repositories"
)

// Pages 는 쿠키 세션 기반 HTML 화면 핸들러 모음이다.
// 폼 처리 결과는 리다이렉트 대신 같은 화면을 메시지와 함께 다시 그린다.
type Pages struct {
	Accounts *services.AccountService
	Flights  *services.FlightService
	Orders   *services.OrderService
	Admin    *services.AdminService
	Cookie   auth.CookieOptions
}

// notice 는 화면 상단 알림이다. 비어 있으면 표시하지 않는다.
type notice struct {
	status  int
	message string
	success bool
}

func succeeded(msg string) notice { return notice{status: http.StatusOK, message: msg, success: true} }

func failed(err error) notice {
	status, msg := statusFor(err)
	return notice{status: status, message: msg}
}

// formError 는 폼 바인딩 실패를 로그로 남기고 400 알림을 만든다.
func formError(c *gin.Context, err error) notice {
	logger.DebugWithFields("form binding failed", logger.Fields{
		"path":       c.FullPath(),
		"error":      err.Error(),
		"request_id": c.Request.Header.Get("X-Request-Id"),
	})
	return failed(services.ErrInvalidInput)
}

func (p *Pages) render(c *gin.Context, n notice, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if user := principal(c); user != nil {
		data["user"] = user
		data["admin"] = user.IsAdmin()
	}
	if _, set := data["path"]; !set {
		data["path"] = c.Request.URL.Path
	}
	data["query"] = c.Request.URL.RawQuery
	if n.message != "" {
		data["message"] = n.message
		data["success"] = n.success
	}
	status := n.status
	if status == 0 {
		status = http.StatusOK
	}
	c.HTML(status, name, data)
}

// -------------------- Account --------------------

func (p *Pages) index(c *gin.Context, n notice) {
	data := gin.H{}
	if user := principal(c); user != nil {
		if me, err := p.Accounts.Me(c.Request.Context(), user); err == nil {
			data["me"] = me
		}
	}
	p.render(c, n, "index.html", data)
}

func (p *Pages) Index() gin.HandlerFunc {
	return func(c *gin.Context) { p.index(c, notice{}) }
}

func (p *Pages) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.LoginRequest
		if err := c.ShouldBind(&req); err != nil {
			p.index(c, formError(c, err))
			return
		}
		res, err := p.Accounts.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			logError(c, http.StatusUnauthorized, err)
			p.index(c, failed(err))
			return
		}
		auth.SetSessionCookie(c, p.Cookie, res.SessionToken)
		auth.SetPrincipal(c, &auth.Principal{
			UserID:       res.User.ID,
			Username:     res.User.Username,
			IsSuperuser:  res.User.IsSuperuser,
			SessionToken: res.SessionToken,
		})
		p.index(c, succeeded(fmt.Sprintf("Welcome, %s!", res.User.Username)))
	}
}

func (p *Pages) Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := auth.SessionTokenFromCookie(c, p.Cookie.Name); token != "" {
			if err := p.Accounts.Logout(c.Request.Context(), token); err != nil {
				logError(c, http.StatusInternalServerError, err)
			}
		}
		auth.ClearSessionCookie(c, p.Cookie)
		c.Redirect(http.StatusSeeOther, "/")
	}
}

func (p *Pages) Register() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.RegisterRequest
		if err := c.ShouldBind(&req); err != nil {
			p.index(c, formError(c, err))
			return
		}
		if _, err := p.Accounts.Register(c.Request.Context(), registerInput(req, false)); err != nil {
			p.index(c, failed(err))
			return
		}
		p.index(c, succeeded("User successfully registered"))
	}
}

func (p *Pages) UpdateInfo() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.UpdateInfoRequest
		if err := c.ShouldBind(&req); err != nil {
			p.index(c, formError(c, err))
			return
		}
		user, err := p.Accounts.UpdateInfo(c.Request.Context(), principal(c), updateInfoInput(req))
		if err != nil {
			p.index(c, failed(err))
			return
		}
		// 이름이 바뀌었으면 화면에 보이는 사용자도 갱신한다.
		if cur := principal(c); cur != nil && cur.Username != user.Username {
			updated := *cur
			updated.Username = user.Username
			auth.SetPrincipal(c, &updated)
		}
		p.index(c, succeeded("Personal Infomation successfully updated!"))
	}
}

// -------------------- Flights --------------------

func (p *Pages) flights(c *gin.Context, n notice) {
	var q dto.FlightSearchQuery
	_ = c.ShouldBindQuery(&q)
	page, err := p.Flights.Search(c.Request.Context(), principal(c), services.FlightSearch{
		Departure:   q.Departure,
		Destination: q.Destination,
		Airline:     q.Airline,
	}, pageRequest(c))
	if err != nil {
		p.render(c, failed(err), "flights.html", gin.H{"pagination": page.View, "path": "/flights/search"})
		return
	}
	p.render(c, n, "flights.html", gin.H{
		"path":        "/flights/search",
		"flights":     page.Items,
		"pagination":  page.View,
		"departure":   q.Departure,
		"destination": q.Destination,
		"airline":     q.Airline,
	})
}

// FlightsPage 는 /flights 와 /flights/search 를 함께 처리한다. 빈 조건은 전체 목록이다.
func (p *Pages) FlightsPage() gin.HandlerFunc {
	return func(c *gin.Context) { p.flights(c, notice{}) }
}

func (p *Pages) Purchase() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.FlightNumberRequest
		if err := c.ShouldBind(&req); err != nil {
			p.flights(c, formError(c, err))
			return
		}
		if _, err := p.Flights.Purchase(c.Request.Context(), principal(c), req.FlightNumber); err != nil {
			p.flights(c, failed(err))
			return
		}
		p.flights(c, succeeded("Order successfully made!"))
	}
}

// -------------------- My orders --------------------

func (p *Pages) myOrders(c *gin.Context, n notice) {
	var q dto.FlightSearchQuery
	_ = c.ShouldBindQuery(&q)
	page, err := p.Orders.SearchMine(c.Request.Context(), principal(c), services.OrderSearch{
		Departure:   q.Departure,
		Destination: q.Destination,
		Airline:     q.Airline,
	}, pageRequest(c))
	if err != nil {
		p.render(c, failed(err), "myorders.html", gin.H{"pagination": page.View, "path": "/myorders/search"})
		return
	}
	p.render(c, n, "myorders.html", gin.H{
		"path":        "/myorders/search",
		"orders":      page.Items,
		"pagination":  page.View,
		"departure":   q.Departure,
		"destination": q.Destination,
		"airline":     q.Airline,
	})
}

func (p *Pages) MyOrders() gin.HandlerFunc {
	return func(c *gin.Context) { p.myOrders(c, notice{}) }
}

func (p *Pages) CancelOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.FlightNumberRequest
		if err := c.ShouldBind(&req); err != nil {
			p.myOrders(c, formError(c, err))
			return
		}
		if err := p.Orders.Cancel(c.Request.Context(), principal(c), req.FlightNumber); err != nil {
			p.myOrders(c, failed(err))
			return
		}
		p.myOrders(c, succeeded("Order successfully cancelled!"))
	}
}

// -------------------- Admin: users --------------------

func (p *Pages) users(c *gin.Context, n notice) {
	var q dto.UserFilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		n = failed(services.ErrInvalidInput)
		q = dto.UserFilterQuery{}
	}
	page, err := p.Admin.ListUsers(c.Request.Context(), userFilter(q), pageRequest(c))
	if err != nil {
		n = failed(err)
	}
	p.render(c, n, "users.html", gin.H{
		"path":       "/admin/users",
		"users":      page.Items,
		"pagination": page.View,
		"filter":     q,
	})
}

func (p *Pages) Users() gin.HandlerFunc {
	return func(c *gin.Context) { p.users(c, notice{}) }
}

func (p *Pages) AddUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.AdminAddUserRequest
		if err := c.ShouldBind(&req); err != nil {
			p.users(c, formError(c, err))
			return
		}
		if _, err := p.Admin.AddUser(c.Request.Context(), registerInput(req.RegisterRequest, req.IsSuperuser)); err != nil {
			p.users(c, failed(err))
			return
		}
		p.users(c, succeeded("User successfully added!"))
	}
}

func (p *Pages) ToggleUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			p.users(c, failed(services.ErrInvalidInput))
			return
		}
		user, err := p.Admin.ToggleActive(c.Request.Context(), principal(c), id)
		if err != nil {
			p.users(c, failed(err))
			return
		}
		state := "deactivated"
		if user.IsActive {
			state = "activated"
		}
		p.users(c, succeeded(fmt.Sprintf("User %s successfully %s!", user.Username, state)))
	}
}

// -------------------- Admin: flights --------------------

var flightForms = map[string]string{
	"add":   "Add flight",
	"reset": "Reset flight",
}

func (p *Pages) adminFlights(c *gin.Context, n notice) {
	var q dto.AdminFlightQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		n = failed(services.ErrInvalidInput)
		q = dto.AdminFlightQuery{}
	}
	page, err := p.Admin.ListFlights(c.Request.Context(), repositories.FlightFilter{
		FlightNumber: q.FlightNumber,
		Departure:    q.Departure,
		Destination:  q.Destination,
		Airline:      q.Airline,
	}, pageRequest(c))
	if err != nil {
		n = failed(err)
	}
	p.render(c, n, "flights_admin.html", gin.H{
		"path":          "/admin/flights",
		"flights":       page.Items,
		"pagination":    page.View,
		"forms":         flightForms,
		"flight_number": q.FlightNumber,
		"departure":     q.Departure,
		"destination":   q.Destination,
		"airline":       q.Airline,
	})
}

func (p *Pages) AdminFlights() gin.HandlerFunc {
	return func(c *gin.Context) { p.adminFlights(c, notice{}) }
}

func (p *Pages) bindFlight(c *gin.Context) (services.FlightInput, error) {
	var req dto.FlightRequest
	if err := c.ShouldBind(&req); err != nil {
		return services.FlightInput{}, services.ErrInvalidInput
	}
	return flightInput(req)
}

func (p *Pages) AddFlight() gin.HandlerFunc {
	return func(c *gin.Context) {
		in, err := p.bindFlight(c)
		if err == nil {
			_, err = p.Admin.AddFlight(c.Request.Context(), in)
		}
		if err != nil {
			p.adminFlights(c, failed(err))
			return
		}
		p.adminFlights(c, succeeded("New flight successfully added!"))
	}
}

func (p *Pages) ResetFlight() gin.HandlerFunc {
	return func(c *gin.Context) {
		in, err := p.bindFlight(c)
		if err == nil {
			_, err = p.Admin.ResetFlight(c.Request.Context(), in)
		}
		if err != nil {
			p.adminFlights(c, failed(err))
			return
		}
		p.adminFlights(c, succeeded("Flight Infomation successfully reset!"))
	}
}

func (p *Pages) CancelFlight() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.FlightNumberRequest
		if err := c.ShouldBind(&req); err != nil {
			p.adminFlights(c, formError(c, err))
			return
		}
		if err := p.Admin.CancelFlight(c.Request.Context(), principal(c), req.FlightNumber); err != nil {
			p.adminFlights(c, failed(err))
			return
		}
		p.adminFlights(c, succeeded("Flight successfully cancelled!"))
	}
}

// -------------------- Admin: orders --------------------

func (p *Pages) adminOrders(c *gin.Context, n notice) {
	var q dto.AdminOrderQuery
	bindErr := c.ShouldBindQuery(&q)
	data := gin.H{"filter": q, "path": "/admin/orders", "pagination": pagination.View{}}
	if bindErr != nil {
		p.render(c, failed(services.ErrInvalidInput), "orders.html", data)
		return
	}
	page, err := p.Admin.ListOrders(c.Request.Context(), adminOrderQuery(q), pageRequest(c))
	if err != nil {
		p.render(c, failed(err), "orders.html", data)
		return
	}
	data["orders"] = page.Items
	data["pagination"] = page.View
	p.render(c, n, "orders.html", data)
}

func (p *Pages) AdminOrders() gin.HandlerFunc {
	return func(c *gin.Context) { p.adminOrders(c, notice{}) }
}

func (p *Pages) DeleteOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.AdminDeleteOrderRequest
		if err := c.ShouldBind(&req); err != nil {
			p.adminOrders(c, formError(c, err))
			return
		}
		if err := p.Admin.DeleteOrder(c.Request.Context(), principal(c), req.FlightNumber, req.Username); err != nil {
			p.adminOrders(c, failed(err))
			return
		}
		p.adminOrders(c, succeeded("Order successfully deleted!"))
	}
}
