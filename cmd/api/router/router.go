package router

import (
	"fmt"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"flight-booking/cmd/api/auth"
	"flight-booking/cmd/api/dto"
	"flight-booking/cmd/api/handlers"
	"flight-booking/cmd/api/middleware"
	"flight-booking/cmd/api/services"
	"flight-booking/cmd/api/views"
	_ "flight-booking/docs"
)

// Deps 는 라우터가 필요로 하는 서비스와 헬스 체크 대상이다.
type Deps struct {
	Accounts *services.AccountService
	Flights  *services.FlightService
	Orders   *services.OrderService
	Admin    *services.AdminService
	Cookie   auth.CookieOptions
	Postgres handlers.Pinger
	Mongo    handlers.Pinger
}

func New(d Deps) (*gin.Engine, error) {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := dto.RegisterValidators(v); err != nil {
			return nil, fmt.Errorf("register validators: %w", err)
		}
	}

	tmpl, err := views.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	r := gin.New()
	r.Use(middleware.RequestTrace(), gin.Recovery())
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/swagger"})))
	r.Use(middleware.Authenticate(d.Accounts, d.Cookie), middleware.RequestLoggingMiddleware())
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", views.Static())

	// Health check
	r.GET("/health", handlers.HealthHandler(d.Postgres, d.Mongo))

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerAPI(r.Group("/api/v1"), d)
	registerPages(r, d)

	return r, nil
}

// registerAPI 는 JSON API 라우트다. Bearer 토큰과 세션 쿠키 모두로 인증할 수 있다.
func registerAPI(api *gin.RouterGroup, d Deps) {
	api.POST("/register", handlers.RegisterHandler(d.Accounts))
	api.POST("/login", handlers.LoginHandler(d.Accounts, d.Cookie))
	api.POST("/logout", handlers.LogoutHandler(d.Accounts, d.Cookie))
	api.GET("/users/:username", handlers.GetUserHandler(d.Accounts))

	api.GET("/flights", handlers.ListFlightsHandler(d.Flights))
	api.GET("/flights/search", handlers.SearchFlightsHandler(d.Flights))
	api.GET("/flights/:flight_number", handlers.GetFlightHandler(d.Flights))

	member := api.Group("", middleware.RequireLogin())
	{
		member.GET("/me", handlers.GetMeHandler(d.Accounts))
		member.PUT("/me", handlers.UpdateMeHandler(d.Accounts))
		member.POST("/flights/purchase", handlers.PurchaseHandler(d.Flights))
		member.GET("/myorders", handlers.ListMyOrdersHandler(d.Orders))
		member.GET("/myorders/search", handlers.SearchMyOrdersHandler(d.Orders))
		member.POST("/myorders/cancel", handlers.CancelMyOrderHandler(d.Orders))
	}

	admin := api.Group("/admin", middleware.AdminAuthMiddleware())
	{
		admin.GET("/users", handlers.AdminListUsersHandler(d.Admin))
		admin.POST("/users", handlers.AdminAddUserHandler(d.Admin))
		admin.POST("/users/:id/toggle-active", handlers.AdminToggleActiveHandler(d.Admin))

		admin.GET("/flights", handlers.AdminListFlightsHandler(d.Admin))
		admin.POST("/flights", handlers.AdminAddFlightHandler(d.Admin))
		admin.PUT("/flights/:flight_number", handlers.AdminResetFlightHandler(d.Admin))
		admin.DELETE("/flights/:flight_number", handlers.AdminCancelFlightHandler(d.Admin))

		admin.GET("/orders", handlers.AdminListOrdersHandler(d.Admin))
		admin.DELETE("/orders/:flight_number/:username", handlers.AdminDeleteOrderHandler(d.Admin))

		admin.GET("/events", handlers.AdminListEventsHandler(d.Admin))
	}
}

// registerPages 는 쿠키 세션 기반 HTML 화면 라우트다.
func registerPages(r *gin.Engine, d Deps) {
	pages := &handlers.Pages{
		Accounts: d.Accounts,
		Flights:  d.Flights,
		Orders:   d.Orders,
		Admin:    d.Admin,
		Cookie:   d.Cookie,
	}

	r.GET("/", pages.Index())
	r.GET("/login", pages.Index())
	r.POST("/login", pages.Login())
	r.GET("/logout", pages.Logout())
	r.POST("/logout", pages.Logout())
	r.GET("/register", pages.Index())
	r.POST("/register", pages.Register())
	r.GET("/flights", pages.FlightsPage())
	r.GET("/flights/search", pages.FlightsPage())

	member := r.Group("", middleware.RedirectAnonymous("/"))
	{
		member.POST("/update_info", pages.UpdateInfo())
		member.POST("/flights/purchase", pages.Purchase())
		member.GET("/myorders", pages.MyOrders())
		member.GET("/myorders/search", pages.MyOrders())
		member.POST("/myorders/cancel", pages.CancelOrder())
	}

	admin := r.Group("/admin", middleware.AdminPage())
	{
		admin.GET("/users", pages.Users())
		admin.POST("/users", pages.AddUser())
		admin.POST("/users/:id/toggle", pages.ToggleUser())

		admin.GET("/flights", pages.AdminFlights())
		admin.POST("/flights/add", pages.AddFlight())
		admin.POST("/flights/reset", pages.ResetFlight())
		admin.POST("/flights/cancel", pages.CancelFlight())

		admin.GET("/orders", pages.AdminOrders())
		admin.POST("/orders/delete", pages.DeleteOrder())
	}
}
