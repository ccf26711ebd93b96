package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"flight-booking/cmd/api/auth"
	"flight-booking/cmd/api/dto"
	"flight-booking/cmd/api/services"
)

// RegisterHandler godoc
// @Summary      회원 가입
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegisterRequest  true  "가입 정보"
// @Success      201   {object}  dto.MessageResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      409   {object}  dto.ErrorResponseDTO
// @Router       /api/v1/register [post]
func RegisterHandler(svc *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.RegisterRequest
		if err := c.ShouldBind(&req); err != nil {
			bindError(c, err)
			return
		}
		if _, err := svc.Register(c.Request.Context(), registerInput(req, false)); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.MessageResponseDTO{Message: "User successfully registered"})
	}
}

func registerInput(req dto.RegisterRequest, superuser bool) services.RegisterInput {
	return services.RegisterInput{
		Username:    req.Username,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		IsSuperuser: superuser,
	}
}

// LoginHandler godoc
// @Summary      로그인
// @Description  세션 쿠키를 설정하고 Bearer 액세스 토큰을 함께 돌려준다.
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "계정"
// @Success      200   {object}  dto.LoginResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Router       /api/v1/login [post]
func LoginHandler(svc *services.AccountService, cookie auth.CookieOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.LoginRequest
		if err := c.ShouldBind(&req); err != nil {
			bindError(c, err)
			return
		}
		res, err := svc.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			writeError(c, err)
			return
		}
		auth.SetSessionCookie(c, cookie, res.SessionToken)
		c.JSON(http.StatusOK, dto.LoginResponseDTO{
			Message:     fmt.Sprintf("Welcome, %s!", res.User.Username),
			Admin:       res.User.IsSuperuser,
			AccessToken: res.AccessToken,
			TokenType:   "Bearer",
			ExpiresAt:   res.SessionExpiresAt,
		})
	}
}

// LogoutHandler godoc
// @Summary      로그아웃
// @Tags         account
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Router       /api/v1/logout [post]
func LogoutHandler(svc *services.AccountService, cookie auth.CookieOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := auth.SessionTokenFromCookie(c, cookie.Name); token != "" {
			if err := svc.Logout(c.Request.Context(), token); err != nil {
				writeError(c, err)
				return
			}
		}
		auth.ClearSessionCookie(c, cookie)
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "Logout successfully"})
	}
}

// GetUserHandler godoc
// @Summary      사용자 조회
// @Tags         account
// @Produce      json
// @Param        username  path      string  true  "사용자 이름"
// @Success      200       {object}  dto.PublicUserDTO
// @Failure      404       {object}  dto.ErrorResponseDTO
// @Router       /api/v1/users/{username} [get]
func GetUserHandler(svc *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := svc.Find(c.Request.Context(), c.Param("username"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewPublicUserDTO(user))
	}
}

// GetMeHandler godoc
// @Summary      내 정보
// @Tags         account
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.UserDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /api/v1/me [get]
func GetMeHandler(svc *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := svc.Me(c.Request.Context(), principal(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewUserDTO(user))
	}
}

// UpdateMeHandler godoc
// @Summary      내 정보 수정
// @Description  빈 필드는 변경하지 않는다. 비밀번호는 password_repeat 와 같아야 한다.
// @Tags         account
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.UpdateInfoRequest  true  "변경할 정보"
// @Success      200   {object}  dto.MessageResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Failure      409   {object}  dto.ErrorResponseDTO
// @Router       /api/v1/me [put]
func UpdateMeHandler(svc *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.UpdateInfoRequest
		if err := c.ShouldBind(&req); err != nil {
			bindError(c, err)
			return
		}
		if _, err := svc.UpdateInfo(c.Request.Context(), principal(c), updateInfoInput(req)); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "Personal Infomation successfully updated!"})
	}
}

func updateInfoInput(req dto.UpdateInfoRequest) services.UpdateInfoInput {
	return services.UpdateInfoInput{
		Username:       req.Username,
		Password:       req.Password,
		PasswordRepeat: req.PasswordRepeat,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		PhoneNumber:    req.PhoneNumber,
	}
}
