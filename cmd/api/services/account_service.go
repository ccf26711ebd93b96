package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"flight-booking/cmd/api/auth"
	"flight-booking/cmd/internal/logger"
	"flight-booking/events"
	"flight-booking/models"
	"flight-booking/repositories"
)

// AccountService 는 회원 가입/로그인/세션/개인정보 수정을 담당한다.
type AccountService struct {
	repo       repositories.Repository
	sessions   SessionStore
	jwtManager *auth.JWTManager
	pub        Publisher
	sessionTTL time.Duration
	now        func() time.Time
}

func NewAccountService(repo repositories.Repository, sessions SessionStore, jwtManager *auth.JWTManager, pub Publisher, sessionTTL time.Duration) *AccountService {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AccountService{
		repo:       repo,
		sessions:   sessions,
		jwtManager: jwtManager,
		pub:        pub,
		sessionTTL: sessionTTL,
		now:        time.Now,
	}
}

type RegisterInput struct {
	Username    string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber string
	IsSuperuser bool
}

// Register 는 새 계정을 만든다. 새 계정은 항상 활성 상태다.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (models.User, error) {
	if in.Username == "" {
		return models.User{}, ErrUsernameRequired
	}
	if in.Password == "" {
		return models.User{}, ErrPasswordRequired
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:    in.Username,
		Password:    hash,
		IsSuperuser: in.IsSuperuser,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		PhoneNumber: in.PhoneNumber,
		IsActive:    true,
	}

	err = s.repo.WithTx(ctx, func(ctx context.Context, tx repositories.Repository) error {
		if err := ensureUsernameFree(ctx, tx, in.Username); err != nil {
			return err
		}
		if err := tx.Users().Create(ctx, &user); err != nil {
			if errors.Is(err, repositories.ErrDuplicate) {
				return ErrUsernameExists.with(err)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return models.User{}, err
	}

	publish(ctx, s.pub, &events.UserRegisteredEvent{
		BaseEvent:   newBase(ctx, events.UserRegistered),
		UserID:      user.ID,
		Username:    user.Username,
		IsSuperuser: user.IsSuperuser,
	})
	return user, nil
}

func ensureUsernameFree(ctx context.Context, tx repositories.Repository, username string) error {
	_, err := tx.Users().GetByUsername(ctx, username)
	switch {
	case err == nil:
		return ErrUsernameExists
	case errors.Is(err, repositories.ErrNotFound):
		return nil
	default:
		return err
	}
}

// LoginResult 는 로그인 성공 시 발급되는 세션과 액세스 토큰이다.
type LoginResult struct {
	User             models.User
	SessionToken     string
	SessionExpiresAt time.Time
	AccessToken      string
}

// Login 은 비밀번호를 확인하고 세션과 JWT 를 발급한다.
// 사용자 없음/비활성/비밀번호 불일치는 모두 같은 에러로 응답한다.
func (s *AccountService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	user, err := s.repo.Users().GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	ok, err := auth.CheckPassword(user.Password, password)
	if err != nil {
		return nil, fmt.Errorf("check password: %w", err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	token, err := auth.NewSessionToken()
	if err != nil {
		return nil, fmt.Errorf("session token: %w", err)
	}
	now := s.now()
	session := &models.Session{
		Token:     token,
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	role := auth.RoleUser
	if user.IsSuperuser {
		role = auth.RoleAdmin
	}
	accessToken, err := s.jwtManager.Sign(strconv.FormatInt(user.ID, 10), role)
	if err != nil {
		return nil, fmt.Errorf("jwt sign: %w", err)
	}

	logger.InfoWithFields("user logged in", logger.Fields{"user_id": user.ID, "admin": user.IsSuperuser})
	return &LoginResult{
		User:             user,
		SessionToken:     token,
		SessionExpiresAt: session.ExpiresAt,
		AccessToken:      accessToken,
	}, nil
}

// Logout 은 세션을 삭제한다. 토큰이 없으면 아무 것도 하지 않는다.
func (s *AccountService) Logout(ctx context.Context, sessionToken string) error {
	if sessionToken == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sessionToken)
}

// PrincipalFromSession 은 세션 쿠키 값으로 로그인 사용자를 찾는다.
func (s *AccountService) PrincipalFromSession(ctx context.Context, token string) (*auth.Principal, error) {
	sess, err := s.sessions.FindValid(ctx, token, s.now())
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrLoginRequired
		}
		return nil, err
	}
	p, err := s.activePrincipal(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}
	p.SessionToken = token
	return p, nil
}

// PrincipalFromToken 은 Bearer JWT 로 로그인 사용자를 찾는다.
// 비활성화된 사용자의 토큰은 만료 전이라도 거부된다.
func (s *AccountService) PrincipalFromToken(ctx context.Context, token string) (*auth.Principal, error) {
	sub, _, err := s.jwtManager.Parse(token)
	if err != nil {
		return nil, ErrLoginRequired.with(err)
	}
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, ErrLoginRequired.with(err)
	}
	return s.activePrincipal(ctx, id)
}

func (s *AccountService) activePrincipal(ctx context.Context, userID int64) (*auth.Principal, error) {
	user, err := s.repo.Users().GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrLoginRequired
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrLoginRequired
	}
	return &auth.Principal{
		UserID:      user.ID,
		Username:    user.Username,
		IsSuperuser: user.IsSuperuser,
	}, nil
}

// Find 는 공개 프로필 조회용이다.
func (s *AccountService) Find(ctx context.Context, username string) (models.User, error) {
	user, err := s.repo.Users().GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *AccountService) Me(ctx context.Context, p *auth.Principal) (models.User, error) {
	if p == nil {
		return models.User{}, ErrLoginRequired
	}
	user, err := s.repo.Users().GetByID(ctx, p.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

type UpdateInfoInput struct {
	Username       string
	Password       string
	PasswordRepeat string
	FirstName      string
	LastName       string
	PhoneNumber    string
}

// UpdateInfo 는 로그인 사용자의 정보를 바꾼다. 이름이 바뀌면 주문의 username 도
// 같은 트랜잭션에서 함께 옮긴다. 세션은 사용자 ID 기준이라 그대로 유효하다.
func (s *AccountService) UpdateInfo(ctx context.Context, p *auth.Principal, in UpdateInfoInput) (models.User, error) {
	if p == nil {
		return models.User{}, ErrLoginRequired
	}
	if in.Username == "" {
		return models.User{}, ErrUsernameRequired
	}
	if in.Password == "" {
		return models.User{}, ErrPasswordRequired
	}
	if in.Password != in.PasswordRepeat {
		return models.User{}, ErrPasswordMismatch
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	var updated models.User
	err = s.repo.WithTx(ctx, func(ctx context.Context, tx repositories.Repository) error {
		current, err := tx.Users().GetByID(ctx, p.UserID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		renamed := current.Username != in.Username
		if renamed {
			if err := ensureUsernameFree(ctx, tx, in.Username); err != nil {
				return err
			}
		}

		updated = current
		updated.Username = in.Username
		updated.Password = hash
		updated.FirstName = in.FirstName
		updated.LastName = in.LastName
		updated.PhoneNumber = in.PhoneNumber
		if err := tx.Users().Update(ctx, updated); err != nil {
			if errors.Is(err, repositories.ErrDuplicate) {
				return ErrUsernameExists.with(err)
			}
			return err
		}

		if renamed {
			if _, err := tx.Orders().RenameUser(ctx, current.Username, in.Username); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.User{}, err
	}

	p.Username = updated.Username
	return updated, nil
}
