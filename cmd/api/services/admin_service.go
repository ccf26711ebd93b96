package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"flight-booking/cmd/api/auth"
	"flight-booking/cmd/internal/logger"
	"flight-booking/events"
	"flight-booking/models"
	"flight-booking/pagination"
	"flight-booking/repositories"
)

// AdminService encapsulates business logic for the admin console.
type AdminService struct {
	repo     repositories.Repository
	accounts *AccountService
	sessions SessionStore
	eventLog EventLog
	pub      Publisher
}

func NewAdminService(repo repositories.Repository, accounts *AccountService, sessions SessionStore, eventLog EventLog, pub Publisher) *AdminService {
	return &AdminService{
		repo:     repo,
		accounts: accounts,
		sessions: sessions,
		eventLog: eventLog,
		pub:      pub,
	}
}

// -------------------- Users --------------------

func (s *AdminService) ListUsers(ctx context.Context, f repositories.UserFilter, page pagination.Request) (pagination.Page[models.User], error) {
	return s.repo.Users().List(ctx, f, page)
}

// AddUser 는 관리자 화면에서 계정을 추가한다. 슈퍼유저 지정이 가능하다.
func (s *AdminService) AddUser(ctx context.Context, in RegisterInput) (models.User, error) {
	return s.accounts.Register(ctx, in)
}

// ToggleActive 는 활성/비활성을 뒤집는다. 비활성화되면 해당 사용자의 세션을 모두 지운다.
func (s *AdminService) ToggleActive(ctx context.Context, actor *auth.Principal, userID int64) (models.User, error) {
	if actor == nil {
		return models.User{}, ErrLoginRequired
	}
	if actor.UserID == userID {
		return models.User{}, ErrToggleSelf
	}

	var user models.User
	err := s.repo.WithTx(ctx, func(ctx context.Context, tx repositories.Repository) error {
		var err error
		user, err = tx.Users().GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		user.IsActive = !user.IsActive
		return tx.Users().SetActive(ctx, userID, user.IsActive)
	})
	if err != nil {
		return models.User{}, err
	}

	if !user.IsActive && s.sessions != nil {
		n, err := s.sessions.DeleteByUser(ctx, userID)
		if err != nil {
			logger.ErrorWithFields("failed to drop sessions of deactivated user", logger.Fields{
				"user_id": userID,
				"error":   err.Error(),
			})
		} else if n > 0 {
			logger.InfoWithFields("sessions dropped", logger.Fields{"user_id": userID, "count": n})
		}
	}

	publish(ctx, s.pub, &events.UserStatusChangedEvent{
		BaseEvent: newBase(ctx, events.UserStatusChanged),
		UserID:    user.ID,
		Username:  user.Username,
		IsActive:  user.IsActive,
		Actor:     actor.Username,
	})
	return user, nil
}

// -------------------- Flights --------------------

// FlightInput 은 항공편 추가/재설정 입력이다.
type FlightInput struct {
	FlightNumber string
	Departure    string
	Destination  string
	DeptTime     time.Time
	DeptAirport  string
	ArrvTime     time.Time
	ArrvAirport  string
	Airline      string
	Price        float64
	TotalSeat    int
}

func (in FlightInput) validate() error {
	if in.FlightNumber == "" || in.Departure == "" || in.Destination == "" || in.Airline == "" {
		return ErrInvalidInput
	}
	if in.DeptTime.IsZero() || in.ArrvTime.IsZero() || in.TotalSeat < 0 || in.Price < 0 {
		return ErrInvalidInput
	}
	return nil
}

func (s *AdminService) ListFlights(ctx context.Context, f repositories.FlightFilter, page pagination.Request) (pagination.Page[models.Flight], error) {
	f.ExcludeOrderedBy = ""
	return s.repo.Flights().List(ctx, f, page)
}

// AddFlight 는 새 항공편을 등록한다. 남은 좌석은 전체 좌석 수로 시작한다.
func (s *AdminService) AddFlight(ctx context.Context, in FlightInput) (models.Flight, error) {
	if err := in.validate(); err != nil {
		return models.Flight{}, err
	}

	flight := models.Flight{
		FlightNumber:  in.FlightNumber,
		Departure:     in.Departure,
		Destination:   in.Destination,
		DeptTime:      in.DeptTime,
		DeptAirport:   in.DeptAirport,
		ArrvTime:      in.ArrvTime,
		ArrvAirport:   in.ArrvAirport,
		Airline:       in.Airline,
		Price:         in.Price,
		TotalSeat:     in.TotalSeat,
		AvailableSeat: in.TotalSeat,
	}
	if err := s.repo.Flights().Create(ctx, &flight); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return models.Flight{}, ErrFlightExists.with(err)
		}
		return models.Flight{}, err
	}
	return flight, nil
}

// ResetFlight 는 항공편 정보를 다시 설정한다.
// 남은 좌석 = 기존 남은 좌석 - 기존 전체 좌석 + 새 전체 좌석 이며,
// 새 전체 좌석이 이미 예약된 좌석 수보다 작으면 거부한다.
func (s *AdminService) ResetFlight(ctx context.Context, in FlightInput) (models.Flight, error) {
	if err := in.validate(); err != nil {
		return models.Flight{}, err
	}

	var flight models.Flight
	err := s.repo.WithTx(ctx, func(ctx context.Context, tx repositories.Repository) error {
		current, err := tx.Flights().LockByNumber(ctx, in.FlightNumber)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrFlightNotFound
			}
			return err
		}
		if current.TotalSeat-in.TotalSeat > current.AvailableSeat {
			return ErrSeatsBelowOrders
		}

		flight = current
		flight.Departure = in.Departure
		flight.Destination = in.Destination
		flight.DeptTime = in.DeptTime
		flight.DeptAirport = in.DeptAirport
		flight.ArrvTime = in.ArrvTime
		flight.ArrvAirport = in.ArrvAirport
		flight.Airline = in.Airline
		flight.Price = in.Price
		flight.AvailableSeat = current.AvailableSeat - current.TotalSeat + in.TotalSeat
		flight.TotalSeat = in.TotalSeat
		return tx.Flights().Update(ctx, flight)
	})
	if err != nil {
		return models.Flight{}, err
	}
	return flight, nil
}

// CancelFlight 는 예약이 하나도 없는 항공편만 삭제한다.
func (s *AdminService) CancelFlight(ctx context.Context, actor *auth.Principal, flightNumber string) error {
	if actor == nil {
		return ErrLoginRequired
	}
	if flightNumber == "" {
		return ErrInvalidInput
	}

	err := s.repo.WithTx(ctx, func(ctx context.Context, tx repositories.Repository) error {
		if _, err := tx.Flights().LockByNumber(ctx, flightNumber); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrFlightNotFound
			}
			return err
		}
		n, err := tx.Orders().CountByFlight(ctx, flightNumber)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrFlightHasOrders
		}
		return tx.Flights().Delete(ctx, flightNumber)
	})
	if err != nil {
		return err
	}

	publish(ctx, s.pub, &events.FlightCancelledEvent{
		BaseEvent:    newBase(ctx, events.FlightCancelled),
		FlightNumber: flightNumber,
		Actor:        actor.Username,
	})
	return nil
}

// -------------------- Orders --------------------

// AdminOrderQuery 는 관리자 주문 검색 조건이다.
// DeptBoa/ArrvBoa 는 "before" 또는 "after" 이며 시각과 함께 지정한다.
type AdminOrderQuery struct {
	FlightNumber string
	Departure    string
	Destination  string
	Airline      string
	Username     string
	DeptBoa      string
	DeptTime     string
	ArrvBoa      string
	ArrvTime     string
}

func (q AdminOrderQuery) filter() (repositories.OrderFilter, error) {
	dept, err := ParseTimeBound(q.DeptBoa, q.DeptTime)
	if err != nil {
		return repositories.OrderFilter{}, err
	}
	arrv, err := ParseTimeBound(q.ArrvBoa, q.ArrvTime)
	if err != nil {
		return repositories.OrderFilter{}, err
	}
	return repositories.OrderFilter{
		Username:     q.Username,
		FlightNumber: q.FlightNumber,
		Departure:    q.Departure,
		Destination:  q.Destination,
		Airline:      q.Airline,
		DeptTime:     dept,
		ArrvTime:     arrv,
	}, nil
}

// timeLayouts 는 폼/쿼리스트링에서 허용하는 시각 형식이다.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimeBound 는 (boa, 시각) 쌍을 비교 조건으로 바꾼다. 둘 다 비어 있으면 nil.
// boa 가 before/after 가 아니거나 시각을 해석할 수 없으면 ErrInvalidInput.
func ParseTimeBound(boa, value string) (*repositories.TimeBound, error) {
	boa = strings.ToLower(strings.TrimSpace(boa))
	value = strings.TrimSpace(value)
	if boa == "" && value == "" {
		return nil, nil
	}
	if boa != "before" && boa != "after" {
		return nil, ErrInvalidInput
	}
	at, ok := ParseTime(value)
	if !ok {
		return nil, ErrInvalidInput
	}
	return &repositories.TimeBound{Before: boa == "before", At: at}, nil
}

// ParseTime 는 timeLayouts 중 하나로 시각을 해석한다. 시간대가 없으면 UTC 로 본다.
func ParseTime(value string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (s *AdminService) ListOrders(ctx context.Context, q AdminOrderQuery, page pagination.Request) (pagination.Page[models.OrderDetail], error) {
	f, err := q.filter()
	if err != nil {
		return pagination.Page[models.OrderDetail]{}, err
	}
	return s.repo.Orders().List(ctx, f, page)
}

// DeleteOrder 는 임의 사용자의 예약을 삭제하고 좌석을 돌려놓는다.
func (s *AdminService) DeleteOrder(ctx context.Context, actor *auth.Principal, flightNumber, username string) error {
	if actor == nil {
		return ErrLoginRequired
	}
	if flightNumber == "" || username == "" {
		return ErrInvalidInput
	}
	if err := releaseSeat(ctx, s.repo, username, flightNumber); err != nil {
		return err
	}

	publish(ctx, s.pub, &events.OrderCancelledEvent{
		BaseEvent:    newBase(ctx, events.OrderCancelled),
		Username:     username,
		FlightNumber: flightNumber,
		Actor:        actor.Username,
	})
	return nil
}

// -------------------- Events --------------------

// ListBookingEvents 는 notifier 가 남긴 감사 로그를 최신순으로 조회한다.
func (s *AdminService) ListBookingEvents(ctx context.Context, page pagination.Request) (pagination.Page[models.BookingEvent], error) {
	if s.eventLog == nil {
		return pagination.NewPage[models.BookingEvent](nil, page, 0), nil
	}
	return s.eventLog.List(ctx, page)
}
