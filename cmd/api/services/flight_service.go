package services

import (
	"context"
	"errors"

	"flight-booking/cmd/api/auth"
	"flight-booking/events"
	"flight-booking/models"
	"flight-booking/pagination"
	"flight-booking/repositories"
)

// FlightService 는 사용자 화면의 항공편 목록/검색/예약을 담당한다.
type FlightService struct {
	repo repositories.Repository
	pub  Publisher
}

func NewFlightService(repo repositories.Repository, pub Publisher) *FlightService {
	return &FlightService{repo: repo, pub: pub}
}

// FlightSearch 는 사용자 검색 조건이다. 빈 값은 조건에서 빠진다.
type FlightSearch struct {
	Departure   string
	Destination string
	Airline     string
}

// ListAvailable 은 출발 시각 순 전체 항공편이다.
func (s *FlightService) ListAvailable(ctx context.Context, p *auth.Principal, page pagination.Request) (pagination.Page[models.Flight], error) {
	return s.Search(ctx, p, FlightSearch{}, page)
}

// Search 는 로그인한 일반 사용자라면 이미 예약한 항공편을 제외하고 조회한다.
func (s *FlightService) Search(ctx context.Context, p *auth.Principal, q FlightSearch, page pagination.Request) (pagination.Page[models.Flight], error) {
	f := repositories.FlightFilter{
		Departure:   q.Departure,
		Destination: q.Destination,
		Airline:     q.Airline,
	}
	if p != nil && !p.IsAdmin() {
		f.ExcludeOrderedBy = p.Username
	}
	return s.repo.Flights().List(ctx, f, page)
}

func (s *FlightService) Get(ctx context.Context, flightNumber string) (models.Flight, error) {
	flight, err := s.repo.Flights().GetByNumber(ctx, flightNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.Flight{}, ErrFlightNotFound
		}
		return models.Flight{}, err
	}
	return flight, nil
}

// Purchase 는 좌석 하나를 예약한다. 항공편 행을 잠근 뒤 주문 추가와 좌석 차감을
// 한 트랜잭션으로 처리한다.
func (s *FlightService) Purchase(ctx context.Context, p *auth.Principal, flightNumber string) (models.Order, error) {
	if p == nil {
		return models.Order{}, ErrLoginRequired
	}
	if flightNumber == "" {
		return models.Order{}, ErrInvalidInput
	}

	var (
		order     models.Order
		remaining int
	)
	err := s.repo.WithTx(ctx, func(ctx context.Context, tx repositories.Repository) error {
		flight, err := tx.Flights().LockByNumber(ctx, flightNumber)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrFlightNotFound
			}
			return err
		}
		if flight.AvailableSeat <= 0 {
			return ErrNoAvailableSeat
		}

		order, err = tx.Orders().Create(ctx, p.Username, flightNumber)
		if err != nil {
			if errors.Is(err, repositories.ErrDuplicate) {
				return ErrAlreadyOrdered.with(err)
			}
			return err
		}
		if err := tx.Flights().AdjustAvailableSeats(ctx, flightNumber, -1); err != nil {
			if errors.Is(err, repositories.ErrConstraint) {
				return ErrNoAvailableSeat.with(err)
			}
			return err
		}
		remaining = flight.AvailableSeat - 1
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}

	publish(ctx, s.pub, &events.OrderPlacedEvent{
		BaseEvent:      newBase(ctx, events.OrderPlaced),
		Username:       order.Username,
		FlightNumber:   order.FlightNumber,
		AvailableSeats: remaining,
	})
	return order, nil
}
