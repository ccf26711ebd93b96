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

// OrderService 는 로그인 사용자 본인의 예약 목록/검색/취소를 담당한다.
type OrderService struct {
	repo repositories.Repository
	pub  Publisher
}

func NewOrderService(repo repositories.Repository, pub Publisher) *OrderService {
	return &OrderService{repo: repo, pub: pub}
}

// OrderSearch 는 내 예약 검색 조건이다.
type OrderSearch struct {
	Departure   string
	Destination string
	Airline     string
}

func (s *OrderService) ListMine(ctx context.Context, p *auth.Principal, page pagination.Request) (pagination.Page[models.OrderDetail], error) {
	return s.SearchMine(ctx, p, OrderSearch{}, page)
}

func (s *OrderService) SearchMine(ctx context.Context, p *auth.Principal, q OrderSearch, page pagination.Request) (pagination.Page[models.OrderDetail], error) {
	if p == nil {
		return pagination.Page[models.OrderDetail]{}, ErrLoginRequired
	}
	return s.repo.Orders().List(ctx, repositories.OrderFilter{
		Username:    p.Username,
		Departure:   q.Departure,
		Destination: q.Destination,
		Airline:     q.Airline,
	}, page)
}

// Cancel 은 본인 예약을 취소하고 좌석을 돌려놓는다.
func (s *OrderService) Cancel(ctx context.Context, p *auth.Principal, flightNumber string) error {
	if p == nil {
		return ErrLoginRequired
	}
	if flightNumber == "" {
		return ErrInvalidInput
	}
	if err := releaseSeat(ctx, s.repo, p.Username, flightNumber); err != nil {
		return err
	}

	publish(ctx, s.pub, &events.OrderCancelledEvent{
		BaseEvent:    newBase(ctx, events.OrderCancelled),
		Username:     p.Username,
		FlightNumber: flightNumber,
		Actor:        p.Username,
	})
	return nil
}

// releaseSeat 는 주문 삭제와 좌석 복구를 한 트랜잭션으로 처리한다.
func releaseSeat(ctx context.Context, repo repositories.Repository, username, flightNumber string) error {
	return repo.WithTx(ctx, func(ctx context.Context, tx repositories.Repository) error {
		if err := tx.Orders().Delete(ctx, username, flightNumber); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if err := tx.Flights().AdjustAvailableSeats(ctx, flightNumber, 1); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrFlightNotFound
			}
			return err
		}
		return nil
	})
}
