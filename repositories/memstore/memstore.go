// Package memstore 는 테스트용 메모리 저장소다. repositories.Repository 와
// 세션 저장소 인터페이스를 구현하며 동시 사용에는 안전하지 않다.
package memstore

import (
	"context"
	"sort"
	"time"

	"flight-booking/listquery"
	"flight-booking/models"
	"flight-booking/pagination"
	"flight-booking/repositories"
)

// Store 는 WithTx 의 fn 이 실패하면 시작 시점 스냅샷으로 되돌린다.
type Store struct {
	users      map[int64]models.User
	flights    map[string]models.Flight
	orders     []models.Order
	nextUserID int64
	nextID     int64
}

func New() *Store {
	return &Store{
		users:   map[int64]models.User{},
		flights: map[string]models.Flight{},
	}
}

func (s *Store) Users() repositories.UserRepository     { return users{s} }
func (s *Store) Flights() repositories.FlightRepository { return flights{s} }
func (s *Store) Orders() repositories.OrderRepository   { return orders{s} }

func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context, tx repositories.Repository) error) error {
	savedUsers := make(map[int64]models.User, len(s.users))
	for k, v := range s.users {
		savedUsers[k] = v
	}
	savedFlights := make(map[string]models.Flight, len(s.flights))
	for k, v := range s.flights {
		savedFlights[k] = v
	}
	savedOrders := append([]models.Order(nil), s.orders...)

	if err := fn(ctx, s); err != nil {
		s.users, s.flights, s.orders = savedUsers, savedFlights, savedOrders
		return err
	}
	return nil
}

// Ping 은 항상 성공한다.
func (s *Store) Ping(context.Context) error { return nil }

// AddUser 는 id 를 부여해 사용자를 넣는다.
func (s *Store) AddUser(u models.User) models.User {
	s.nextUserID++
	u.ID = s.nextUserID
	if u.DateJoined.IsZero() {
		u.DateJoined = time.Now()
	}
	s.users[u.ID] = u
	return u
}

// PutUser 는 기존 사용자 행을 그대로 덮어쓴다.
func (s *Store) PutUser(u models.User) { s.users[u.ID] = u }

func (s *Store) User(id int64) models.User { return s.users[id] }

// AddFlight 는 Seoul → Tokyo, 2시간짜리 항공편을 넣는다.
func (s *Store) AddFlight(number string, dept time.Time, total, available int) models.Flight {
	s.nextID++
	f := models.Flight{
		ID: s.nextID, FlightNumber: number, Departure: "Seoul", Destination: "Tokyo",
		DeptTime: dept, ArrvTime: dept.Add(2 * time.Hour), Airline: "KE",
		Price: 100, TotalSeat: total, AvailableSeat: available,
	}
	s.flights[number] = f
	return f
}

func (s *Store) Flight(number string) models.Flight { return s.flights[number] }

func (s *Store) AddOrder(username, number string) models.Order {
	s.nextID++
	o := models.Order{ID: s.nextID, Username: username, FlightNumber: number, CreatedAt: time.Now()}
	s.orders = append(s.orders, o)
	return o
}

func (s *Store) HasOrder(username, number string) bool {
	for _, o := range s.orders {
		if o.Username == username && o.FlightNumber == number {
			return true
		}
	}
	return false
}

func pageOf[T any](items []T, req pagination.Request) (pagination.Page[T], error) {
	if req.Number < 1 {
		return pagination.Page[T]{}, &listquery.InvalidPageError{Page: req.Number}
	}
	total := int64(len(items))
	start := req.Offset()
	if start > len(items) {
		start = len(items)
	}
	end := start + req.PageSize()
	if end > len(items) {
		end = len(items)
	}
	return pagination.NewPage(items[start:end], req, total), nil
}

type users struct{ s *Store }

func (r users) GetByID(_ context.Context, id int64) (models.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return models.User{}, repositories.ErrNotFound
	}
	return u, nil
}

func (r users) GetByUsername(_ context.Context, username string) (models.User, error) {
	for _, u := range r.s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, repositories.ErrNotFound
}

func (r users) Create(ctx context.Context, u *models.User) error {
	if _, err := r.GetByUsername(ctx, u.Username); err == nil {
		return repositories.ErrDuplicate
	}
	*u = r.s.AddUser(*u)
	return nil
}

func (r users) Update(_ context.Context, u models.User) error {
	cur, ok := r.s.users[u.ID]
	if !ok {
		return repositories.ErrNotFound
	}
	for _, other := range r.s.users {
		if other.ID != u.ID && other.Username == u.Username {
			return repositories.ErrDuplicate
		}
	}
	// is_superuser/is_active/date_joined 은 Update 대상이 아니다.
	u.IsSuperuser, u.IsActive, u.DateJoined = cur.IsSuperuser, cur.IsActive, cur.DateJoined
	r.s.users[u.ID] = u
	return nil
}

func (r users) SetActive(_ context.Context, id int64, active bool) error {
	u, ok := r.s.users[id]
	if !ok {
		return repositories.ErrNotFound
	}
	u.IsActive = active
	r.s.users[id] = u
	return nil
}

func (r users) List(_ context.Context, f repositories.UserFilter, page pagination.Request) (pagination.Page[models.User], error) {
	var out []models.User
	for _, u := range r.s.users {
		if f.Username != "" && u.Username != f.Username {
			continue
		}
		if f.FirstName != "" && u.FirstName != f.FirstName {
			continue
		}
		if f.LastName != "" && u.LastName != f.LastName {
			continue
		}
		if f.IsActive != nil && u.IsActive != *f.IsActive {
			continue
		}
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsSuperuser != out[j].IsSuperuser {
			return out[i].IsSuperuser
		}
		return out[i].ID < out[j].ID
	})
	return pageOf(out, page)
}

type flights struct{ s *Store }

func (r flights) GetByNumber(_ context.Context, number string) (models.Flight, error) {
	f, ok := r.s.flights[number]
	if !ok {
		return models.Flight{}, repositories.ErrNotFound
	}
	return f, nil
}

func (r flights) LockByNumber(ctx context.Context, number string) (models.Flight, error) {
	return r.GetByNumber(ctx, number)
}

func (r flights) Create(_ context.Context, f *models.Flight) error {
	if _, ok := r.s.flights[f.FlightNumber]; ok {
		return repositories.ErrDuplicate
	}
	r.s.nextID++
	f.ID = r.s.nextID
	r.s.flights[f.FlightNumber] = *f
	return nil
}

func (r flights) Update(_ context.Context, f models.Flight) error {
	cur, ok := r.s.flights[f.FlightNumber]
	if !ok {
		return repositories.ErrNotFound
	}
	f.ID = cur.ID
	r.s.flights[f.FlightNumber] = f
	return nil
}

func (r flights) AdjustAvailableSeats(_ context.Context, number string, delta int) error {
	f, ok := r.s.flights[number]
	if !ok {
		return repositories.ErrNotFound
	}
	if f.AvailableSeat+delta < 0 {
		return repositories.ErrConstraint
	}
	f.AvailableSeat += delta
	r.s.flights[number] = f
	return nil
}

func (r flights) Delete(_ context.Context, number string) error {
	if _, ok := r.s.flights[number]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.s.flights, number)
	return nil
}

func (r flights) List(_ context.Context, q repositories.FlightFilter, page pagination.Request) (pagination.Page[models.Flight], error) {
	var out []models.Flight
	for _, f := range r.s.flights {
		if q.FlightNumber != "" && f.FlightNumber != q.FlightNumber {
			continue
		}
		if q.Departure != "" && f.Departure != q.Departure {
			continue
		}
		if q.Destination != "" && f.Destination != q.Destination {
			continue
		}
		if q.Airline != "" && f.Airline != q.Airline {
			continue
		}
		if q.ExcludeOrderedBy != "" && r.s.HasOrder(q.ExcludeOrderedBy, f.FlightNumber) {
			continue
		}
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].DeptTime.Equal(out[j].DeptTime) {
			return out[i].DeptTime.Before(out[j].DeptTime)
		}
		return out[i].ID < out[j].ID
	})
	return pageOf(out, page)
}

type orders struct{ s *Store }

func (r orders) Create(_ context.Context, username, number string) (models.Order, error) {
	if r.s.HasOrder(username, number) {
		return models.Order{}, repositories.ErrDuplicate
	}
	return r.s.AddOrder(username, number), nil
}

func (r orders) Delete(_ context.Context, username, number string) error {
	for i, o := range r.s.orders {
		if o.Username == username && o.FlightNumber == number {
			r.s.orders = append(r.s.orders[:i], r.s.orders[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r orders) CountByFlight(_ context.Context, number string) (int64, error) {
	var n int64
	for _, o := range r.s.orders {
		if o.FlightNumber == number {
			n++
		}
	}
	return n, nil
}

func (r orders) RenameUser(_ context.Context, from, to string) (int64, error) {
	var n int64
	for i := range r.s.orders {
		if r.s.orders[i].Username == from {
			r.s.orders[i].Username = to
			n++
		}
	}
	return n, nil
}

func matchTime(b *repositories.TimeBound, t time.Time) bool {
	if b == nil {
		return true
	}
	if b.Before {
		return t.Before(b.At)
	}
	return t.After(b.At)
}

func (r orders) List(_ context.Context, q repositories.OrderFilter, page pagination.Request) (pagination.Page[models.OrderDetail], error) {
	var out []models.OrderDetail
	for _, o := range r.s.orders {
		f := r.s.flights[o.FlightNumber]
		switch {
		case q.Username != "" && o.Username != q.Username,
			q.FlightNumber != "" && o.FlightNumber != q.FlightNumber,
			q.Departure != "" && f.Departure != q.Departure,
			q.Destination != "" && f.Destination != q.Destination,
			q.Airline != "" && f.Airline != q.Airline,
			!matchTime(q.DeptTime, f.DeptTime),
			!matchTime(q.ArrvTime, f.ArrvTime):
			continue
		}
		out = append(out, models.OrderDetail{
			OrderID: o.ID, Username: o.Username, FlightNumber: o.FlightNumber,
			Departure: f.Departure, Destination: f.Destination,
			DeptTime: f.DeptTime, DeptAirport: f.DeptAirport,
			ArrvTime: f.ArrvTime, ArrvAirport: f.ArrvAirport,
			Airline: f.Airline, Price: f.Price, OrderedAt: o.CreatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].DeptTime.Equal(out[j].DeptTime) {
			return out[i].DeptTime.Before(out[j].DeptTime)
		}
		return out[i].OrderID < out[j].OrderID
	})
	return pageOf(out, page)
}
