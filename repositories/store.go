package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"flight-booking/listquery"
	"flight-booking/models"
	"flight-booking/pagination"
)

var (
	// ErrNotFound 는 조회/수정/삭제 대상 행이 없을 때 반환된다.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate 는 unique 제약 위반 시 반환된다.
	ErrDuplicate = errors.New("duplicate record")
	// ErrConstraint 는 CHECK 제약 위반(예: available_seat < 0) 시 반환된다.
	ErrConstraint = errors.New("constraint violation")
)

// DBTX 는 *pgxpool.Pool 과 pgx.Tx 가 공통으로 제공하는 실행 인터페이스다.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
	Create(ctx context.Context, u *models.User) error
	Update(ctx context.Context, u models.User) error
	SetActive(ctx context.Context, id int64, active bool) error
	List(ctx context.Context, f UserFilter, page pagination.Request) (pagination.Page[models.User], error)
}

type FlightRepository interface {
	GetByNumber(ctx context.Context, number string) (models.Flight, error)
	// LockByNumber 는 트랜잭션 안에서 SELECT ... FOR UPDATE 로 행을 잠근다.
	LockByNumber(ctx context.Context, number string) (models.Flight, error)
	Create(ctx context.Context, f *models.Flight) error
	Update(ctx context.Context, f models.Flight) error
	AdjustAvailableSeats(ctx context.Context, number string, delta int) error
	Delete(ctx context.Context, number string) error
	List(ctx context.Context, f FlightFilter, page pagination.Request) (pagination.Page[models.Flight], error)
}

type OrderRepository interface {
	Create(ctx context.Context, username, flightNumber string) (models.Order, error)
	Delete(ctx context.Context, username, flightNumber string) error
	CountByFlight(ctx context.Context, flightNumber string) (int64, error)
	RenameUser(ctx context.Context, from, to string) (int64, error)
	List(ctx context.Context, f OrderFilter, page pagination.Request) (pagination.Page[models.OrderDetail], error)
}

// Repository 는 서비스 계층이 사용하는 저장소 묶음이다.
// WithTx 로 얻은 Repository 는 같은 트랜잭션을 공유한다.
type Repository interface {
	Users() UserRepository
	Flights() FlightRepository
	Orders() OrderRepository
	WithTx(ctx context.Context, fn func(ctx context.Context, tx Repository) error) error
}

// Store 는 pgx 기반 Repository 구현체다.
type Store struct {
	pool *pgxpool.Pool
	db   DBTX
	inTx bool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool, db: pool}
}

func (s *Store) Users() UserRepository     { return &userRepo{db: s.db} }
func (s *Store) Flights() FlightRepository { return &flightRepo{db: s.db} }
func (s *Store) Orders() OrderRepository   { return &orderRepo{db: s.db} }

// WithTx 는 요청 단위 트랜잭션을 연다. fn 이 에러 없이 끝난 경우에만 커밋하며,
// 그 외 모든 경로(에러, panic 포함)에서는 deferred Rollback 으로 폐기된다.
// 이미 트랜잭션 안이라면 같은 트랜잭션으로 fn 을 실행한다.
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context, tx Repository) error) error {
	if s.inTx {
		return fn(ctx, s)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(ctx, &Store{pool: s.pool, db: tx, inTx: true}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Ping 은 헬스체크용이다.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// listPage 는 listquery 로 COUNT/페이지 쿼리를 만들고 실행해 Page 로 묶는다.
func listPage[T any](ctx context.Context, db DBTX, spec listquery.Spec, req pagination.Request) (pagination.Page[T], error) {
	q, err := listquery.Build(spec, req)
	if err != nil {
		return pagination.Page[T]{}, err
	}

	var total int64
	if err := db.QueryRow(ctx, q.Count.SQL, q.Count.Args...).Scan(&total); err != nil {
		return pagination.Page[T]{}, fmt.Errorf("count %s: %w", spec.From, err)
	}

	rows, err := db.Query(ctx, q.Page.SQL, q.Page.Args...)
	if err != nil {
		return pagination.Page[T]{}, fmt.Errorf("list %s: %w", spec.From, err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return pagination.Page[T]{}, fmt.Errorf("scan %s: %w", spec.From, err)
	}
	return pagination.NewPage(items, req, total), nil
}

// getOne 은 단건 조회 결과를 T 로 매핑한다. 행이 없으면 ErrNotFound.
func getOne[T any](ctx context.Context, db DBTX, sql string, args ...any) (T, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		var zero T
		return zero, err
	}
	out, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		var zero T
		return zero, mapError(err)
	}
	return out, nil
}

// mapError 는 드라이버 에러를 저장소 공통 에러로 바꾼다. 원본 에러는 %w 로 유지한다.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
		case "23514":
			return fmt.Errorf("%w: %s", ErrConstraint, pgErr.ConstraintName)
		}
	}
	return err
}
