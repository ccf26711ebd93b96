package repositories

import (
	"context"
	"fmt"

	"flight-booking/listquery"
	"flight-booking/models"
	"flight-booking/pagination"
)

// userColumns 는 사용자 목록 필터에 허용되는 컬럼이다. password 는 포함하지 않는다.
var userColumns = listquery.Columns("username", "first_name", "last_name", "is_active")

// UserFilter 는 관리자 사용자 목록/검색 조건이다. 빈 값은 무시된다.
type UserFilter struct {
	Username  string
	FirstName string
	LastName  string
	IsActive  *bool
}

func (f UserFilter) filters() []listquery.Filter {
	return []listquery.Filter{
		listquery.Equal("username", f.Username),
		listquery.Equal("first_name", f.FirstName),
		listquery.Equal("last_name", f.LastName),
		listquery.Equal("is_active", f.IsActive),
	}
}

type userRepo struct {
	db DBTX
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (models.User, error) {
	return getOne[models.User](ctx, r.db, `SELECT * FROM auth_user WHERE id = $1`, id)
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (models.User, error) {
	return getOne[models.User](ctx, r.db, `SELECT * FROM auth_user WHERE username = $1`, username)
}

// Create inserts u and fills in its generated id and date_joined.
func (r *userRepo) Create(ctx context.Context, u *models.User) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO auth_user (username, password, is_superuser, first_name, last_name, phone_number, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, date_joined`,
		u.Username, u.Password, u.IsSuperuser, u.FirstName, u.LastName, u.PhoneNumber, u.IsActive,
	).Scan(&u.ID, &u.DateJoined)
	if err != nil {
		return fmt.Errorf("insert user %s: %w", u.Username, mapError(err))
	}
	return nil
}

func (r *userRepo) Update(ctx context.Context, u models.User) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE auth_user
		SET username = $2, password = $3, first_name = $4, last_name = $5, phone_number = $6
		WHERE id = $1`,
		u.ID, u.Username, u.Password, u.FirstName, u.LastName, u.PhoneNumber,
	)
	if err != nil {
		return fmt.Errorf("update user %d: %w", u.ID, mapError(err))
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepo) SetActive(ctx context.Context, id int64, active bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE auth_user SET is_active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("set user %d active=%t: %w", id, active, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// List 는 관리자 화면 정렬(슈퍼유저 우선)로 사용자 목록을 조회한다.
func (r *userRepo) List(ctx context.Context, f UserFilter, page pagination.Request) (pagination.Page[models.User], error) {
	return listPage[models.User](ctx, r.db, listquery.Spec{
		From:    "auth_user",
		OrderBy: "is_superuser DESC, id",
		Allowed: userColumns,
		Filters: f.filters(),
	}, page)
}
