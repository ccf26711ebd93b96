package models

import "time"

// User is an account row.
// Table: auth_user
type User struct {
	ID          int64     `db:"id" json:"id"`
	Username    string    `db:"username" json:"username"`
	Password    string    `db:"password" json:"-"`
	IsSuperuser bool      `db:"is_superuser" json:"is_superuser"`
	FirstName   string    `db:"first_name" json:"first_name"`
	LastName    string    `db:"last_name" json:"last_name"`
	PhoneNumber string    `db:"phone_number" json:"phone_number"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	DateJoined  time.Time `db:"date_joined" json:"date_joined"`
}
