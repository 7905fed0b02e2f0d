package entity

import (
	"database/sql"
	"time"
)

type User struct {
	ID        int64          `db:"id" json:"id"`
	Username  string         `db:"username" json:"username"`
	Email     string         `db:"email" json:"email"`
	Password  string         `db:"password" json:"-"`
	FullName  string         `db:"full_name" json:"full_name"`
	Phone     sql.NullString `db:"phone" json:"phone,omitempty"`
	Address   sql.NullString `db:"address" json:"address,omitempty"`
	BirthDate sql.NullTime   `db:"birth_date" json:"birth_date,omitempty"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time     `db:"updated_at" json:"updated_at,omitempty"`
}
