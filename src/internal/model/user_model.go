package model

import "time"

type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=6,max=100"`
	FullName string `json:"full_name" validate:"required,max=100"`
}

type LoginUserRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required,max=100"`
}

type UpdateProfileRequest struct {
	UserID    int64  `json:"-" validate:"required"`
	FullName  string `json:"full_name,omitempty" validate:"max=100"`
	Phone     string `json:"phone,omitempty" validate:"max=30"`
	Address   string `json:"address,omitempty" validate:"max=255"`
	BirthDate string `json:"birth_date,omitempty"`
}

type GetUserRequest struct {
	ID int64 `json:"id" validate:"required"`
}

type UserResponse struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	Phone     string     `json:"phone,omitempty"`
	Address   string     `json:"address,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
