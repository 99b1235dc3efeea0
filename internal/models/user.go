package models

import (
	"time"
)

// UserDB represents a user record in the database
type UserDB struct {
	ID           int64     `json:"id" db:"id"`                 // Primary key
	Name         string    `json:"name" db:"name"`             // Display name
	Email        string    `json:"email" db:"email"`           // Unique, lowercased email
	PasswordHash string    `json:"-" db:"password_hash"`       // Password digest, never serialized
	Country      *string   `json:"country" db:"country"`       // Optional country
	Hobby        *string   `json:"hobby" db:"hobby"`           // Optional hobby
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// UserSummary is the read-only owner info embedded into cat responses
// swagger:model UserSummary
type UserSummary struct {
	ID      int64   `json:"id" db:"id"`
	Name    string  `json:"name" db:"name"`
	Country *string `json:"country" db:"country"`
}

// UserResponse is returned by registration and login
// swagger:model UserResponse
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Country   *string   `json:"country"`
	Hobby     *string   `json:"hobby"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserDetailResponse is returned by the user detail endpoint
// swagger:model UserDetailResponse
type UserDetailResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Country   *string   `json:"country"`
	Hobby     *string   `json:"hobby"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse strips the digest from a stored user.
func NewUserResponse(u *UserDB) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Country:   u.Country,
		Hobby:     u.Hobby,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// NewUserDetailResponse builds the public detail view of a user.
func NewUserDetailResponse(u *UserDB) UserDetailResponse {
	return UserDetailResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Country:   u.Country,
		Hobby:     u.Hobby,
		CreatedAt: u.CreatedAt,
	}
}
