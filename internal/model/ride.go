package model

import "time"

// Ride 遊樂設施模型
type Ride struct {
	ID          int       `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Price       int       `json:"price" db:"price"`
	Description *string   `json:"description,omitempty" db:"description"`
	Image       *string   `json:"image,omitempty" db:"image"`
	Capacity    int       `json:"capacity" db:"capacity"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type UpdateRideParams struct {
	Name        *string
	Price       *int
	Description *string
	Image       *string
	Capacity    *int
}
