package entity

import "github.com/google/uuid"

type TheatreOwner struct {
	Base
	UserID uuid.UUID `db:"user_id" json:"user_id"`
	Name   string    `db:"name" json:"name"`
	Email  string    `db:"email" json:"email"`
}
