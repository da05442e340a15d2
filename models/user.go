package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"unique;not null" json:"username" validate:"required"`
	Password  string    `gorm:"not null" json:"password,omitempty" validate:"required"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type UserClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}
