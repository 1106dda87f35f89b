package entity

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User represents a registered account that can publish and rate sauces.
type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// Claims are the JWT claims carried by an access token.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}
