package models

import "time"

type User struct {
	UserID        string    `bson:"userid" json:"userid"`
	Name          string    `bson:"name" json:"name"`
	Email         string    `bson:"email" json:"email"`
	Role          string    `bson:"role" json:"role"`
	Password      string    `bson:"password" json:"-"`
	RefreshToken  string    `bson:"refresh_token,omitempty" json:"-"`
	RefreshExpiry time.Time `bson:"refresh_expiry,omitempty" json:"-"`
	LastLogin     time.Time `bson:"last_login,omitempty" json:"last_login,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}
