package models

import "time"

type RefreshToken struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	Token     string    `bson:"token"`
	Expires   time.Time `bson:"expires_at"`
	CreatedAt time.Time `bson:"created_at"`
}
