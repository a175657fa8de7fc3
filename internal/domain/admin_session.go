package domain

import "time"

type AdminSession struct {
	Token     string    `bson:"_id" json:"token"`
	Username  string    `bson:"username" json:"username"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
}

func (s AdminSession) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
