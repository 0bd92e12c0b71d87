package model

import "time"

type PantryItem struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	Name      string     `json:"name"`
	Quantity  string     `json:"quantity"`
	Unit      string     `json:"unit"`
	ExpiresOn *time.Time `json:"expires_on"`
	CreatedAt time.Time  `json:"created_at"`
}
