package storage

import "time"

// Статусы модерации отзыва.
const (
	ReviewPending  = "pending"
	ReviewApproved = "approved"
	ReviewRejected = "rejected"
)

type Review struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	Status    string    `json:"status"`
	AvatarURL *string   `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}

// NewReview — входные данные формы отзыва. Статус всегда pending,
// публикация только через модерацию в админке.
type NewReview struct {
	Name   string  `json:"name"`
	Email  *string `json:"email"`
	Phone  *string `json:"phone"`
	Rating int     `json:"rating"`
	Text   string  `json:"text"`
}
