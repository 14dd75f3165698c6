package entities

import "time"

type Guide struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `json:"title"`
	Tags      string    `json:"tags"`
	SourceURL string    `json:"source_url"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
