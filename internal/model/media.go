package model

import "time"

// Media records an uploaded image hosted in object storage. Posts and
// user statuses reference the object's URL, not this record, so a media
// row can be deleted independently.
type Media struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	StoragePath string    `json:"storage_path"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
}
