package models

import (
	"time"
)

type Note struct {
	ID       string    `json:"id" db:"id"`
	Name     string    `json:"name" db:"name"`
	Modified time.Time `json:"modified" db:"modified"`
	FolderID string    `json:"noteId" db:"folder_id"` // owning folder (JSON uses noteId for API compatibility)
	Content  string    `json:"content" db:"content"`
}
