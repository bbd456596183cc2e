package models

import "time"

type Track struct {
	Name        string `gorm:"size:100;primary_key" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"created_at"`
}

// Strand is a sub-specialization within a track. Tracks like Sports or
// Arts and Design carry no strands at all.
type Strand struct {
	Name  string `gorm:"size:100;primary_key" json:"name"`
	Track string `gorm:"size:100;primary_key" json:"track"`

	CreatedAt time.Time `json:"created_at"`
}
