package models

import (
	"time"
)

// Project represents one portfolio item.
type Project struct {
	ID                  uint       `json:"id" gorm:"primaryKey"`
	Title               string     `json:"title" gorm:"size:255;not null"`
	Category            string     `json:"category" gorm:"size:64;not null;index"`
	Image               string     `json:"image" gorm:"type:text"`
	Images              StringList `json:"images" gorm:"type:text"`
	Description         string     `json:"description" gorm:"type:text;not null"`
	DetailedDescription string     `json:"detailedDescription" gorm:"type:text;not null"`
	Timeline            string     `json:"timeline" gorm:"size:120;not null"`
	Budget              string     `json:"budget" gorm:"size:120;not null"`
	Materials           StringList `json:"materials" gorm:"type:text"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}
