// Package entity defines the domain models for the universe feature.
package entity

import "time"

// Symbol is one ticker in the curated visualization universe.
type Symbol struct {
	ID        uint      `gorm:"primaryKey"`
	Ticker    string    `gorm:"size:20;not null;uniqueIndex"`
	Name      string    `gorm:"size:255;not null;default:''"`
	Sector    string    `gorm:"size:100;not null;default:''"`
	IsActive  bool      `gorm:"not null;default:true"`
	SortKey   int       `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
