package models

import "time"

const (
	// SlugLength is the length of the public document identifier.
	SlugLength = 10
	// EditTokenLength is the length of the shared edit credential.
	EditTokenLength = 12
)

type Document struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;not null"`
	Content   string    `json:"content" gorm:"type:text;not null;default:''"`
	OwnerID   uint      `json:"ownerId" gorm:"index;not null"`
	Owner     User      `json:"-" gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	EditToken *string   `json:"editToken,omitempty"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// DocumentSummary is the owner-facing list projection.
type DocumentSummary struct {
	Slug      string    `json:"slug"`
	UpdatedAt time.Time `json:"updatedAt"`
}
