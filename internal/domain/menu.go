package domain

import "time"

// BusinessInfo is a singleton record edited from the admin portal. It is
// created lazily with DefaultBusinessName the first time anything reads it
// and always lives at BusinessInfoID, so concurrent first reads upsert the
// same row instead of each inserting one.
type BusinessInfo struct {
	ID        uint64    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Hours     string    `json:"hours"`
	LogoURL   string    `json:"logoUrl"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

const DefaultBusinessName = "My Restaurant"

// BusinessInfoID is the fixed primary key of the singleton row.
const BusinessInfoID uint64 = 1

type MenuCategory struct {
	ID        uint64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string     `json:"name" gorm:"not null"`
	SortOrder int        `json:"sortOrder" gorm:"default:0"`
	Items     []MenuItem `json:"items,omitempty" gorm:"foreignKey:MenuCategoryID"`
	CreatedAt time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
}

type MenuItem struct {
	ID             uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	MenuCategoryID uint64    `json:"menuCategoryId" gorm:"not null;index"`
	Name           string    `json:"name" gorm:"not null"`
	Description    string    `json:"description"`
	Price          float64   `json:"price" gorm:"not null"`
	ImageURL       string    `json:"imageUrl"`
	Visible        bool      `json:"visible" gorm:"default:true"`
	SortOrder      int       `json:"sortOrder" gorm:"default:0"`
	CreatedAt      time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}
