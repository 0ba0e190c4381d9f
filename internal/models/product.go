package models

import "time"

// Product represents an item in the catalog.
type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"type:varchar(150);not null"`
	Description string    `json:"description" gorm:"type:varchar(500);not null;default:''"`
	Price       float64   `json:"price" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (p *Product) GetID() uint   { return p.ID }
func (p *Product) SetID(id uint) { p.ID = id }
