package models

import "time"

// Review is a scored comment. Rating and Hamada are independent 1 to 5 scores.
type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Rating    int       `json:"rating" gorm:"not null"`
	Hamada    int       `json:"hamada" gorm:"not null"`
	Comment   string    `json:"comment" gorm:"type:varchar(500);not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *Review) GetID() uint   { return r.ID }
func (r *Review) SetID(id uint) { r.ID = id }
