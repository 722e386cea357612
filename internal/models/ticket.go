package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TicketType is the draw category a ticket belongs to
type TicketType string

const (
	TicketTypeDaily  TicketType = "daily"
	TicketTypeWeekly TicketType = "weekly"
	TicketTypeBumper TicketType = "bumper"
)

// TicketTypes lists every valid ticket type
var TicketTypes = []TicketType{TicketTypeDaily, TicketTypeWeekly, TicketTypeBumper}

// Valid reports whether t is one of the known ticket types
func (t TicketType) Valid() bool {
	for _, known := range TicketTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Ticket represents an upcoming lottery ticket offering
type Ticket struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name       string             `bson:"name" json:"name" validate:"notblank"`
	Code       string             `bson:"code" json:"code" validate:"notblank"` // e.g. WW, SS
	Date       string             `bson:"date" json:"date" validate:"notblank"` // draw date, YYYY-MM-DD
	Type       TicketType         `bson:"type" json:"type" validate:"required,oneof=daily weekly bumper"`
	Price      string             `bson:"price" json:"price" validate:"notblank"`
	FirstPrize string             `bson:"firstPrize" json:"firstPrize" validate:"notblank"`
	IsFeatured bool               `bson:"isFeatured" json:"isFeatured"`
	Images     []string           `bson:"images" json:"images"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}
