package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Result represents a published lottery draw outcome
type Result struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name       string             `bson:"name" json:"name" validate:"notblank"`
	Date       string             `bson:"date" json:"date" validate:"notblank"` // YYYY-MM-DD
	Code       string             `bson:"code" json:"code" validate:"notblank"` // e.g. SS-402
	FirstPrize string             `bson:"firstPrize" json:"firstPrize" validate:"notblank"`
	Prize      string             `bson:"prize" json:"prize" validate:"notblank"`
	IsJackpot  bool               `bson:"isJackpot" json:"isJackpot"`
	Link       string             `bson:"link,omitempty" json:"link,omitempty"` // uploaded PDF/image
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}
