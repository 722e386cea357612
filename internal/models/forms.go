package models

import (
	"fmt"
	"net/url"
)

// ResultForm is the multipart form accepted by POST /api/results.
// The uploaded file travels separately in the "file" part.
type ResultForm struct {
	Name       string `form:"name" binding:"required"`
	Date       string `form:"date" binding:"required"`
	Code       string `form:"code" binding:"required"`
	FirstPrize string `form:"firstPrize" binding:"required"`
	Prize      string `form:"prize" binding:"required"`
	IsJackpot  string `form:"isJackpot"`
}

// ResultFormFields are the only value fields a result form may carry
var ResultFormFields = []string{"name", "date", "code", "firstPrize", "prize", "isJackpot"}

// ToResult builds the document to persist with the values as submitted; link is the stored file URL or empty
func (f ResultForm) ToResult(link string) *Result {
	return &Result{
		Name:       f.Name,
		Date:       f.Date,
		Code:       f.Code,
		FirstPrize: f.FirstPrize,
		Prize:      f.Prize,
		IsJackpot:  f.IsJackpot == "true",
		Link:       link,
	}
}

// TicketForm is the multipart form accepted by POST /api/tickets.
// Images travel separately as repeated "images" parts.
type TicketForm struct {
	Name       string `form:"name" binding:"required"`
	Code       string `form:"code" binding:"required"`
	Date       string `form:"date" binding:"required"`
	Type       string `form:"type"`
	Price      string `form:"price" binding:"required"`
	FirstPrize string `form:"firstPrize" binding:"required"`
	IsFeatured string `form:"isFeatured"`
}

// TicketFormFields are the only value fields a ticket form may carry
var TicketFormFields = []string{"name", "code", "date", "type", "price", "firstPrize", "isFeatured"}

// ToTicket builds the document to persist; an empty type defaults to daily
func (f TicketForm) ToTicket(images []string) *Ticket {
	ticketType := TicketType(f.Type)
	if ticketType == "" {
		ticketType = TicketTypeDaily
	}
	if images == nil {
		images = []string{}
	}
	return &Ticket{
		Name:       f.Name,
		Code:       f.Code,
		Date:       f.Date,
		Type:       ticketType,
		Price:      f.Price,
		FirstPrize: f.FirstPrize,
		IsFeatured: f.IsFeatured == "true",
		Images:     images,
	}
}

// CheckFields returns an error naming the first field in values that is not allowed
func CheckFields(values url.Values, allowed []string) error {
	known := make(map[string]struct{}, len(allowed))
	for _, name := range allowed {
		known[name] = struct{}{}
	}
	for name := range values {
		if _, ok := known[name]; !ok {
			return fmt.Errorf("unknown field %q", name)
		}
	}
	return nil
}
