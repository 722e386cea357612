package models

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultFormToResult(t *testing.T) {
	form := ResultForm{Name: " Karunya ", Date: "2025-01-18", Code: "KR-689", FirstPrize: "KA 123456", Prize: "80 Lakhs", IsJackpot: "true"}
	result := form.ToResult("/uploads/file-1.pdf")

	assert.Equal(t, " Karunya ", result.Name, "submitted values are kept as sent")
	assert.True(t, result.IsJackpot)
	assert.Equal(t, "/uploads/file-1.pdf", result.Link)

	for _, v := range []string{"", "on", "1", "TRUE"} {
		form.IsJackpot = v
		assert.False(t, form.ToResult("").IsJackpot, v)
	}
}

func TestTicketFormToTicket(t *testing.T) {
	ticket := TicketForm{Name: "Christmas Bumper", Code: "BR-101", Date: "2025-01-22", Price: "400", FirstPrize: "20 Crore"}.ToTicket(nil)

	assert.Equal(t, TicketTypeDaily, ticket.Type)
	assert.NotNil(t, ticket.Images)
	assert.Empty(t, ticket.Images)
	assert.False(t, ticket.IsFeatured)
}

func TestCheckFields(t *testing.T) {
	assert.NoError(t, CheckFields(url.Values{"name": {"x"}, "isJackpot": {"true"}}, ResultFormFields))
	assert.EqualError(t, CheckFields(url.Values{"winner": {"x"}}, ResultFormFields), `unknown field "winner"`)
}

func TestTicketTypeValid(t *testing.T) {
	assert.True(t, TicketTypeBumper.Valid())
	assert.False(t, TicketType("monthly").Valid())
}
