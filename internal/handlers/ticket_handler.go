package handlers

import (
	"net/http"

	"github.com/bhagyamlottery/agency-backend/internal/models"
	"github.com/bhagyamlottery/agency-backend/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const ticketImagesField = "images"

// TicketHandler handles ticket HTTP requests
type TicketHandler struct {
	ticketService services.TicketService
	files         FileStore
}

// NewTicketHandler creates a new TicketHandler
func NewTicketHandler(ticketService services.TicketService, files FileStore) *TicketHandler {
	return &TicketHandler{
		ticketService: ticketService,
		files:         files,
	}
}

// GetTickets handles GET /api/tickets
func (h *TicketHandler) GetTickets(c *gin.Context) {
	tickets, err := h.ticketService.ListTickets(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, tickets)
}

// GetTicket handles GET /api/tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondMessage(c, http.StatusNotFound, "Ticket not found")
		return
	}

	ticket, err := h.ticketService.GetTicket(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Ticket not found")
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// CreateTicket handles POST /api/tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var form models.TicketForm
	if err := c.ShouldBind(&form); err != nil {
		respondMessage(c, http.StatusBadRequest, msgInvalidData)
		return
	}
	if err := checkForm(c, models.TicketFormFields, []string{ticketImagesField}); err != nil {
		respondError(c, err, "")
		return
	}

	images, err := saveFiles(h.files, formFiles(c, ticketImagesField), ticketImagesField)
	if err != nil {
		respondError(c, uploadError(err), "")
		return
	}

	ticket, err := h.ticketService.CreateTicket(c.Request.Context(), form.ToTicket(images))
	if err != nil {
		removeFiles(h.files, images)
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, ticket)
}

// DeleteTicket handles DELETE /api/tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondMessage(c, http.StatusNotFound, "Ticket not found")
		return
	}

	ticket, err := h.ticketService.DeleteTicket(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Ticket not found")
		return
	}
	removeFiles(h.files, ticket.Images)
	respondMessage(c, http.StatusOK, "Ticket removed")
}
