package handlers

import (
	"net/http"

	"github.com/bhagyamlottery/agency-backend/internal/models"
	"github.com/bhagyamlottery/agency-backend/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const resultFileField = "file"

// ResultHandler handles lottery result HTTP requests
type ResultHandler struct {
	resultService services.ResultService
	files         FileStore
}

// NewResultHandler creates a new ResultHandler
func NewResultHandler(resultService services.ResultService, files FileStore) *ResultHandler {
	return &ResultHandler{
		resultService: resultService,
		files:         files,
	}
}

// GetResults handles GET /api/results
func (h *ResultHandler) GetResults(c *gin.Context) {
	results, err := h.resultService.ListResults(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, results)
}

// GetResult handles GET /api/results/:id
func (h *ResultHandler) GetResult(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondMessage(c, http.StatusNotFound, "Result not found")
		return
	}

	result, err := h.resultService.GetResult(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Result not found")
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreateResult handles POST /api/results
func (h *ResultHandler) CreateResult(c *gin.Context) {
	var form models.ResultForm
	if err := c.ShouldBind(&form); err != nil {
		respondMessage(c, http.StatusBadRequest, msgInvalidData)
		return
	}
	if err := checkForm(c, models.ResultFormFields, []string{resultFileField}); err != nil {
		respondError(c, err, "")
		return
	}

	files := formFiles(c, resultFileField)
	if len(files) > 1 {
		respondMessage(c, http.StatusBadRequest, msgInvalidData)
		return
	}
	links, err := saveFiles(h.files, files, resultFileField)
	if err != nil {
		respondError(c, uploadError(err), "")
		return
	}
	var link string
	if len(links) == 1 {
		link = links[0]
	}

	result, err := h.resultService.CreateResult(c.Request.Context(), form.ToResult(link))
	if err != nil {
		removeFiles(h.files, links)
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, result)
}

// DeleteResult handles DELETE /api/results/:id
func (h *ResultHandler) DeleteResult(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondMessage(c, http.StatusNotFound, "Result not found")
		return
	}

	result, err := h.resultService.DeleteResult(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Result not found")
		return
	}
	removeFiles(h.files, []string{result.Link})
	respondMessage(c, http.StatusOK, "Result removed")
}
