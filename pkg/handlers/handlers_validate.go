package handlers

import (
	"net/http"

	"github.com/arnavshah/roster-api-go/pkg/models"
	"github.com/gin-gonic/gin"
)

// ValidateInput checks a roster request without scheduling it
func (h *Handler) ValidateInput(c *gin.Context) {
	var input models.RosterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	p, err := h.Roster.Prepare(input)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	requiredPerWeek := 0
	for _, n := range p.Model.Plan {
		requiredPerWeek += n
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"stats": gin.H{
			"year":              p.Year,
			"month":             p.Month,
			"worker_count":      len(p.Model.Workers),
			"days_in_month":     p.Calendar.DaysInMonth,
			"required_per_week": requiredPerWeek,
		},
	})
}
