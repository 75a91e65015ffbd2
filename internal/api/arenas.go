package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lorehaven/arenagrid/internal/constants"
)

// ListArenas returns all configured arena layouts.
func (h *Handler) ListArenas(c *gin.Context) {
	arenas, err := h.repo.GetArenas()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchArenas})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(arenas)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedEncodeArenas})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetArena returns one arena layout by name.
func (h *Handler) GetArena(c *gin.Context) {
	name := c.Param("name")
	arena, err := h.repo.GetArenaByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrArenaNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchArenas})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(arena)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedEncodeArenas})
		return
	}
	c.JSON(http.StatusOK, out)
}
