package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lorehaven/arenagrid/internal/constants"
)

// ListSkills returns all configured skills with their scan settings.
func (h *Handler) ListSkills(c *gin.Context) {
	skills, err := h.repo.GetSkills()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchSkills})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(skills)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedEncodeSkills})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetSkill returns one skill by its stable key.
func (h *Handler) GetSkill(c *gin.Context) {
	key := c.Param("key")
	skill, err := h.repo.GetSkillByKey(key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSkillNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchSkills})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(skill)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedEncodeSkills})
		return
	}
	c.JSON(http.StatusOK, out)
}
