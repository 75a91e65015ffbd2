package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lorehaven/arenagrid/internal/constants"
	"github.com/lorehaven/arenagrid/internal/dedupe"
	"github.com/lorehaven/arenagrid/internal/engine"
	"github.com/lorehaven/arenagrid/internal/game"
	"github.com/lorehaven/arenagrid/internal/hexgrid"
	"github.com/lorehaven/arenagrid/internal/keys"
	"github.com/lorehaven/arenagrid/internal/logging"
)

type occupancyEntry struct {
	Tile game.TileID    `json:"tile" binding:"required"`
	Team game.Team      `json:"team" binding:"required"`
	Kind game.TokenKind `json:"kind"`
}

type resolveRequest struct {
	// Arena is optional; when set the snapshot is validated against its
	// layout before the scan runs.
	Arena      string           `json:"arena"`
	Skill      string           `json:"skill" binding:"required"`
	CasterTile game.TileID      `json:"caster_tile" binding:"required"`
	CasterTeam game.Team        `json:"caster_team" binding:"required"`
	Occupancy  []occupancyEntry `json:"occupancy"`
}

type resolveResponse struct {
	RequestID string      `json:"request_id,omitempty"`
	Found     bool        `json:"found"`
	Target    game.TileID `json:"target,omitempty"`
	Partner   game.TileID `json:"partner,omitempty"`
}

// ResolveTarget answers "which tile does this skill hit?" for one
// battlefield snapshot.
func (h *Handler) ResolveTarget(c *gin.Context) {
	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest, constants.JSONKeyDetails: err.Error()})
		return
	}

	occ := make(game.Occupancy, len(req.Occupancy))
	for _, e := range req.Occupancy {
		if _, dup := occ[e.Tile]; dup {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest, constants.JSONKeyDetails: "duplicate occupancy tile"})
			return
		}
		kind := e.Kind
		if kind == "" {
			kind = game.KindMain
		}
		occ[e.Tile] = game.Token{Team: e.Team, Kind: kind}
	}

	skill, err := h.repo.GetSkillByKey(req.Skill)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSkillNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchSkills})
		return
	}

	if req.Arena != "" {
		arena, err := h.repo.GetArenaByName(req.Arena)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrArenaNotFound})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchArenas})
			return
		}
		if err := engine.ValidateOccupancy(arena, occ); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest, constants.JSONKeyDetails: err.Error()})
			return
		}
	}

	// Resolution is pure, so identical concurrent requests share one
	// computation through the singleflight group.
	key := req.Arena + "|" + keys.ResolveKey(skill.Key, req.CasterTile, req.CasterTeam, occ)
	v, err, _ := dedupe.ResolveGroup.Do(key, func() (interface{}, error) {
		return engine.Resolve(occ, req.CasterTile, req.CasterTeam, skill.Scan)
	})
	if err != nil {
		var ite *hexgrid.InvalidTileError
		if errors.As(err, &ite) {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest, constants.JSONKeyDetails: err.Error()})
			return
		}
		logging.Error("target resolution failed", err, logging.Fields{
			constants.LogFieldRequestID: requestID(c),
			constants.LogFieldSkill:     skill.Key,
		})
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrFailedResolve, constants.JSONKeyDetails: err.Error()})
		return
	}
	res := v.(engine.Result)

	logging.Info("target resolved", logging.Fields{
		constants.LogFieldRequestID: requestID(c),
		constants.LogFieldArena:     req.Arena,
		constants.LogFieldSkill:     skill.Key,
		constants.LogFieldCaster:    req.CasterTile,
		constants.LogFieldTeam:      req.CasterTeam,
		"found":                     res.Found,
		"target":                    res.Target,
	})

	c.JSON(http.StatusOK, resolveResponse{
		RequestID: requestID(c),
		Found:     res.Found,
		Target:    res.Target,
		Partner:   res.Partner,
	})
}
