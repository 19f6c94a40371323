package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jason-napier/demonling/internal/constants"
	"github.com/jason-napier/demonling/internal/engine"
)

// ActionRequest carries the player's chosen combat action. The ability key is
// required only for specials.
type ActionRequest struct {
	Action  string `json:"action"`
	Ability string `json:"ability,omitempty"`
}

// GetEncounter returns the current view of an encounter.
func (h *GameHandler) GetEncounter(c *gin.Context) {
	enc, err := h.svc.Encounter(c.Param("encounterID"))
	if err != nil {
		respondError(c, err, constants.ErrFailedResolveAction)
		return
	}
	c.JSON(http.StatusOK, toEncounterView(enc))
}

// SubmitAction resolves one player action plus the enemy's reply. When the
// encounter ends the response also carries the applied reward and the updated
// player record.
func (h *GameHandler) SubmitAction(c *gin.Context) {
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	res, err := h.svc.SubmitAction(c.Param("encounterID"), engine.Action(req.Action), req.Ability)
	if err != nil {
		respondError(c, err, constants.ErrFailedApplyEncounter)
		return
	}

	body := gin.H{"encounter": toEncounterView(res.Encounter)}
	if res.Reward != nil {
		body["reward"] = res.Reward
	}
	if res.Player != nil {
		body["player"] = toPlayerView(res.Player)
	}
	c.JSON(http.StatusOK, body)
}
