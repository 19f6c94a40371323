package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jason-napier/demonling/internal/constants"
)

// ListQuests returns every chain with the player's standing on each quest.
func (h *GameHandler) ListQuests(c *gin.Context) {
	overview, err := h.svc.QuestOverview()
	if err != nil {
		respondError(c, err, constants.ErrFailedLoadPlayer)
		return
	}
	c.JSON(http.StatusOK, gin.H{"chains": overview})
}

// StartQuest opens a combat encounter, or completes a narrative quest on the
// spot.
func (h *GameHandler) StartQuest(c *gin.Context) {
	res, err := h.svc.StartQuest(c.Param("questID"))
	if err != nil {
		respondError(c, err, constants.ErrFailedStartQuest)
		return
	}

	body := gin.H{"quest": res.Quest}
	if res.Encounter != nil {
		body["encounter"] = toEncounterView(res.Encounter)
	}
	if res.Reward != nil {
		body["reward"] = res.Reward
		body["player"] = toPlayerView(res.Player)
	}
	c.JSON(http.StatusOK, body)
}
