package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jason-napier/demonling/internal/constants"
)

// GetPlayer returns the player record with energy brought up to date.
func (h *GameHandler) GetPlayer(c *gin.Context) {
	p, err := h.svc.Player()
	if err != nil {
		respondError(c, err, constants.ErrFailedLoadPlayer)
		return
	}
	c.JSON(http.StatusOK, toPlayerView(p))
}

// RefillEnergy trades soul shards for a full energy bar.
func (h *GameHandler) RefillEnergy(c *gin.Context) {
	p, err := h.svc.RefillEnergyWithShards()
	if err != nil {
		respondError(c, err, constants.ErrFailedSavePlayer)
		return
	}
	c.JSON(http.StatusOK, toPlayerView(p))
}

// RefillEnergyTest tops the bar up at no cost. Development helper endpoint.
func (h *GameHandler) RefillEnergyTest(c *gin.Context) {
	p, err := h.svc.RefillEnergyFree()
	if err != nil {
		respondError(c, err, constants.ErrFailedSavePlayer)
		return
	}
	c.JSON(http.StatusOK, toPlayerView(p))
}
