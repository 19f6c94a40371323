package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jason-napier/demonling/internal/constants"
	"github.com/jason-napier/demonling/internal/engine"
	"github.com/jason-napier/demonling/internal/progress"
	"github.com/jason-napier/demonling/internal/service"
)

// GameHandler groups all HTTP handlers over the service layer.
type GameHandler struct {
	svc *service.Service
}

func NewGameHandler(svc *service.Service) *GameHandler {
	return &GameHandler{svc: svc}
}

// RegisterRoutes wires every endpoint under the API prefix.
func (h *GameHandler) RegisterRoutes(router *gin.Engine) {
	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteVersion, Version)
		apiRoutes.GET(constants.RoutePlayer, h.GetPlayer)
		apiRoutes.POST(constants.RoutePlayerRefill, h.RefillEnergy)
		apiRoutes.POST(constants.RoutePlayerRefillTest, h.RefillEnergyTest)
		apiRoutes.GET(constants.RouteQuests, h.ListQuests)
		apiRoutes.POST(constants.RouteQuestStart, h.StartQuest)
		apiRoutes.GET(constants.RouteEncounterByID, h.GetEncounter)
		apiRoutes.POST(constants.RouteEncounterAction, h.SubmitAction)
	}
}

// respondError maps service and engine errors onto HTTP statuses with the
// shared error message strings. Unrecognized errors become a 500 carrying the
// handler's fallback message.
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, progress.ErrInvalidQuest):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrQuestNotFound})
	case errors.Is(err, progress.ErrInsufficientEnergy):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrNotEnoughEnergy})
	case errors.Is(err, progress.ErrInsufficientShards):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrNotEnoughSoulShards})
	case errors.Is(err, service.ErrEncounterNotFound):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrEncounterNotFound})
	case errors.Is(err, service.ErrEncounterInProgress):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrEncounterInProgress})
	case errors.Is(err, engine.ErrEncounterOver):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrEncounterOver})
	case errors.Is(err, engine.ErrNotPlayerTurn), errors.Is(err, engine.ErrNotEnemyTurn):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrNotPlayerTurn})
	case errors.Is(err, engine.ErrUnknownAction):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownAction})
	case errors.Is(err, engine.ErrUnknownAbility):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownAbility})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: fallback})
	}
}
