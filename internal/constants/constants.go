package constants

// Centralized constants for env keys, routes and error messages.
const (
	// Environment variable keys
	EnvConfigPath = "DEMONLING_CONFIG"
	EnvDBPath     = "DEMONLING_DB"
	EnvAddr       = "DEMONLING_ADDR"

	// Defaults used when the corresponding env var is unset
	DefaultDBPath = "./data/demonling.db"
	DefaultAddr   = ":8080"
)

// Routes used by the backend router
const (
	RouteAPIPrefix        = "/api"
	RouteVersion          = "/version"
	RoutePlayer           = "/player"
	RoutePlayerRefill     = "/player/refill"
	RoutePlayerRefillTest = "/player/refill-test"
	RouteQuests           = "/quests"
	RouteQuestStart       = "/quests/:questID/start"
	RouteEncounterByID    = "/encounters/:encounterID"
	RouteEncounterAction  = "/encounters/:encounterID/action"
)

// Common JSON response keys
const (
	JSONKeyError = "error"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest       = "Invalid request"
	ErrFailedLoadPlayer     = "Failed to load player"
	ErrFailedSavePlayer     = "Failed to save player"
	ErrQuestNotFound        = "Quest not found or locked"
	ErrNotEnoughEnergy      = "Not enough energy"
	ErrNotEnoughSoulShards  = "Not enough soul shards"
	ErrEncounterNotFound    = "Encounter not found"
	ErrEncounterOver        = "Encounter already resolved"
	ErrEncounterInProgress  = "Another encounter is already in progress"
	ErrNotPlayerTurn        = "It is not the player's turn"
	ErrUnknownAction        = "Unknown combat action"
	ErrUnknownAbility       = "Unknown or locked ability"
	ErrFailedStartQuest     = "Failed to start quest"
	ErrFailedResolveAction  = "Failed to resolve action"
	ErrFailedApplyEncounter = "Failed to apply encounter outcome"
)

// Logging field names
const (
	LogFieldAddr        = "addr"
	LogFieldQuestID     = "quest_id"
	LogFieldEncounterID = "encounter_id"
	LogFieldEnemy       = "enemy"
	LogFieldState       = "state"
	LogFieldLevel       = "level"
	LogFieldEnergy      = "energy"
	LogFieldConfigPath  = "config_path"
)
