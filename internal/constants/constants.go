package constants

// Centralized constants for env keys, routes and shared field names.
const (
	// Environment variable keys
	EnvConfigPath = "ARENAGRID_CONFIG"
	EnvDBPath     = "ARENAGRID_DB"

	// HTTP headers and content types
	HeaderContentType = "Content-Type"
	HeaderRequestID   = "X-Request-ID"

	ContentTypeJSON = "application/json"
)

// Routes used by the backend router
const (
	RouteAPIPrefix   = "/api"
	RouteVersion     = "/version"
	RouteArenas      = "/arenas"
	RouteArenaByName = "/arenas/:name"
	RouteSkills      = "/skills"
	RouteSkillByKey  = "/skills/:key"
	RouteResolve     = "/resolve"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyDetails = "details"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest     = "Invalid request"
	ErrArenaNotFound      = "Arena not found"
	ErrSkillNotFound      = "Skill not found"
	ErrFailedFetchArenas  = "Failed to fetch arenas"
	ErrFailedFetchSkills  = "Failed to fetch skills"
	ErrFailedEncodeArenas = "Failed to encode arenas"
	ErrFailedEncodeSkills = "Failed to encode skills"
	ErrFailedResolve      = "Failed to resolve target"
)

// Logging field names
const (
	LogFieldAddr      = "addr"
	LogFieldArena     = "arena"
	LogFieldSkill     = "skill"
	LogFieldCaster    = "caster_tile"
	LogFieldTeam      = "team"
	LogFieldRequestID = "request_id"
)
