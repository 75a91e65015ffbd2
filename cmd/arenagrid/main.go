package main

import (
	"os"

	"github.com/gin-gonic/gin"

	"github.com/lorehaven/arenagrid/internal/api"
	"github.com/lorehaven/arenagrid/internal/config"
	"github.com/lorehaven/arenagrid/internal/constants"
	"github.com/lorehaven/arenagrid/internal/logging"
	"github.com/lorehaven/arenagrid/internal/storage"
)

func main() {
	// Load the arena/skill configuration file (required). Path may be
	// provided via ARENAGRID_CONFIG or defaults to ./arenagrid_config.json
	// in the current working directory.
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = "./arenagrid_config.json"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logging.Fatal("Missing or invalid arenagrid configuration", err, logging.Fields{"config_path": configPath, "hint": "create an arenagrid_config.json with 'arena_list' (name plus the four tile sets) and 'skill_list' (key,name,description,scan{strategy,target,extreme,include_summons,origin_inclusive}) arrays and optional server.address"})
	}

	// Allow the DB path to be configured via ARENAGRID_DB. Default to a
	// data/ directory for local development.
	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = "./data/arenagrid.db"
	}
	db, err := storage.OpenAndMigrate(dbPath, cfg.Arenas, cfg.Skills)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}

	repo := storage.NewSQLiteRepository(db, cfg.Arenas, cfg.Skills)
	handler := api.NewHandler(repo)

	router := gin.Default()
	router.Use(api.RequestID())

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteVersion, api.Version)
		apiRoutes.GET(constants.RouteArenas, handler.ListArenas)
		apiRoutes.GET(constants.RouteArenaByName, handler.GetArena)
		apiRoutes.GET(constants.RouteSkills, handler.ListSkills)
		apiRoutes.GET(constants.RouteSkillByKey, handler.GetSkill)
		apiRoutes.POST(constants.RouteResolve, handler.ResolveTarget)
	}

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
