package main

import (
	"github.com/arnavshah/roster-api-go/pkg/auth"
	"github.com/arnavshah/roster-api-go/pkg/config"
	"github.com/arnavshah/roster-api-go/pkg/database"
	"github.com/arnavshah/roster-api-go/pkg/handlers"
	"github.com/arnavshah/roster-api-go/pkg/logger"
	"github.com/arnavshah/roster-api-go/pkg/service"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("could not load config: %v", err)
	}
	logger.Init(cfg)

	if cfg.GinMode == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(cfg)
	if err != nil {
		logger.Log.Fatalf("failed to connect database: %v", err)
	}
	if created, err := auth.EnsureAdminExists(db, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logger.Log.WithError(err).Warn("Could not ensure admin user")
	} else if created {
		logger.Log.Infof("Default admin user created: %s", cfg.AdminUsername)
	}

	h := &handlers.Handler{
		DB:     db,
		Signer: auth.NewSigner(cfg.JWTSecret, cfg.APIMasterSecret),
		Roster: service.NewRosterService(cfg.WeekdayNames, cfg.StrictOffDays, logger.Log),
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	h.Register(r)

	logger.Log.Infof("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Log.Fatalf("could not run server: %v", err)
	}
}
