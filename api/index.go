package handler

import (
	"net/http"

	"github.com/arnavshah/roster-api-go/pkg/auth"
	"github.com/arnavshah/roster-api-go/pkg/config"
	"github.com/arnavshah/roster-api-go/pkg/database"
	"github.com/arnavshah/roster-api-go/pkg/handlers"
	"github.com/arnavshah/roster-api-go/pkg/logger"
	"github.com/arnavshah/roster-api-go/pkg/service"
	"github.com/gin-gonic/gin"
)

var r *gin.Engine

func init() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("could not load config: %v", err)
	}
	logger.Init(cfg)

	db, err := database.Open(cfg)
	if err != nil {
		logger.Log.Fatalf("failed to connect database: %v", err)
	}
	if _, err := auth.EnsureAdminExists(db, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logger.Log.WithError(err).Warn("Could not ensure admin user")
	}

	h := &handlers.Handler{
		DB:     db,
		Signer: auth.NewSigner(cfg.JWTSecret, cfg.APIMasterSecret),
		Roster: service.NewRosterService(cfg.WeekdayNames, cfg.StrictOffDays, logger.Log),
	}

	gin.SetMode(gin.ReleaseMode)
	r = gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	h.Register(r)
}

// Handler is the entry point for Vercel Go Runtime
func Handler(w http.ResponseWriter, req *http.Request) {
	r.ServeHTTP(w, req)
}
