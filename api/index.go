package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tourist-safety/app"
	"tourist-safety/config"
	_ "tourist-safety/docs"
	"tourist-safety/models"
)

var (
	router  http.Handler
	initErr error
	once    sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		cfg := config.LoadConfig()
		logger, err := config.NewLogger(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName)
		if err != nil {
			log.Printf("logger init failed, falling back to default: %v", err)
			logger = zap.NewExample()
		}

		application, err := app.New(context.Background(), cfg, logger)
		if err != nil {
			logger.Error("application init failed", zap.Error(err))
			initErr = err
			return
		}
		router = application.Router
	})
}

// Handler is the serverless entrypoint. The app is built once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	if initErr != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(models.ErrorResponse{
			Success: false,
			Message: "Service unavailable",
			Error:   "internal",
		})
		return
	}
	router.ServeHTTP(w, r)
}
