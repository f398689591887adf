package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/memberhubhq/memberhub-backend/api/responses"
	"github.com/memberhubhq/memberhub-backend/pkg/config"
	"github.com/memberhubhq/memberhub-backend/pkg/db"
	"github.com/memberhubhq/memberhub-backend/pkg/logger"
	"github.com/memberhubhq/memberhub-backend/pkg/redis"
)

const readinessTimeout = 2 * time.Second

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-MemberHub-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady probes the datasources and reports per-dependency state.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		checks := map[string]string{}
		healthy := true

		if dbP != nil {
			if err := dbP.Ping(ctx); err != nil {
				checks["database"] = "down"
				healthy = false
				if logg != nil {
					logg.Error(ctx, "readiness database check failed", err)
				}
			} else {
				checks["database"] = "up"
			}
		}
		if redisP != nil {
			if err := redisP.Ping(ctx); err != nil {
				checks["redis"] = "down"
				healthy = false
				if logg != nil {
					logg.Error(ctx, "readiness redis check failed", err)
				}
			} else {
				checks["redis"] = "up"
			}
		}

		w.Header().Set("X-MemberHub-Env", cfg.App.Env)
		status := http.StatusOK
		state := "ready"
		if !healthy {
			status = http.StatusServiceUnavailable
			state = "degraded"
		}
		responses.WriteSuccessStatus(w, status, map[string]any{
			"status": state,
			"checks": checks,
		})
	}
}
