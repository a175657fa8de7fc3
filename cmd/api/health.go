package main

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

type HealthResponse struct {
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// healthcheckHandler godoc
//
//	@Summary		Healthcheck
//	@Description	Probes storage and the menu source
//	@Tags			ops
//	@Produce		json
//	@Success		200	{object}	HealthResponse
//	@Failure		503	{object}	HealthResponse
//	@Router			/health [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	dbStatus, menuStatus := "ok", "ok"

	var g errgroup.Group
	g.Go(func() error {
		if err := app.storage.Ping(ctx); err != nil {
			dbStatus = "error"
			return err
		}
		return nil
	})
	g.Go(func() error {
		if _, err := app.menuService.Count(ctx); err != nil {
			menuStatus = "error"
			return err
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		app.logger.Warnw("health probe failed", "error", err)
	}

	queueStatus := "ok"
	if app.broker == nil {
		queueStatus = "error"
	}

	response := HealthResponse{
		Status:    "healthy",
		Version:   version,
		Timestamp: time.Now(),
		Services: map[string]string{
			"database": dbStatus,
			"queue":    queueStatus,
			"menu":     menuStatus,
		},
	}

	// if any service is down, mark as unhealthy
	if dbStatus != "ok" || queueStatus != "ok" || menuStatus != "ok" {
		response.Status = "unhealthy"
		if err := writeJson(w, http.StatusServiceUnavailable, response); err != nil {
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := writeJson(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
