package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/hibiken/asynq"
	"github.com/hibiken/asynqmon"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"converterservice/internal/api"
	"converterservice/internal/api/middleware"
	"converterservice/internal/service"
)

func (app *App) initHTTP(converterService service.ConverterServiceInterface) {
	r := chi.NewRouter()
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RequestLoggingMiddleware(app.logger))
	r.Use(chimiddleware.Recoverer)

	r.Post("/api/convert", api.HandleConvert(converterService))
	r.Get("/api/rates/latest", api.HandleLatestRate(converterService))
	r.Get("/api/rates/table", api.HandleRateTable(converterService))
	r.Get("/api/rates/series", api.HandleRateSeries(converterService))
	r.Get("/api/currencies", api.HandleCurrencies(converterService))
	r.Get("/api/favorites", api.HandleListFavorites(converterService))
	r.Post("/api/favorites", api.HandleAddFavorite(converterService))
	r.Delete("/api/favorites", api.HandleRemoveFavorite(converterService))
	r.Get("/api/history", api.HandleHistory(converterService))
	r.Delete("/api/history", api.HandleClearHistory(converterService))
	r.Get("/healthz", api.HandleHealthz())
	r.Get("/readyz", api.HandleReadyz(app.db, app.rdbState, app.rdbAsynq))
	r.Handle("/metrics", promhttp.Handler())

	if app.cfg.Server.ServeSwagger {
		r.Get("/swagger/*", api.SwaggerUIHandler())
		r.Get("/openapi.json", api.OpenAPISpecHandler())
	}

	if app.cfg.Server.ServeAsynqmon {
		mon := asynqmon.New(asynqmon.Options{
			RootPath:     "/asynqmon",
			RedisConnOpt: asynq.RedisClientOpt{Addr: app.cfg.Redis.AsynqAddr},
		})
		r.Mount(mon.RootPath(), mon)
	}

	app.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Server.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
