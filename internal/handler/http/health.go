// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-mathkids/internal/app"
	"github.com/MKhiriev/go-mathkids/internal/logger"
	"github.com/MKhiriev/go-mathkids/internal/utils"
	"github.com/MKhiriev/go-mathkids/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{
		Status:    app.MsgDatabaseOK,
		Timestamp: time.Now().UTC(),
		Service:   app.MsgServiceName,
	}, http.StatusOK)
}

// healthDatabase runs a trivial query and answers 503 when the database is
// not configured or does not respond.
func (h *Handler) healthDatabase(w http.ResponseWriter, r *http.Request) {
	healthService := h.services.HealthService

	if !healthService.DatabaseConfigured() {
		utils.WriteJSON(w, models.DatabaseHealthResponse{
			Status:   app.MsgDatabaseError,
			Database: app.MsgDatabaseNotSetUp,
		}, http.StatusServiceUnavailable)
		return
	}

	elapsed, err := healthService.CheckDatabase(r.Context())
	if err != nil {
		logger.FromRequest(r).Error().Err(err).Str("func", "*Handler.healthDatabase").Msg("database health check failed")
		utils.WriteJSON(w, models.DatabaseHealthResponse{
			Status:   app.MsgDatabaseError,
			Database: app.MsgDatabaseDown,
			Error:    app.MsgDatabaseUnavailable,
		}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, models.DatabaseHealthResponse{
		Status:    app.MsgDatabaseOK,
		Database:  app.MsgDatabaseUp,
		QueryTime: fmt.Sprintf("%dms", elapsed.Milliseconds()),
	}, http.StatusOK)
}

// healthEmail asks the mail provider for its health and answers 503 when it
// is not usable.
func (h *Handler) healthEmail(w http.ResponseWriter, r *http.Request) {
	provider, err := h.services.HealthService.CheckEmail(r.Context())
	if err != nil {
		logger.FromRequest(r).Error().Err(err).Str("func", "*Handler.healthEmail").Str("provider", provider).Msg("email health check failed")
		utils.WriteJSON(w, models.EmailHealthResponse{
			Status:       app.MsgEmailUnhealthy,
			EmailService: app.MsgEmailServiceEnabled,
			Provider:     provider,
			Error:        app.MsgEmailUnavailable,
			Timestamp:    time.Now().UTC(),
		}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, models.EmailHealthResponse{
		Status:       app.MsgDatabaseOK,
		EmailService: app.MsgEmailServiceEnabled,
		Provider:     provider,
		Timestamp:    time.Now().UTC(),
	}, http.StatusOK)
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetStatus(r.Context()), http.StatusOK)
}
