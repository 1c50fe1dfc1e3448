// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/go-mathkids/internal/app"
	"github.com/MKhiriev/go-mathkids/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// It answers with 405 Method Not Allowed, a JSON {"message"} body and an
// Allow header listing the methods registered for the requested path.
//
// The lookup walks every route of router, including mounted sub-routers,
// and compares the full pattern with [http.Request.URL.Path]. Only exact
// pattern matches are considered.
func CheckHTTPMethod(router chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if methods := allowedMethods(router, r.URL.Path); len(methods) > 0 {
			w.Header().Set("Allow", strings.Join(methods, ", "))
		}

		utils.WriteMessage(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
	}
}

func allowedMethods(router chi.Routes, path string) []string {
	var methods []string
	_ = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if route == path && !slices.Contains(methods, method) {
			methods = append(methods, method)
		}
		return nil
	})
	slices.Sort(methods)
	return methods
}
