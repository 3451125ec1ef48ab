// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod builds the router's MethodNotAllowed handler. It answers
// 405 with an Allow header listing the methods registered for the path,
// including routes of mounted sub-routers.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requested := strings.TrimSuffix(r.URL.Path, "/")

		var allowed []string
		_ = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
			if strings.TrimSuffix(route, "/") == requested && !slices.Contains(allowed, method) {
				allowed = append(allowed, method)
			}
			return nil
		})

		if len(allowed) == 0 {
			http.NotFound(w, r)
			return
		}

		slices.Sort(allowed)
		w.Header().Set("Allow", strings.Join(allowed, ", "))
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}
