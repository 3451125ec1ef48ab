// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-zk-vault/internal/app"
)

// ErrUserQuit is returned when the user leaves with ctrl+c.
var ErrUserQuit = errors.New("user quit")

// errorText renders the guidance for err. Raw error text never reaches the
// screen: it may carry server paths or key store details.
func errorText(err error) string {
	if err == nil {
		return ""
	}
	return errorStyle.Render("Error: " + app.UserMessage(err))
}
