//go:build tools

// Pins the swag CLI used to regenerate API docs from the annotations on
// cmd/server. Never compiled into the server.
package tools

import (
	_ "github.com/swaggo/swag/cmd/swag"
)
