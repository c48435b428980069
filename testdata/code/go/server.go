package server

import "fmt"

// Config holds server settings.
type Config struct {
	Port    int
	Timeout int
}

type Handler struct {
	config *Config
}

// NewHandler creates a Handler for config.
func NewHandler(config *Config) *Handler {
	return &Handler{config: config}
}

func (h *Handler) Greet(name string) string {
	return fmt.Sprintf("Hello, %s!", name)
}
