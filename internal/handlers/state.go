package handlers

import (
	"pankti_backend/internal/engine"
	"pankti_backend/internal/estimator"
	"pankti_backend/internal/registry"
)

// Глобальные экземпляры ядра, инициализируются в main (и в тестах).
var (
	Registry *registry.Registry
	Engine   *engine.Engine
	AI       *estimator.Gemini
)
