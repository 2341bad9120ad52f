package http

import (
	"habit-notes/internal/insight"
	"habit-notes/pkg/log"
)

type handler struct {
	l  log.Logger
	uc insight.UseCase
}

// New creates a new HTTP handler for insights.
func New(l log.Logger, uc insight.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
