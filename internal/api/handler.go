package api

import (
	"github.com/lorehaven/arenagrid/internal/storage"
)

// Handler bundles the HTTP handlers with their repository.
type Handler struct {
	repo storage.Repository
}

func NewHandler(repo storage.Repository) *Handler {
	return &Handler{repo: repo}
}
