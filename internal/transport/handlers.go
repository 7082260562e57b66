package transport

import (
	"github.com/ds124wfegd/meme-generator/internal/service"
)

type MemeHandler struct {
	service service.MemeService
}

func NewMemeHandler(service service.MemeService) *MemeHandler {
	return &MemeHandler{service: service}
}
