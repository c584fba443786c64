package services

import (
	"strings"

	"vdpcza/pkg/utils"
)

// GateServiceInterface checks the anniversary date typed at the entry screen.
type GateServiceInterface interface {
	Unlock(date string) error
}

type GateService struct {
	keyDate string
}

func NewGateService(keyDate string) *GateService {
	return &GateService{keyDate: keyDate}
}

func (g *GateService) Unlock(date string) error {
	if strings.TrimSpace(date) != g.keyDate {
		return utils.ErrInvalidCredentials
	}
	return nil
}
