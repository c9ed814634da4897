// internal/services/contact_service.go
package services

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/novamart/storefront-api/internal/config"
	"github.com/novamart/storefront-api/internal/utils"
)

// ContactService accepts contact-form submissions. Like every other
// "API call" here there is no backend: a fixed delay, then success.
type ContactService struct {
	cfg *config.Config
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

func NewContactService(cfg *config.Config) *ContactService {
	return &ContactService{cfg: cfg}
}

func (s *ContactService) Submit(req *ContactRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	time.Sleep(s.cfg.Simulation.ContactDelay)

	logrus.WithFields(logrus.Fields{
		"email":   req.Email,
		"subject": req.Subject,
	}).Info("Contact message received")

	return nil
}
