package services

import (
	"log"

	"super_crunch/internal/repository"
)

type AvailabilityService interface {
	// IsOpen never fails: an unreadable status counts as open.
	IsOpen() bool
	SetOpen(isOpen bool) error
}

type availabilityService struct {
	statusRepo repository.StatusRepository
}

func NewAvailabilityService(statusRepo repository.StatusRepository) AvailabilityService {
	return &availabilityService{statusRepo: statusRepo}
}

func (s *availabilityService) IsOpen() bool {
	open, err := s.statusRepo.Get()
	if err != nil {
		log.Printf("failed to read restaurant status, assuming open: %v", err)
		return true
	}
	return open
}

// SetOpen is the privileged staff write path. Unlike reads, write failures
// are surfaced so staff know the toggle did not take.
func (s *availabilityService) SetOpen(isOpen bool) error {
	return s.statusRepo.Set(isOpen)
}
