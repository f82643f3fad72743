package ui

import "tlr/internal/domain"

// Viewer displays a stored run interactively
type Viewer interface {
	View(output *domain.RunOutput) error
}
