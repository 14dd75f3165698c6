package service

import (
	"errors"

	"farmassist/entities"
)

// ErrInvalidImage means the upload was rejected before any network call:
// wrong type or too large. ErrClassifierUnavailable means the model service
// could not produce a label; no remedy can be resolved without one.
var (
	ErrInvalidImage          = errors.New("invalid image")
	ErrClassifierUnavailable = errors.New("classifier unavailable")
)

type DetectService interface {
	Analyze(filename string, image []byte) (*entities.DetectionResult, error)
}
