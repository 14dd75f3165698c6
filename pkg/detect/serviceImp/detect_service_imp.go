package serviceImp

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"gorm.io/gorm"

	"farmassist/entities"
	"farmassist/pkg/classifier"
	"farmassist/pkg/detect/service"
	"farmassist/pkg/remedy"
	solutionRepo "farmassist/pkg/solution/repository"
)

// MaxImageBytes matches the upload page's limit.
const MaxImageBytes = 5 * 1024 * 1024

type detectSvc struct {
	model     classifier.Client
	solutions solutionRepo.SolutionRepository
	fallback  *remedy.Fallback
}

func New(model classifier.Client, solutions solutionRepo.SolutionRepository, fallback *remedy.Fallback) service.DetectService {
	return &detectSvc{model: model, solutions: solutions, fallback: fallback}
}

// Analyze validates the upload, asks the model for a label, then resolves a
// remedy in three tiers: stored solution (exact, case-insensitive), curated
// fallback entry, generic fallback text. A store fault only costs the first
// tier; the user still gets actionable text.
func (s *detectSvc) Analyze(filename string, image []byte) (*entities.DetectionResult, error) {
	if err := ValidateImage(image); err != nil {
		return nil, err
	}

	pred, err := s.model.Predict(filename, image)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrClassifierUnavailable, err)
	}

	res := &entities.DetectionResult{
		Disease:    pred.Disease,
		Confidence: pred.Confidence,
	}

	sol, err := s.solutions.FindByDiseaseExact(pred.Disease)
	switch {
	case err == nil:
		res.OrganicSolution = sol.OrganicSolution
		res.ChemicalSolution = sol.ChemicalSolution
		return res, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		log.Printf("detect: solution lookup failed, using fallback: %v", err)
	}

	res.OrganicSolution = s.fallback.Organic(pred.Disease)
	res.ChemicalSolution = s.fallback.Chemical(pred.Disease)
	return res, nil
}

// ValidateImage enforces the upload constraints before any network call. The
// facade runs the same check client-side.
func ValidateImage(image []byte) error {
	if len(image) == 0 {
		return fmt.Errorf("%w: empty file", service.ErrInvalidImage)
	}
	if len(image) > MaxImageBytes {
		return fmt.Errorf("%w: file size should be less than 5MB", service.ErrInvalidImage)
	}
	// Sniff the real content type instead of trusting the client header.
	switch http.DetectContentType(image) {
	case "image/jpeg", "image/png":
		return nil
	default:
		return fmt.Errorf("%w: please select an image file (JPEG, PNG)", service.ErrInvalidImage)
	}
}
