package repository

import "farmassist/entities"

type SolutionRepository interface {
	ListAll() ([]entities.Solution, error)
	FindByID(id uint) (*entities.Solution, error)

	// FindByDisease is the lookup behind /api/solutions/disease/:name:
	// case-insensitive substring match, lowest id wins on ties.
	FindByDisease(name string) (*entities.Solution, error)

	// FindByDiseaseExact backs the detection flow: case-insensitive
	// whole-label match only. Keep the two policies separate.
	FindByDiseaseExact(name string) (*entities.Solution, error)

	Create(s *entities.Solution) error
	Update(id uint, s *entities.Solution) error
	Delete(id uint) error
}
