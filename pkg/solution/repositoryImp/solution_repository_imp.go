package repositoryImp

import (
	"strings"

	"gorm.io/gorm"

	"farmassist/entities"
	"farmassist/pkg/solution/repository"
)

type solutionRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SolutionRepository { return &solutionRepo{db} }

func (r *solutionRepo) ListAll() ([]entities.Solution, error) {
	var ss []entities.Solution
	return ss, r.db.Order("id").Find(&ss).Error
}

func (r *solutionRepo) FindByID(id uint) (*entities.Solution, error) {
	var s entities.Solution
	if err := r.db.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *solutionRepo) FindByDisease(name string) (*entities.Solution, error) {
	var s entities.Solution
	pattern := "%" + strings.ToLower(name) + "%"
	if err := r.db.Where("LOWER(disease) LIKE ?", pattern).Order("id").First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *solutionRepo) FindByDiseaseExact(name string) (*entities.Solution, error) {
	var s entities.Solution
	if err := r.db.Where("LOWER(disease) = ?", strings.ToLower(name)).Order("id").First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *solutionRepo) Create(s *entities.Solution) error { return r.db.Create(s).Error }

func (r *solutionRepo) Update(id uint, s *entities.Solution) error {
	res := r.db.Model(&entities.Solution{}).Where("id = ?", id).Updates(map[string]any{
		"disease":           s.Disease,
		"organic_solution":  s.OrganicSolution,
		"chemical_solution": s.ChemicalSolution,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	s.ID = id
	return nil
}

func (r *solutionRepo) Delete(id uint) error {
	res := r.db.Delete(&entities.Solution{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
