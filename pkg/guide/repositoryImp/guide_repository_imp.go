package repositoryImp

import (
	"strings"

	"gorm.io/gorm"

	"farmassist/entities"
	"farmassist/pkg/guide/repository"
)

type guideRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.GuideRepository { return &guideRepo{db} }

func (r *guideRepo) Create(g *entities.Guide) error { return r.db.Create(g).Error }

func (r *guideRepo) FindByID(id uint) (*entities.Guide, error) {
	var g entities.Guide
	if err := r.db.First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

// List returns guide metadata, newest first, without the article bodies.
func (r *guideRepo) List() ([]entities.Guide, error) {
	var gs []entities.Guide
	err := r.db.Select("id", "title", "tags", "source_url", "created_at").Order("id DESC").Find(&gs).Error
	return gs, err
}

func (r *guideRepo) Search(q string, limit int) ([]entities.Guide, error) {
	var gs []entities.Guide
	pattern := "%" + strings.ToLower(q) + "%"
	err := r.db.
		Where("LOWER(title) LIKE ? OR LOWER(tags) LIKE ? OR LOWER(content) LIKE ?", pattern, pattern, pattern).
		Order("id").Limit(limit).Find(&gs).Error
	return gs, err
}

func (r *guideRepo) Delete(id uint) error {
	res := r.db.Delete(&entities.Guide{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
