package repositoryImp

import (
	"gorm.io/gorm"

	"farmassist/entities"
	"farmassist/pkg/crop/repository"
)

type cropRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropRepository { return &cropRepo{db} }

func (r *cropRepo) ListAll() ([]entities.Crop, error) {
	var cs []entities.Crop
	return cs, r.db.Order("id").Find(&cs).Error
}

func (r *cropRepo) FindByID(id uint) (*entities.Crop, error) {
	var c entities.Crop
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cropRepo) Create(c *entities.Crop) error { return r.db.Create(c).Error }

// Update is a full replace of all mutable columns; the id never changes.
func (r *cropRepo) Update(id uint, c *entities.Crop) error {
	res := r.db.Model(&entities.Crop{}).Where("id = ?", id).Updates(map[string]any{
		"name":              c.Name,
		"category":          c.Category,
		"season":            c.Season,
		"water_requirement": c.WaterRequirement,
		"soil_type":         c.SoilType,
		"description":       c.Description,
		"planting_info":     c.PlantingInfo,
		"care_info":         c.CareInfo,
		"harvesting_info":   c.HarvestingInfo,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	c.ID = id
	return nil
}

func (r *cropRepo) Delete(id uint) error {
	res := r.db.Delete(&entities.Crop{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
