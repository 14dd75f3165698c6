package repository

import "farmassist/entities"

type CropRepository interface {
	ListAll() ([]entities.Crop, error)
	FindByID(id uint) (*entities.Crop, error)
	Create(c *entities.Crop) error
	Update(id uint, c *entities.Crop) error
	Delete(id uint) error
}
