package repository

import "farmassist/entities"

type GuideRepository interface {
	Create(g *entities.Guide) error
	FindByID(id uint) (*entities.Guide, error)
	List() ([]entities.Guide, error)
	Search(q string, limit int) ([]entities.Guide, error)
	Delete(id uint) error
}
