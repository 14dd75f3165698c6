package service

import "farmassist/entities"

type GuideService interface {
	Ingest(title, tags, content, sourceURL string) (*entities.Guide, error)
	Search(q string, limit int) ([]entities.Guide, error)
	Get(id uint) (*entities.Guide, error)
	List() ([]entities.Guide, error)
	Delete(id uint) error
}
