package serviceImp

import (
	"errors"
	"strings"

	"farmassist/entities"
	"farmassist/pkg/guide/repository"
	"farmassist/pkg/guide/service"
)

type guideSvc struct{ repo repository.GuideRepository }

func New(repo repository.GuideRepository) service.GuideService { return &guideSvc{repo} }

func (s *guideSvc) Ingest(title, tags, content, sourceURL string) (*entities.Guide, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" {
		return nil, errors.New("title is required")
	}
	if content == "" {
		return nil, errors.New("content is required")
	}
	g := &entities.Guide{Title: title, Tags: strings.TrimSpace(tags), Content: content, SourceURL: sourceURL}
	if err := s.repo.Create(g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *guideSvc) Search(q string, limit int) ([]entities.Guide, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.repo.Search(q, limit)
}

func (s *guideSvc) Get(id uint) (*entities.Guide, error) { return s.repo.FindByID(id) }

func (s *guideSvc) List() ([]entities.Guide, error) { return s.repo.List() }

func (s *guideSvc) Delete(id uint) error { return s.repo.Delete(id) }
