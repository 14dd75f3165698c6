package serviceImp

import (
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"farmassist/entities"
	"farmassist/pkg/guide/repositoryImp"
	"farmassist/pkg/guide/service"
)

func newSvc(t *testing.T) service.GuideService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Guide{}))
	return New(repositoryImp.New(db))
}

func TestIngestRequiresTitleAndContent(t *testing.T) {
	svc := newSvc(t)

	_, err := svc.Ingest("", "tags", "body", "")
	assert.EqualError(t, err, "title is required")

	_, err = svc.Ingest("Growing Tomatoes", "tags", "   ", "")
	assert.EqualError(t, err, "content is required")
}

func TestIngestAndSearch(t *testing.T) {
	svc := newSvc(t)

	g, err := svc.Ingest("Growing Tomatoes", "vegetable,kharif", "Stake plants early and water at the base.", "")
	require.NoError(t, err)
	assert.NotZero(t, g.ID)

	_, err = svc.Ingest("Wheat Sowing Windows", "cereal,rabi", "Sow between early and mid November.", "")
	require.NoError(t, err)

	hits, err := svc.Search("tomato", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Growing Tomatoes", hits[0].Title)

	// keyword search covers the body text too
	hits, err = svc.Search("november", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Wheat Sowing Windows", hits[0].Title)
}

func TestGetAndDelete(t *testing.T) {
	svc := newSvc(t)

	g, err := svc.Ingest("Growing Tomatoes", "", "Stake plants early.", "")
	require.NoError(t, err)

	got, err := svc.Get(g.ID)
	require.NoError(t, err)
	assert.Equal(t, g.Title, got.Title)

	require.NoError(t, svc.Delete(g.ID))
	_, err = svc.Get(g.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, svc.Delete(g.ID), gorm.ErrRecordNotFound)
}
