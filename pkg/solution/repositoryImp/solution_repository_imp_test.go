package repositoryImp

import (
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"farmassist/entities"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Solution{}))
	return db
}

func seed(t *testing.T, repo *solutionRepo, diseases ...string) []entities.Solution {
	t.Helper()
	out := make([]entities.Solution, 0, len(diseases))
	for _, d := range diseases {
		s := entities.Solution{Disease: d, OrganicSolution: "organic for " + d, ChemicalSolution: "chemical for " + d}
		require.NoError(t, repo.Create(&s))
		out = append(out, s)
	}
	return out
}

func TestFindByDiseaseSubstring(t *testing.T) {
	repo := New(testDB(t)).(*solutionRepo)
	seeded := seed(t, repo, "Late Blight", "Early Blight", "Powdery Mildew")

	// "blight" matches both blights; lowest id wins
	got, err := repo.FindByDisease("blight")
	require.NoError(t, err)
	assert.Equal(t, seeded[0].ID, got.ID)
	assert.Equal(t, "Late Blight", got.Disease)

	got, err = repo.FindByDisease("EARLY")
	require.NoError(t, err)
	assert.Equal(t, "Early Blight", got.Disease)

	_, err = repo.FindByDisease("rust")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFindByDiseaseExact(t *testing.T) {
	repo := New(testDB(t)).(*solutionRepo)
	seed(t, repo, "Late Blight", "Early Blight")

	got, err := repo.FindByDiseaseExact("late blight")
	require.NoError(t, err)
	assert.Equal(t, "Late Blight", got.Disease)

	// exact match must not fall back to substring semantics
	_, err = repo.FindByDiseaseExact("Blight")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSolutionCreateGetRoundTrip(t *testing.T) {
	repo := New(testDB(t))

	s := &entities.Solution{Disease: "Leaf Curl", OrganicSolution: "neem spray", ChemicalSolution: "copper fungicide"}
	require.NoError(t, repo.Create(s))
	assert.NotZero(t, s.ID)

	got, err := repo.FindByID(s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Leaf Curl", got.Disease)
	assert.Equal(t, "neem spray", got.OrganicSolution)
	assert.Equal(t, "copper fungicide", got.ChemicalSolution)
}

func TestSolutionUpdateAndDeleteNotFound(t *testing.T) {
	repo := New(testDB(t))

	err := repo.Update(7, &entities.Solution{Disease: "x", OrganicSolution: "y", ChemicalSolution: "z"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.Delete(7), gorm.ErrRecordNotFound)
}

func TestSolutionUpdateFullReplace(t *testing.T) {
	repo := New(testDB(t)).(*solutionRepo)
	seeded := seed(t, repo, "Late Blight")

	err := repo.Update(seeded[0].ID, &entities.Solution{
		Disease:          "Late Blight (tomato)",
		OrganicSolution:  "rotate crops",
		ChemicalSolution: "mancozeb",
	})
	require.NoError(t, err)

	got, err := repo.FindByID(seeded[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Late Blight (tomato)", got.Disease)
	assert.Equal(t, "rotate crops", got.OrganicSolution)
	assert.Equal(t, "mancozeb", got.ChemicalSolution)
}
