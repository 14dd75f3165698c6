package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"farmassist/entities"
	"farmassist/pkg/solution/repository"
)

type SolutionCtrl struct{ repo repository.SolutionRepository }

func New(repo repository.SolutionRepository) *SolutionCtrl { return &SolutionCtrl{repo} }

type solutionReq struct {
	Disease          string `json:"disease"`
	OrganicSolution  string `json:"organicSolution"`
	ChemicalSolution string `json:"chemicalSolution"`
}

func (r solutionReq) validate() string {
	switch {
	case strings.TrimSpace(r.Disease) == "":
		return "disease is required"
	case strings.TrimSpace(r.OrganicSolution) == "":
		return "organicSolution is required"
	case strings.TrimSpace(r.ChemicalSolution) == "":
		return "chemicalSolution is required"
	}
	return ""
}

func (h *SolutionCtrl) List(c echo.Context) error {
	ss, err := h.repo.ListAll()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Error fetching solutions", "error": err.Error()})
	}
	return c.JSON(http.StatusOK, ss)
}

func (h *SolutionCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	s, err := h.repo.FindByID(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Solution not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Error fetching solution", "error": err.Error()})
	}
	return c.JSON(http.StatusOK, s)
}

// GetByDisease keeps the original API's substring semantics (LIKE %name%).
func (h *SolutionCtrl) GetByDisease(c echo.Context) error {
	name := c.Param("name")
	s, err := h.repo.FindByDisease(name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Solution not found for this disease"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Error fetching solution", "error": err.Error()})
	}
	return c.JSON(http.StatusOK, s)
}

func (h *SolutionCtrl) Create(c echo.Context) error {
	var req solutionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid json"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": msg})
	}
	s := &entities.Solution{Disease: req.Disease, OrganicSolution: req.OrganicSolution, ChemicalSolution: req.ChemicalSolution}
	if err := h.repo.Create(s); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Error adding solution", "error": err.Error()})
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *SolutionCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var req solutionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid json"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": msg})
	}
	s := &entities.Solution{Disease: req.Disease, OrganicSolution: req.OrganicSolution, ChemicalSolution: req.ChemicalSolution}
	err := h.repo.Update(uint(id), s)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Solution not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Error updating solution", "error": err.Error()})
	}
	return c.JSON(http.StatusOK, s)
}

func (h *SolutionCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	err := h.repo.Delete(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Solution not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Error deleting solution", "error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Solution deleted successfully"})
}
