package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"farmassist/entities"
	"farmassist/pkg/crop/repository"
)

type CropCtrl struct{ repo repository.CropRepository }

func New(repo repository.CropRepository) *CropCtrl { return &CropCtrl{repo} }

type cropReq struct {
	Name             string `json:"name"`
	Category         string `json:"category"`
	Season           string `json:"season"`
	WaterRequirement string `json:"waterRequirement"`
	SoilType         string `json:"soilType"`
	Description      string `json:"description"`
	PlantingInfo     string `json:"plantingInfo"`
	CareInfo         string `json:"careInfo"`
	HarvestingInfo   string `json:"harvestingInfo"`
}

func (r cropReq) validate() string {
	fields := map[string]string{
		"name":             r.Name,
		"category":         r.Category,
		"season":           r.Season,
		"waterRequirement": r.WaterRequirement,
		"soilType":         r.SoilType,
		"description":      r.Description,
		"plantingInfo":     r.PlantingInfo,
		"careInfo":         r.CareInfo,
		"harvestingInfo":   r.HarvestingInfo,
	}
	for _, k := range []string{"name", "category", "season", "waterRequirement", "soilType", "description", "plantingInfo", "careInfo", "harvestingInfo"} {
		if strings.TrimSpace(fields[k]) == "" {
			return k + " is required"
		}
	}
	return ""
}

func (r cropReq) toEntity() *entities.Crop {
	return &entities.Crop{
		Name:             r.Name,
		Category:         r.Category,
		Season:           r.Season,
		WaterRequirement: r.WaterRequirement,
		SoilType:         r.SoilType,
		Description:      r.Description,
		PlantingInfo:     r.PlantingInfo,
		CareInfo:         r.CareInfo,
		HarvestingInfo:   r.HarvestingInfo,
	}
}

func (h *CropCtrl) List(c echo.Context) error {
	cs, err := h.repo.ListAll()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Error fetching crops", "error": err.Error()})
	}
	return c.JSON(http.StatusOK, cs)
}

func (h *CropCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	crop, err := h.repo.FindByID(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Crop not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Error fetching crop", "error": err.Error()})
	}
	return c.JSON(http.StatusOK, crop)
}

func (h *CropCtrl) Create(c echo.Context) error {
	var req cropReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid json"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": msg})
	}
	crop := req.toEntity()
	if err := h.repo.Create(crop); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Error adding crop", "error": err.Error()})
	}
	return c.JSON(http.StatusCreated, crop)
}

func (h *CropCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var req cropReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid json"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": msg})
	}
	crop := req.toEntity()
	err := h.repo.Update(uint(id), crop)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Crop not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Error updating crop", "error": err.Error()})
	}
	return c.JSON(http.StatusOK, crop)
}

func (h *CropCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	err := h.repo.Delete(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Crop not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Error deleting crop", "error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Crop deleted successfully"})
}
