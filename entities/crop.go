package entities

import "time"

type Crop struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	Name             string `json:"name"`
	Category         string `json:"category"`         // Cereal|Pulse|Oilseed|Fiber|Vegetable|Fruit|Cash Crop
	Season           string `json:"season"`           // Kharif|Rabi|Zaid|Year-round
	WaterRequirement string `json:"waterRequirement"` // Low|Medium|High
	SoilType         string `json:"soilType"`
	Description      string `json:"description"`
	PlantingInfo     string `json:"plantingInfo"`
	CareInfo         string `json:"careInfo"`
	HarvestingInfo   string `json:"harvestingInfo"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
