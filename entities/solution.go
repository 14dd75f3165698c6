package entities

import "time"

type Solution struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	Disease          string `gorm:"index" json:"disease"`
	OrganicSolution  string `json:"organicSolution"`
	ChemicalSolution string `json:"chemicalSolution"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
