package models

import "time"

// Prestation du catalogue : une suite ordonnée de blocs (travail + pauses).
// Données de référence, jamais modifiées côté client.
type Service struct {
	Code  string `gorm:"size:30;primaryKey" json:"code"`
	Name  string `gorm:"size:100;not null" json:"name"`
	Color string `gorm:"size:20" json:"color"`

	Blocks []ServiceBlock `gorm:"foreignKey:ServiceCode;references:Code;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"blocks"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ServiceBlock struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	ServiceCode string `gorm:"size:30;index" json:"service_code"`

	// Ordre d'exécution dans la prestation, les blocs s'enchaînent
	// dos à dos à partir de l'heure du rendez-vous.
	Position int `json:"position"`

	Kind        string `gorm:"size:10;not null" json:"kind"` // "service" ou "pause"
	DurationMin int    `gorm:"not null" json:"duration_min"`
	Label       string `gorm:"size:100" json:"label"`
	ShortCode   string `gorm:"size:10" json:"short_code"`
}
