package handlers

import (
	"gorm.io/gorm"

	"github.com/MaisonCoiffure01/salon-scheduler/internal/models"
	"github.com/MaisonCoiffure01/salon-scheduler/internal/schedule"
)

// loadCatalog matérialise le catalogue de prestations depuis la base,
// blocs dans l'ordre d'exécution.
func loadCatalog(db *gorm.DB) (*schedule.Catalog, error) {
	var rows []models.Service
	if err := db.
		Preload("Blocks", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position ASC")
		}).
		Order("code ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	services := make([]schedule.Service, 0, len(rows))
	for _, row := range rows {
		services = append(services, toScheduleService(row))
	}

	return schedule.NewCatalog(services), nil
}

func toScheduleService(row models.Service) schedule.Service {
	blocks := make([]schedule.Block, 0, len(row.Blocks))
	for _, b := range row.Blocks {
		blocks = append(blocks, schedule.Block{
			Kind:        schedule.BlockKind(b.Kind),
			DurationMin: b.DurationMin,
			Label:       b.Label,
			ShortCode:   b.ShortCode,
		})
	}

	return schedule.Service{
		Code:   row.Code,
		Name:   row.Name,
		Color:  row.Color,
		Blocks: blocks,
	}
}
