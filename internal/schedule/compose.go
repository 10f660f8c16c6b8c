package schedule

import (
	"fmt"
	"strings"
)

// ===============================
// Block Composer
// ===============================

// Couleur des rendez-vous à durée libre, sans prestation associée.
const FallbackColor = "#3788d8"

// Libellé générique quand le code de prestation est inconnu du catalogue.
const customServiceName = "Prestation personnalisée"

// Composition est la vue calculée d'un rendez-vous : durée totale, titre
// compact et couleur, dérivés de la prestation et du bloc actif. Fonction
// pure de ses entrées.
type Composition struct {
	service  Service
	known    bool
	blockIdx int
}

// Compose résout la composition d'un rendez-vous lié à une prestation.
// Un code inconnu ne produit jamais d'erreur : le titre retombe sur un
// libellé générique.
func (c *Catalog) Compose(code string, blockIndex int) Composition {
	svc, ok := c.Get(code)
	return Composition{service: svc, known: ok, blockIdx: blockIndex}
}

// ComposeRaw couvre les anciens rendez-vous à durée libre, sans prestation.
func ComposeRaw() Composition {
	return Composition{known: false, blockIdx: -1}
}

// TotalDuration est la somme des durées des blocs, en minutes.
func (cp Composition) TotalDuration() int {
	total := 0
	for _, b := range cp.service.Blocks {
		total += b.DurationMin
	}
	return total
}

// BlockStartOffset retourne le décalage en minutes du bloc i par rapport
// au début du rendez-vous.
func (cp Composition) BlockStartOffset(i int) int {
	offset := 0
	for j := 0; j < i && j < len(cp.service.Blocks); j++ {
		offset += cp.service.Blocks[j].DurationMin
	}
	return offset
}

func (cp Composition) Color() string {
	if !cp.known || cp.service.Color == "" {
		return FallbackColor
	}
	return cp.service.Color
}

// DisplayTitle construit le titre compact affiché dans le calendrier.
// Le code court du bloc actif prime, puis son libellé, puis le nom de la
// prestation.
func (cp Composition) DisplayTitle(customerName string) string {
	if cp.blockIdx < 0 && !cp.known {
		return customerName
	}

	serviceName := cp.service.Name
	if !cp.known {
		serviceName = customServiceName
	}

	if cp.blockIdx >= 0 && cp.blockIdx < len(cp.service.Blocks) {
		block := cp.service.Blocks[cp.blockIdx]
		if block.ShortCode != "" {
			return customerName + " - " + block.ShortCode
		}
		if block.Label != "" {
			return customerName + " - " + block.Label
		}
	}

	return customerName + " - " + serviceName
}

// DurationLabel formate une durée en minutes : "1h 30min", "1h", "45min".
// Les parties nulles sont omises.
func DurationLabel(totalMin int) string {
	hours := totalMin / 60
	minutes := totalMin % 60

	var label string
	if hours > 0 {
		label = fmt.Sprintf("%dh", hours)
	}
	if minutes > 0 {
		label += fmt.Sprintf(" %dmin", minutes)
	}
	if label == "" {
		label = "0min"
	}
	return strings.TrimSpace(label)
}
