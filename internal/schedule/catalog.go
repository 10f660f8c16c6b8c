package schedule

import "sort"

// ===============================
// Service Catalog
// ===============================

type BlockKind string

const (
	BlockService BlockKind = "service"
	BlockPause   BlockKind = "pause"
)

// Block est une sous-unité ordonnée d'une prestation : du travail ou une
// pause, avec sa propre durée et un libellé/code optionnels.
type Block struct {
	Kind        BlockKind `json:"kind"`
	DurationMin int       `json:"duration_min"`
	Label       string    `json:"label,omitempty"`
	ShortCode   string    `json:"short_code,omitempty"`
}

// Service est une composition nommée et ordonnée de blocs, avec une couleur
// d'affichage. Les blocs s'enchaînent dos à dos à partir de l'heure de début.
type Service struct {
	Code   string  `json:"code"`
	Name   string  `json:"name"`
	Color  string  `json:"color"`
	Blocks []Block `json:"blocks"`
}

// Catalog référence les prestations réservables, par code. Données en
// lecture seule, chargées une fois puis consultées.
type Catalog struct {
	services map[string]Service
}

func NewCatalog(services []Service) *Catalog {
	m := make(map[string]Service, len(services))
	for _, s := range services {
		m[s.Code] = s
	}
	return &Catalog{services: m}
}

func (c *Catalog) Get(code string) (Service, bool) {
	s, ok := c.services[code]
	return s, ok
}

func (c *Catalog) Len() int {
	return len(c.services)
}

// Codes retourne les codes triés, pour un affichage stable.
func (c *Catalog) Codes() []string {
	codes := make([]string, 0, len(c.services))
	for code := range c.services {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
