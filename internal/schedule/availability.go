package schedule

import "time"

// ===============================
// Availability
// ===============================

// AvailableAt retourne les prestations réservables à cet instant : salon
// ouvert, et composition complète tenant avant la fermeture. Les rendez-vous
// existants restent arbitrés par le serveur au moment de la création.
func (c *Catalog) AvailableAt(at time.Time) []Service {
	if !IsOpenAt(at) {
		return []Service{}
	}

	available := make([]Service, 0, len(c.services))
	for _, code := range c.Codes() {
		svc := c.services[code]
		total := c.Compose(code, 0).TotalDuration()
		if total <= 0 {
			continue
		}

		end := at.Add(time.Duration(total) * time.Minute)
		if end.After(CloseOfDay(at)) {
			continue
		}

		available = append(available, svc)
	}

	return available
}
