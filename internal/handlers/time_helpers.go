package handlers

import (
	"time"

	"github.com/MaisonCoiffure01/salon-scheduler/internal/timezone"
)

// Format de date du contrat API : à la minute près, sans fuseau explicite,
// interprété dans le fuseau du salon.
const apiDateLayout = "2006-01-02T15:04"

func parseAPIDate(tz, value string) (time.Time, error) {
	return time.ParseInLocation(apiDateLayout, value, timezone.Location(tz))
}

func formatAPIDate(t time.Time) string {
	return t.Format(apiDateLayout)
}
