package schedule

import (
	"time"

	"github.com/MaisonCoiffure01/salon-scheduler/internal/httperr"
)

// ===============================
// Slot Validator
// ===============================

// Horaires du salon, heure locale du jour de début. Le dimanche est fermé.
const (
	OpenHour  = 8
	CloseHour = 21
)

// ClampResult est la durée validée d'un créneau, avec l'indication qu'elle
// a été raccourcie pour respecter l'heure de fermeture.
type ClampResult struct {
	DurationMin int
	Clamped     bool
}

// CloseOfDay retourne 21:00:00.000 du jour civil de start, dans son fuseau.
func CloseOfDay(start time.Time) time.Time {
	return time.Date(
		start.Year(), start.Month(), start.Day(),
		CloseHour, 0, 0, 0,
		start.Location(),
	)
}

// ClampToClose valide et borne une durée demandée.
//
// La fin du rendez-vous ne dépasse jamais 21h du jour de début : la durée
// est raccourcie si nécessaire (Clamped=true, à signaler à l'utilisateur).
// Une durée demandée nulle ou négative, ou un début à 21h ou après (durée
// bornée <= 0), est rejetée et jamais envoyée au serveur.
func ClampToClose(start time.Time, durationMin int) (ClampResult, error) {
	if durationMin <= 0 {
		return ClampResult{}, httperr.ErrBusiness("non_positive_duration")
	}

	maxEnd := CloseOfDay(start)
	requestedEnd := start.Add(time.Duration(durationMin) * time.Minute)

	if !requestedEnd.After(maxEnd) {
		return ClampResult{DurationMin: durationMin}, nil
	}

	clamped := int(maxEnd.Sub(start) / time.Minute)
	if clamped <= 0 {
		return ClampResult{}, httperr.ErrBusiness("past_closing_time")
	}

	return ClampResult{DurationMin: clamped, Clamped: true}, nil
}

// IsOpenAt indique si le salon est ouvert à cet instant (jour ouvré,
// entre l'ouverture et la fermeture).
func IsOpenAt(at time.Time) bool {
	if at.Weekday() == time.Sunday {
		return false
	}

	open := time.Date(at.Year(), at.Month(), at.Day(), OpenHour, 0, 0, 0, at.Location())
	return !at.Before(open) && at.Before(CloseOfDay(at))
}
