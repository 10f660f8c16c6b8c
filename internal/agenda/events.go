package agenda

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/MaisonCoiffure01/salon-scheduler/internal/httperr"
	"github.com/MaisonCoiffure01/salon-scheduler/internal/schedule"
)

// ======================================================
// CALENDAR EVENTS
// ======================================================

// Event est ce que le widget calendrier affiche.
type Event struct {
	ID    string
	Title string
	Start time.Time
	End   time.Time
	Color string
}

// RevertFunc annule le déplacement visuel déjà effectué par le widget
// quand la mise à jour serveur échoue.
type RevertFunc func()

func (s *Store) compositionFor(ap Appointment) schedule.Composition {
	if ap.ServiceCode == "" {
		return schedule.ComposeRaw()
	}
	return s.catalog.Compose(ap.ServiceCode, ap.BlockIndex)
}

// Events dérive la liste ordonnée des événements du calendrier. La durée
// vient de l'enregistrement (le serveur a pu la raccourcir), le titre et
// la couleur de la composition de la prestation.
func (s *Store) Events() []Event {
	events := make([]Event, 0, len(s.appointments))

	for _, ap := range s.appointments {
		start := ap.Start(s.loc)
		cp := s.compositionFor(ap)

		events = append(events, Event{
			ID:    ap.ID,
			Title: cp.DisplayTitle(ap.Customer),
			Start: start,
			End:   start.Add(time.Duration(ap.DurationMinutes) * time.Minute),
			Color: cp.Color(),
		})
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].Start.Before(events[j].Start)
	})

	return events
}

// ======================================================
// INTERACTIONS
// ======================================================

// OnDateClick ouvre le panneau d'édition sur un brouillon vierge, placé
// près du clic, et interroge le serveur sur les prestations réservables à
// cet instant.
func (s *Store) OnDateClick(ctx context.Context, start time.Time, pointer Point, viewport Size) {
	position := Place(pointer, s.panelSize, viewport)
	s.panel.openEditing(&Draft{Start: start}, position)
	s.fetchAvailability(ctx, start)
}

// SubmitDraft valide puis enregistre le brouillon courant. Le panneau se
// ferme en cas de succès, reste ouvert sinon.
func (s *Store) SubmitDraft(ctx context.Context) error {
	draft := s.panel.draft
	if !draft.complete() {
		return errValidation(msgMissingFields)
	}

	minutes, err := draft.Duration.minutes(s.catalog)
	if err != nil {
		return errValidation(msgUnknownService)
	}

	clamp, err := schedule.ClampToClose(draft.Start, minutes)
	if err != nil {
		return errValidation(msgNonPositiveDuration)
	}
	if clamp.Clamped {
		s.notify(msgDurationClamped)
	}

	req := NewAppointment{
		CustomerID:      draft.CustomerID,
		Date:            draft.Start.Format(wireDateLayout),
		DurationMinutes: clamp.DurationMin,
	}
	if svc, ok := draft.Duration.(ServiceBased); ok {
		req.ServiceCode = svc.Code
		req.BlockIndex = svc.BlockIndex
	}

	provisional := Appointment{
		ID:              tempID(),
		CustomerID:      draft.CustomerID,
		Customer:        s.customerName(draft.CustomerID),
		Date:            req.Date,
		DurationMinutes: clamp.DurationMin,
		ServiceCode:     req.ServiceCode,
		BlockIndex:      req.BlockIndex,
	}

	err = applyMutation(ctx, &s.appointments,
		func(appointments []Appointment) []Appointment {
			return append(appointments, provisional)
		},
		func(ctx context.Context) error {
			return s.api.AddAppointment(ctx, req)
		},
		s.api.GetAppointments,
	)
	if err != nil {
		return err
	}

	s.ClosePanel()
	return nil
}

// OnEventClick affiche le détail du rendez-vous et demande confirmation
// avant suppression.
func (s *Store) OnEventClick(id string) {
	var ap *Appointment
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			ap = &s.appointments[i]
			break
		}
	}
	if ap == nil {
		return
	}

	start := ap.Start(s.loc)
	end := start.Add(time.Duration(ap.DurationMinutes) * time.Minute)

	message := fmt.Sprintf(
		"%s\n%s\n%s - %s\nDurée : %s",
		ap.Customer,
		start.Format("02/01/2006"),
		start.Format("15h04"),
		end.Format("15h04"),
		schedule.DurationLabel(ap.DurationMinutes),
	)

	s.panel.openConfirm(message, func(ctx context.Context) error {
		return s.deleteAppointment(ctx, id)
	})
}

// OnEventDrop suit un glisser-déposer : le widget a déjà déplacé
// l'événement, il ne reste qu'à valider, enregistrer, et lui faire
// annuler le déplacement si le serveur refuse.
func (s *Store) OnEventDrop(ctx context.Context, id string, newStart, newEnd time.Time, revert RevertFunc) error {
	return s.reschedule(ctx, id, newStart, newEnd, false, revert)
}

// OnEventResize suit un redimensionnement. La durée d'un rendez-vous lié
// à une prestation est fixée par sa composition : le redimensionnement est
// refusé et annulé visuellement.
func (s *Store) OnEventResize(ctx context.Context, id string, newStart, newEnd time.Time, revert RevertFunc) error {
	return s.reschedule(ctx, id, newStart, newEnd, true, revert)
}

func (s *Store) reschedule(ctx context.Context, id string, newStart, newEnd time.Time, resize bool, revert RevertFunc) error {
	var ap *Appointment
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			ap = &s.appointments[i]
			break
		}
	}
	if ap == nil {
		return nil
	}

	if resize && ap.ServiceCode != "" {
		if revert != nil {
			revert()
		}
		return errValidation(msgResizeDisabled)
	}

	minutes := int(newEnd.Sub(newStart) / time.Minute)
	if !resize && ap.ServiceCode != "" {
		// déplacement d'une prestation : la durée ne bouge pas
		minutes = ap.DurationMinutes
	}

	clamp, err := schedule.ClampToClose(newStart, minutes)
	if err != nil {
		if revert != nil {
			revert()
		}
		if httperr.IsBusiness(err, "past_closing_time") || httperr.IsBusiness(err, "non_positive_duration") {
			return errValidation(msgNonPositiveDuration)
		}
		return err
	}
	if clamp.Clamped {
		s.notify(msgDurationClamped)
	}

	date := newStart.Format(wireDateLayout)
	change := AppointmentChange{
		Date:            &date,
		DurationMinutes: &clamp.DurationMin,
	}

	// Pas d'enregistrement provisoire ici : le widget a déjà changé le
	// visuel, le rollback consiste à le lui faire annuler.
	if err := s.api.UpdateAppointment(ctx, id, change); err != nil {
		if revert != nil {
			revert()
		}
		return err
	}

	fresh, err := s.api.GetAppointments(ctx)
	if err != nil {
		log.Printf("agenda: refetch after reschedule failed, keeping optimistic state: %v", err)
		return nil
	}
	s.appointments = fresh
	return nil
}
