package agenda

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaisonCoiffure01/salon-scheduler/internal/schedule"
)

func loadedStore(t *testing.T, api *fakeAPI) *Store {
	t.Helper()
	s := newTestStore(api)
	require.NoError(t, s.Load(context.Background()))
	return s
}

func TestSubmitDraftMissingFields(t *testing.T) {
	api := &fakeAPI{customers: []Customer{{ID: "srv-1", Name: "Alice", Phone: "0791234567"}}}
	s := loadedStore(t, api)

	s.OnDateClick(context.Background(), time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), Point{}, Size{Width: 1000, Height: 700})

	// ni client ni durée : rien ne part
	err := s.SubmitDraft(context.Background())

	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Equal(t, msgMissingFields, err.Error())
	assert.Equal(t, 0, api.addAppointmentCalls)
	assert.Equal(t, PanelEditing, s.PanelState())
}

func TestSubmitCoupeNearClosingClampsToTenMinutes(t *testing.T) {
	api := &fakeAPI{
		customers: []Customer{{ID: "srv-1", Name: "Alice", Phone: "0791234567"}},
		services:  map[string]schedule.Service{"coupe": coupeService()},
	}

	var notices []string
	s := NewStore(Config{
		API:      api,
		Location: time.UTC,
		Notify:   func(m string) { notices = append(notices, m) },
	})
	require.NoError(t, s.Load(context.Background()))

	start := time.Date(2024, 1, 1, 20, 50, 0, 0, time.UTC)
	s.OnDateClick(context.Background(), start, Point{X: 400, Y: 200}, Size{Width: 1000, Height: 700})

	draft := s.Draft()
	require.NotNil(t, draft)
	draft.CustomerID = "srv-1"
	draft.Duration = ServiceBased{Code: "coupe", BlockIndex: 0}

	require.NoError(t, s.SubmitDraft(context.Background()))

	// les 30 minutes de la coupe ne tiennent pas avant 21h
	assert.Equal(t, 10, api.lastNewAppointment.DurationMinutes)
	assert.Equal(t, "coupe", api.lastNewAppointment.ServiceCode)
	assert.Equal(t, "2024-01-01T20:50", api.lastNewAppointment.Date)
	assert.Contains(t, notices, msgDurationClamped)

	events := s.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "Alice - C", events[0].Title)
	assert.Equal(t, "#e67e22", events[0].Color)
	assert.Equal(t, "10min", schedule.DurationLabel(10))

	assert.Equal(t, PanelClosed, s.PanelState())
}

func TestSubmitDraftRollbackKeepsPanelOpen(t *testing.T) {
	api := &fakeAPI{
		customers: []Customer{{ID: "srv-1", Name: "Alice", Phone: "0791234567"}},
		services:  map[string]schedule.Service{"coupe": coupeService()},
	}
	s := loadedStore(t, api)

	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	s.OnDateClick(context.Background(), start, Point{}, Size{Width: 1000, Height: 700})
	s.Draft().CustomerID = "srv-1"
	s.Draft().Duration = FixedDuration{Hours: 1}

	api.failWrites = true
	err := s.SubmitDraft(context.Background())

	require.Error(t, err)
	assert.Empty(t, s.Appointments())
	// le panneau reste ouvert pour corriger et réessayer
	assert.Equal(t, PanelEditing, s.PanelState())
}

func TestSubmitDraftUnknownService(t *testing.T) {
	api := &fakeAPI{customers: []Customer{{ID: "srv-1", Name: "Alice", Phone: "0791234567"}}}
	s := loadedStore(t, api)

	s.OnDateClick(context.Background(), time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), Point{}, Size{Width: 1000, Height: 700})
	s.Draft().CustomerID = "srv-1"
	s.Draft().Duration = ServiceBased{Code: "perm", BlockIndex: 0}

	err := s.SubmitDraft(context.Background())

	require.Error(t, err)
	assert.Equal(t, msgUnknownService, err.Error())
	assert.Equal(t, 0, api.addAppointmentCalls)
}

func TestEventsDeriveTitleAndColorFromCatalog(t *testing.T) {
	api := &fakeAPI{
		services: map[string]schedule.Service{"coupe": coupeService()},
		appointments: []Appointment{
			{ID: "srv-1", CustomerID: "c1", Customer: "Bob", Date: "2024-01-01T14:00", DurationMinutes: 30, ServiceCode: "coupe", BlockIndex: 0},
			{ID: "srv-2", CustomerID: "c2", Customer: "Chloé", Date: "2024-01-01T09:00", DurationMinutes: 45},
		},
	}
	s := loadedStore(t, api)

	events := s.Events()
	require.Len(t, events, 2)

	// tri par heure de début
	assert.Equal(t, "Chloé", events[0].Title)
	assert.Equal(t, schedule.FallbackColor, events[0].Color)
	assert.Equal(t, time.Date(2024, 1, 1, 9, 45, 0, 0, time.UTC), events[0].End)

	assert.Equal(t, "Bob - C", events[1].Title)
	assert.Equal(t, "#e67e22", events[1].Color)
}

func TestOnEventClickDeleteAfterConfirm(t *testing.T) {
	api := &fakeAPI{
		appointments: []Appointment{
			{ID: "srv-1", CustomerID: "c1", Customer: "Bob", Date: "2024-01-01T14:00", DurationMinutes: 90},
		},
	}
	s := loadedStore(t, api)

	s.OnEventClick("srv-1")

	assert.Equal(t, PanelConfirming, s.PanelState())
	assert.Contains(t, s.ConfirmMessage(), "Bob")
	assert.Contains(t, s.ConfirmMessage(), "01/01/2024")
	assert.Contains(t, s.ConfirmMessage(), "14h00 - 15h30")
	assert.Contains(t, s.ConfirmMessage(), "Durée : 1h 30min")
	assert.Equal(t, 0, api.deleteApCalls)

	require.NoError(t, s.Confirm(context.Background()))

	assert.Equal(t, 1, api.deleteApCalls)
	assert.Empty(t, s.Appointments())
}

func TestOnEventDropFailureCallsRevert(t *testing.T) {
	api := &fakeAPI{
		appointments: []Appointment{
			{ID: "srv-1", CustomerID: "c1", Customer: "Bob", Date: "2024-01-01T14:00", DurationMinutes: 60},
		},
	}
	s := loadedStore(t, api)
	api.failWrites = true

	reverted := false
	newStart := time.Date(2024, 1, 1, 16, 0, 0, 0, time.UTC)
	err := s.OnEventDrop(context.Background(), "srv-1", newStart, newStart.Add(time.Hour), func() { reverted = true })

	require.Error(t, err)
	assert.True(t, reverted)
	// le record local n'a pas bougé
	assert.Equal(t, "2024-01-01T14:00", s.Appointments()[0].Date)
}

func TestOnEventDropServiceKeepsComposedDuration(t *testing.T) {
	api := &fakeAPI{
		services: map[string]schedule.Service{"coupe": coupeService()},
		appointments: []Appointment{
			{ID: "srv-1", CustomerID: "c1", Customer: "Bob", Date: "2024-01-01T14:00", DurationMinutes: 30, ServiceCode: "coupe", BlockIndex: 0},
		},
	}
	s := loadedStore(t, api)

	// le widget étire parfois la sélection en déposant ; la durée composée prime
	newStart := time.Date(2024, 1, 1, 16, 0, 0, 0, time.UTC)
	require.NoError(t, s.OnEventDrop(context.Background(), "srv-1", newStart, newStart.Add(2*time.Hour), nil))

	require.NotNil(t, api.lastChange.DurationMinutes)
	assert.Equal(t, 30, *api.lastChange.DurationMinutes)
	require.NotNil(t, api.lastChange.Date)
	assert.Equal(t, "2024-01-01T16:00", *api.lastChange.Date)
}

func TestOnEventResizeServiceBasedIsRejected(t *testing.T) {
	api := &fakeAPI{
		services: map[string]schedule.Service{"coupe": coupeService()},
		appointments: []Appointment{
			{ID: "srv-1", CustomerID: "c1", Customer: "Bob", Date: "2024-01-01T14:00", DurationMinutes: 30, ServiceCode: "coupe", BlockIndex: 0},
		},
	}
	s := loadedStore(t, api)

	reverted := false
	newStart := time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC)
	err := s.OnEventResize(context.Background(), "srv-1", newStart, newStart.Add(time.Hour), func() { reverted = true })

	require.Error(t, err)
	assert.Equal(t, msgResizeDisabled, err.Error())
	assert.True(t, reverted)
	assert.Equal(t, 0, api.updateApCalls)
}

func TestOnEventDropPastClosingIsRejected(t *testing.T) {
	api := &fakeAPI{
		appointments: []Appointment{
			{ID: "srv-1", CustomerID: "c1", Customer: "Bob", Date: "2024-01-01T14:00", DurationMinutes: 60},
		},
	}
	s := loadedStore(t, api)

	reverted := false
	newStart := time.Date(2024, 1, 1, 21, 30, 0, 0, time.UTC)
	err := s.OnEventDrop(context.Background(), "srv-1", newStart, newStart.Add(time.Hour), func() { reverted = true })

	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.True(t, reverted)
	assert.Equal(t, 0, api.updateApCalls)
}

func TestAvailabilityFailClosedAndClearedOnClose(t *testing.T) {
	api := &fakeAPI{services: map[string]schedule.Service{"coupe": coupeService()}}
	s := loadedStore(t, api)

	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	s.OnDateClick(context.Background(), start, Point{}, Size{Width: 1000, Height: 700})
	assert.Contains(t, s.AvailableServices(), "coupe")

	s.ClosePanel()
	assert.Nil(t, s.AvailableServices())

	// échec serveur : rien n'est réservable
	api.failAvailability = true
	s.OnDateClick(context.Background(), start, Point{}, Size{Width: 1000, Height: 700})
	require.NotNil(t, s.AvailableServices())
	assert.Empty(t, s.AvailableServices())
}
