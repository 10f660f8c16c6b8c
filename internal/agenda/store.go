package agenda

import (
	"context"
	"log"
	"time"

	"github.com/MaisonCoiffure01/salon-scheduler/internal/schedule"
	"github.com/MaisonCoiffure01/salon-scheduler/internal/timezone"
)

// ======================================================
// STORE
// ======================================================

// Config assemble le Store.
type Config struct {
	API API

	// Fuseau du salon ; Europe/Paris par défaut.
	Location *time.Location

	// Notify remonte les messages utilisateur (durée ajustée, erreurs
	// réseau...) à la couche de rendu. Facultatif.
	Notify func(message string)

	// Dimensions du panneau d'édition, pour le placement.
	PanelSize Size
}

// Store tient les copies locales des collections du serveur et tout l'état
// transitoire de l'écran calendrier. Il est piloté depuis la boucle
// d'événements de l'interface : un seul goroutine appelle ses méthodes,
// les callbacks réseau y compris.
type Store struct {
	api       API
	loc       *time.Location
	notify    func(string)
	panelSize Size

	customers    []Customer
	appointments []Appointment
	catalog      *schedule.Catalog

	panel        panel
	availability map[string]schedule.Service
}

func NewStore(cfg Config) *Store {
	loc := cfg.Location
	if loc == nil {
		loc = timezone.Location(timezone.DefaultTimezone)
	}

	notify := cfg.Notify
	if notify == nil {
		notify = func(string) {}
	}

	size := cfg.PanelSize
	if size.Width == 0 && size.Height == 0 {
		size = Size{Width: 322, Height: 353}
	}

	return &Store{
		api:       cfg.API,
		loc:       loc,
		notify:    notify,
		panelSize: size,
		catalog:   schedule.NewCatalog(nil),
	}
}

// Load charge les collections et le catalogue en début de session.
func (s *Store) Load(ctx context.Context) error {
	customers, err := s.api.GetCustomers(ctx)
	if err != nil {
		return err
	}

	appointments, err := s.api.GetAppointments(ctx)
	if err != nil {
		return err
	}

	services, err := s.api.GetServices(ctx)
	if err != nil {
		return err
	}

	s.customers = customers
	s.appointments = appointments
	s.setCatalog(services)
	return nil
}

func (s *Store) setCatalog(services map[string]schedule.Service) {
	list := make([]schedule.Service, 0, len(services))
	for _, svc := range services {
		list = append(list, svc)
	}
	s.catalog = schedule.NewCatalog(list)
}

func (s *Store) Customers() []Customer {
	return s.customers
}

func (s *Store) Appointments() []Appointment {
	return s.appointments
}

func (s *Store) Catalog() *schedule.Catalog {
	return s.catalog
}

// ======================================================
// PANEL
// ======================================================

func (s *Store) PanelState() PanelState {
	return s.panel.state
}

func (s *Store) PanelPosition() Point {
	return s.panel.position
}

// Draft expose le brouillon en cours, que la couche de rendu complète au
// fil de la saisie. Nil hors édition.
func (s *Store) Draft() *Draft {
	return s.panel.draft
}

func (s *Store) ConfirmMessage() string {
	if s.panel.pending == nil {
		return ""
	}
	return s.panel.pending.message
}

// Confirm exécute l'action en attente. Sans confirmation préalable, les
// suppressions ne partent jamais.
func (s *Store) Confirm(ctx context.Context) error {
	if s.panel.state != PanelConfirming || s.panel.pending == nil {
		return nil
	}

	run := s.panel.pending.run
	s.ClosePanel()
	return run(ctx)
}

// ClosePanel abandonne brouillon, action en attente et disponibilité en
// cache. Rouvrir redemande toujours tout.
func (s *Store) ClosePanel() {
	s.panel.close()
	s.availability = nil
}

// ======================================================
// AVAILABILITY
// ======================================================

// AvailableServices est la réponse du serveur mise en cache pour la durée
// de vie du panneau ouvert. Vide en cas d'échec du chargement : rien n'est
// réservable tant que le serveur n'a pas répondu (fail closed).
func (s *Store) AvailableServices() map[string]schedule.Service {
	return s.availability
}

func (s *Store) fetchAvailability(ctx context.Context, at time.Time) {
	services, err := s.api.GetAvailableServices(ctx, at)
	if err != nil {
		log.Printf("agenda: availability fetch failed: %v", err)
		s.availability = map[string]schedule.Service{}
		return
	}
	s.availability = services
}
