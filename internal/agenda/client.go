// Package agenda est le coeur applicatif de l'écran de réservation : il
// entretient les copies locales des collections du serveur, applique les
// mutations optimistes avec rollback, et pilote le panneau d'édition que la
// couche de rendu (widget calendrier) affiche.
package agenda

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MaisonCoiffure01/salon-scheduler/internal/schedule"
)

// Customer est la forme côté client d'un client du salon.
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Appointment est la forme côté client d'un rendez-vous, telle que servie
// par l'API (nom du client résolu, date "2006-01-02T15:04").
type Appointment struct {
	ID              string `json:"id"`
	CustomerID      string `json:"customer_id"`
	Customer        string `json:"customer"`
	Date            string `json:"date"`
	DurationMinutes int    `json:"duration_minutes"`
	ServiceCode     string `json:"service_code,omitempty"`
	BlockIndex      int    `json:"block_index"`
}

const wireDateLayout = "2006-01-02T15:04"

// Start interprète la date du rendez-vous dans le fuseau du salon.
func (a Appointment) Start(loc *time.Location) time.Time {
	t, _ := time.ParseInLocation(wireDateLayout, a.Date, loc)
	return t
}

// CustomerPatch est une mise à jour partielle, champ par champ.
type CustomerPatch struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

type NewAppointment struct {
	CustomerID      string `json:"customer_id"`
	Date            string `json:"date"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
	ServiceCode     string `json:"service_code,omitempty"`
	BlockIndex      int    `json:"block_index,omitempty"`
}

type AppointmentChange struct {
	Date            *string `json:"date,omitempty"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
}

// API est le contrat consommé auprès du backend. Le serveur reste la
// source de vérité ; toutes les écritures sont suivies d'une relecture.
type API interface {
	GetCustomers(ctx context.Context) ([]Customer, error)
	AddCustomer(ctx context.Context, name, phone string) error
	UpdateCustomer(ctx context.Context, id string, patch CustomerPatch) error
	DeleteCustomer(ctx context.Context, id string) error

	GetAppointments(ctx context.Context) ([]Appointment, error)
	AddAppointment(ctx context.Context, req NewAppointment) error
	UpdateAppointment(ctx context.Context, id string, req AppointmentChange) error
	DeleteAppointment(ctx context.Context, id string) error

	GetServices(ctx context.Context) (map[string]schedule.Service, error)
	GetAvailableServices(ctx context.Context, at time.Time) (map[string]schedule.Service, error)
}

// ======================================================
// HTTP CLIENT
// ======================================================

// Client parle au backend en JSON. Les requêtes ne sont pas annulables une
// fois parties ; une réponse arrivée après coup est simplement appliquée à
// l'état courant.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type ClientOption func(*Client)

// WithHTTPClient remplace le client HTTP par défaut.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("agenda: encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("agenda: create request %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("agenda: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("agenda: %s %s: status %d: %s", method, path, resp.StatusCode, string(raw))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("agenda: decode %s %s: %w", method, path, err)
		}
	}

	return nil
}

func (c *Client) GetCustomers(ctx context.Context) ([]Customer, error) {
	var customers []Customer
	if err := c.do(ctx, http.MethodGet, "/customers", nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (c *Client) AddCustomer(ctx context.Context, name, phone string) error {
	payload := map[string]string{"name": name, "phone": phone}
	return c.do(ctx, http.MethodPost, "/customers", payload, nil)
}

func (c *Client) UpdateCustomer(ctx context.Context, id string, patch CustomerPatch) error {
	return c.do(ctx, http.MethodPut, "/customers/"+id, patch, nil)
}

func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/customers/"+id, nil, nil)
}

func (c *Client) GetAppointments(ctx context.Context) ([]Appointment, error) {
	var appointments []Appointment
	if err := c.do(ctx, http.MethodGet, "/appointments", nil, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (c *Client) AddAppointment(ctx context.Context, req NewAppointment) error {
	return c.do(ctx, http.MethodPost, "/appointments", req, nil)
}

func (c *Client) UpdateAppointment(ctx context.Context, id string, req AppointmentChange) error {
	return c.do(ctx, http.MethodPut, "/appointments/"+id, req, nil)
}

func (c *Client) DeleteAppointment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/appointments/"+id, nil, nil)
}

func (c *Client) GetServices(ctx context.Context) (map[string]schedule.Service, error) {
	var services map[string]schedule.Service
	if err := c.do(ctx, http.MethodGet, "/services", nil, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (c *Client) GetAvailableServices(ctx context.Context, at time.Time) (map[string]schedule.Service, error) {
	var services map[string]schedule.Service
	path := "/available-services?at=" + at.Format(wireDateLayout)
	if err := c.do(ctx, http.MethodGet, path, nil, &services); err != nil {
		return nil, err
	}
	return services, nil
}
