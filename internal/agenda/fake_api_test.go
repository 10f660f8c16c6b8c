package agenda

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MaisonCoiffure01/salon-scheduler/internal/schedule"
)

var errBackendDown = errors.New("backend down")

// fakeAPI simule le backend : collections en mémoire, pannes à la demande.
type fakeAPI struct {
	customers    []Customer
	appointments []Appointment
	services     map[string]schedule.Service

	failWrites       bool
	failRefetch      bool
	failAvailability bool

	addCustomerCalls    int
	deleteCustomerCalls int
	addAppointmentCalls int
	deleteApCalls       int
	updateApCalls       int

	lastNewAppointment NewAppointment
	lastChange         AppointmentChange

	nextID int
}

func (f *fakeAPI) serverID() string {
	f.nextID++
	return fmt.Sprintf("srv-%d", f.nextID)
}

func (f *fakeAPI) GetCustomers(context.Context) ([]Customer, error) {
	if f.failRefetch {
		return nil, errBackendDown
	}
	return slices.Clone(f.customers), nil
}

func (f *fakeAPI) AddCustomer(_ context.Context, name, phone string) error {
	f.addCustomerCalls++
	if f.failWrites {
		return errBackendDown
	}
	f.customers = append(f.customers, Customer{ID: f.serverID(), Name: name, Phone: phone})
	return nil
}

func (f *fakeAPI) UpdateCustomer(_ context.Context, id string, patch CustomerPatch) error {
	if f.failWrites {
		return errBackendDown
	}
	for i := range f.customers {
		if f.customers[i].ID == id {
			if patch.Name != nil {
				f.customers[i].Name = *patch.Name
			}
			if patch.Phone != nil {
				f.customers[i].Phone = *patch.Phone
			}
		}
	}
	return nil
}

func (f *fakeAPI) DeleteCustomer(_ context.Context, id string) error {
	f.deleteCustomerCalls++
	if f.failWrites {
		return errBackendDown
	}
	f.customers = slices.DeleteFunc(f.customers, func(c Customer) bool { return c.ID == id })
	return nil
}

func (f *fakeAPI) GetAppointments(context.Context) ([]Appointment, error) {
	if f.failRefetch {
		return nil, errBackendDown
	}
	return slices.Clone(f.appointments), nil
}

func (f *fakeAPI) AddAppointment(_ context.Context, req NewAppointment) error {
	f.addAppointmentCalls++
	f.lastNewAppointment = req
	if f.failWrites {
		return errBackendDown
	}

	name := ""
	for _, c := range f.customers {
		if c.ID == req.CustomerID {
			name = c.Name
		}
	}

	f.appointments = append(f.appointments, Appointment{
		ID:              f.serverID(),
		CustomerID:      req.CustomerID,
		Customer:        name,
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		ServiceCode:     req.ServiceCode,
		BlockIndex:      req.BlockIndex,
	})
	return nil
}

func (f *fakeAPI) UpdateAppointment(_ context.Context, id string, req AppointmentChange) error {
	f.updateApCalls++
	f.lastChange = req
	if f.failWrites {
		return errBackendDown
	}
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			if req.Date != nil {
				f.appointments[i].Date = *req.Date
			}
			if req.DurationMinutes != nil {
				f.appointments[i].DurationMinutes = *req.DurationMinutes
			}
		}
	}
	return nil
}

func (f *fakeAPI) DeleteAppointment(_ context.Context, id string) error {
	f.deleteApCalls++
	if f.failWrites {
		return errBackendDown
	}
	f.appointments = slices.DeleteFunc(f.appointments, func(a Appointment) bool { return a.ID == id })
	return nil
}

func (f *fakeAPI) GetServices(context.Context) (map[string]schedule.Service, error) {
	if f.failRefetch {
		return nil, errBackendDown
	}
	return f.services, nil
}

func (f *fakeAPI) GetAvailableServices(_ context.Context, at time.Time) (map[string]schedule.Service, error) {
	if f.failAvailability {
		return nil, errBackendDown
	}

	out := make(map[string]schedule.Service)
	for code, svc := range f.services {
		out[code] = svc
	}
	return out, nil
}

func coupeService() schedule.Service {
	return schedule.Service{
		Code:  "coupe",
		Name:  "Coupe",
		Color: "#e67e22",
		Blocks: []schedule.Block{
			{Kind: schedule.BlockService, DurationMin: 30, Label: "Coupe", ShortCode: "C"},
		},
	}
}

func newTestStore(api API) *Store {
	return NewStore(Config{
		API:      api,
		Location: time.UTC,
	})
}
