package agenda

import (
	"context"
	"log"
	"slices"
	"strconv"
	"time"

	"github.com/MaisonCoiffure01/salon-scheduler/internal/validators"
)

// ======================================================
// OPTIMISTIC MUTATIONS
// ======================================================
//
// Chaque mutation suit le même protocole en trois phases :
//
//  1. appliquer le changement à la collection locale, immédiatement ;
//  2. appeler le serveur ;
//  3. réconcilier : relecture intégrale en cas de succès, retour à
//     l'instantané d'avant la phase 1 en cas d'échec.
//
// La relecture remplace la collection en bloc : les identifiants
// provisoires disparaissent et une réponse tardive reste inoffensive.
// Si la relecture elle-même échoue, l'état optimiste est conservé tel
// quel, incohérence bornée et simplement journalisée.

func applyMutation[T any](
	ctx context.Context,
	coll *[]T,
	apply func([]T) []T,
	call func(context.Context) error,
	refetch func(context.Context) ([]T, error),
) error {

	before := slices.Clone(*coll)
	*coll = apply(*coll)

	if err := call(ctx); err != nil {
		*coll = before
		return err
	}

	fresh, err := refetch(ctx)
	if err != nil {
		log.Printf("agenda: refetch after mutation failed, keeping optimistic state: %v", err)
		return nil
	}

	*coll = fresh
	return nil
}

// Identifiant provisoire d'un enregistrement optimiste, remplacé par celui
// du serveur à la première relecture.
func tempID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// ======================================================
// CUSTOMERS
// ======================================================

// AddCustomer valide la saisie puis insère un client provisoire le temps
// de l'aller-retour serveur.
func (s *Store) AddCustomer(ctx context.Context, form CustomerForm) error {
	name := form.ComposedName()
	if name == "" || form.Phone == "" {
		return errValidation(msgMissingFields)
	}
	if !validators.IsPhoneValid(form.Phone) {
		return errValidation(msgInvalidPhone)
	}

	provisional := Customer{ID: tempID(), Name: name, Phone: form.Phone}

	return applyMutation(ctx, &s.customers,
		func(customers []Customer) []Customer {
			return append(customers, provisional)
		},
		func(ctx context.Context) error {
			return s.api.AddCustomer(ctx, name, form.Phone)
		},
		s.api.GetCustomers,
	)
}

// UpdateCustomerField applique l'édition en ligne d'un champ ("name" ou
// "phone"). Un numéro mal formé est rejeté sans appel réseau.
func (s *Store) UpdateCustomerField(ctx context.Context, id, field, value string) error {
	var patch CustomerPatch

	switch field {
	case "name":
		patch.Name = &value
	case "phone":
		if !validators.IsPhoneValid(value) {
			return errValidation(msgInvalidPhone)
		}
		patch.Phone = &value
	default:
		return errValidation(msgMissingFields)
	}

	return applyMutation(ctx, &s.customers,
		func(customers []Customer) []Customer {
			for i := range customers {
				if customers[i].ID == id {
					if patch.Name != nil {
						customers[i].Name = *patch.Name
					}
					if patch.Phone != nil {
						customers[i].Phone = *patch.Phone
					}
				}
			}
			return customers
		},
		func(ctx context.Context) error {
			return s.api.UpdateCustomer(ctx, id, patch)
		},
		s.api.GetCustomers,
	)
}

// RequestDeleteCustomer ouvre la demande de confirmation ; la suppression
// ne part qu'après Confirm. Le serveur supprime aussi les rendez-vous du
// client (cascade).
func (s *Store) RequestDeleteCustomer(id string) {
	s.panel.openConfirm(confirmDeleteCustomer, func(ctx context.Context) error {
		return applyMutation(ctx, &s.customers,
			func(customers []Customer) []Customer {
				return slices.DeleteFunc(customers, func(c Customer) bool {
					return c.ID == id
				})
			},
			func(ctx context.Context) error {
				return s.api.DeleteCustomer(ctx, id)
			},
			s.api.GetCustomers,
		)
	})
}

// ======================================================
// APPOINTMENTS
// ======================================================

func (s *Store) customerName(id string) string {
	for _, c := range s.customers {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

func (s *Store) deleteAppointment(ctx context.Context, id string) error {
	return applyMutation(ctx, &s.appointments,
		func(appointments []Appointment) []Appointment {
			return slices.DeleteFunc(appointments, func(a Appointment) bool {
				return a.ID == id
			})
		},
		func(ctx context.Context) error {
			return s.api.DeleteAppointment(ctx, id)
		},
		s.api.GetAppointments,
	)
}
