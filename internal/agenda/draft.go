package agenda

import (
	"strings"
	"time"

	"github.com/MaisonCoiffure01/salon-scheduler/internal/httperr"
	"github.com/MaisonCoiffure01/salon-scheduler/internal/schedule"
	"github.com/MaisonCoiffure01/salon-scheduler/internal/validators"
)

// ======================================================
// DRAFT
// ======================================================

// Draft est le rendez-vous en cours de saisie dans le panneau flottant.
// Il n'existe que tant que le panneau est ouvert et n'est jamais persisté
// tel quel.
type Draft struct {
	CustomerID string
	Start      time.Time
	Duration   DurationSpec
}

// DurationSpec est la durée d'un brouillon, sous l'une de ses deux formes :
// saisie libre en heures/minutes, ou prestation du catalogue dont la
// composition fixe la durée.
type DurationSpec interface {
	minutes(cat *schedule.Catalog) (int, error)
}

// FixedDuration : saisie libre (anciens écrans heures/minutes).
type FixedDuration struct {
	Hours   int
	Minutes int
}

func (d FixedDuration) minutes(*schedule.Catalog) (int, error) {
	return d.Hours*60 + d.Minutes, nil
}

// ServiceBased : la prestation choisie détermine la durée.
type ServiceBased struct {
	Code       string
	BlockIndex int
}

func (d ServiceBased) minutes(cat *schedule.Catalog) (int, error) {
	if cat == nil {
		return 0, httperr.ErrBusiness("unknown_service")
	}
	if _, ok := cat.Get(d.Code); !ok {
		return 0, httperr.ErrBusiness("unknown_service")
	}
	return cat.Compose(d.Code, d.BlockIndex).TotalDuration(), nil
}

// complete vérifie que tous les champs obligatoires sont saisis.
func (d *Draft) complete() bool {
	return d != nil && d.CustomerID != "" && !d.Start.IsZero() && d.Duration != nil
}

// ======================================================
// CUSTOMER FORM
// ======================================================

// CustomerForm est la saisie d'un nouveau client : nom éclaté en trois
// champs, recomposé en un seul nom d'affichage avant l'envoi.
type CustomerForm struct {
	Surname   string
	GivenName string
	Nickname  string
	Phone     string
}

// ComposedName assemble "Prénom Nom (Surnom)", selon les champs remplis.
func (f CustomerForm) ComposedName() string {
	name := strings.TrimSpace(strings.TrimSpace(f.GivenName) + " " + strings.TrimSpace(f.Surname))

	nickname := strings.TrimSpace(f.Nickname)
	if nickname != "" {
		if name == "" {
			return nickname
		}
		name += " (" + nickname + ")"
	}

	return name
}

// CanSubmit pilote l'activation du bouton d'ajout : un nom et un numéro à
// dix chiffres exactement.
func (f CustomerForm) CanSubmit() bool {
	return f.ComposedName() != "" && validators.IsPhoneValid(f.Phone)
}
