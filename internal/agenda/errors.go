package agenda

import "errors"

// Messages utilisateur (écran en français).
const (
	msgMissingFields       = "Veuillez remplir tous les champs."
	msgNonPositiveDuration = "La durée doit être supérieure à 0."
	msgInvalidPhone        = "Le numéro de téléphone a un format incorrect."
	msgUnknownService      = "Prestation inconnue."
	msgDurationClamped     = "La durée a été ajustée pour finir au plus tard à 21h."
	msgResizeDisabled      = "La durée de cette prestation est fixée par sa composition."

	confirmDeleteCustomer = "Voulez-vous vraiment supprimer ce client ?\nATTENTION ! TOUS ses rendez-vous associés seront aussi supprimés."
)

// ValidationError est rejetée localement : aucune requête réseau n'est
// émise et rien n'est retenté automatiquement.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func errValidation(message string) error {
	return &ValidationError{Message: message}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
