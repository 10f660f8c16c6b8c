package validators

import "regexp"

// Numéro français sans indicatif : exactement 10 chiffres.
var phonePattern = regexp.MustCompile(`^\d{10}$`)

func IsPhoneValid(phone string) bool {
	return phonePattern.MatchString(phone)
}

// IsPhonePartial accepte une saisie en cours : uniquement des chiffres,
// dix au plus.
var partialPattern = regexp.MustCompile(`^\d{0,10}$`)

func IsPhonePartial(phone string) bool {
	return partialPattern.MatchString(phone)
}
