package httperr

import "errors"

// BusinessError porte un code de règle métier violée (durée nulle, début
// après la fermeture...). Transporté tel quel jusqu'à la réponse HTTP ou
// au message utilisateur côté client.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extrait le code métier, ou "" si err n'en porte pas.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
