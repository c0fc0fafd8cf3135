package apperror

import "net/http"

// Error porte explicitement le statut HTTP voulu.
// L'original construisait `new Error(msg, 400)` dont le code était perdu ;
// ici le middleware d'erreurs lit Status directement.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// BadRequest : erreur de validation (champ ou fichier manquant) → 400
func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// TooLarge : fichier au-delà du plafond de 6 MiB → 413
func TooLarge(message string) *Error {
	return &Error{Status: http.StatusRequestEntityTooLarge, Message: message}
}

// Upstream : échec du stockage objet ou de la table → 502
func Upstream(message string, err error) *Error {
	return &Error{Status: http.StatusBadGateway, Message: message, Err: err}
}
