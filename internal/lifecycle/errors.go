package lifecycle

import (
	"fmt"

	"approval-tracker/internal/models"
)

// ValidationError — entrada inválida, el llamador puede corregirla.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NotFoundError — la solicitud referenciada no existe.
type NotFoundError struct {
	RequestID uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("solicitud no encontrada: id=%d", e.RequestID)
}

// InvalidTransitionError — intento de transición sobre una solicitud que
// ya no está en pending.
type InvalidTransitionError struct {
	Current models.RequestStatus
	Target  models.RequestStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("transición inválida a '%s': la solicitud ya está en estado '%s'", e.Target, e.Current)
}

// PersistenceError — la unidad atómica no pudo confirmarse. Es seguro
// reintentar el comando completo: o se aplica todo o no se aplica nada.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("error de almacenamiento en %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
