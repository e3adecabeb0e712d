package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"approval-tracker/internal/models"

	"gorm.io/gorm"
)

// UserDirectory resuelve actores contra el directorio de usuarios activos.
type UserDirectory interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
}

// Notifier avisa al aprobador cuando se crea una solicitud. Mejor esfuerzo:
// su resultado nunca llega al llamador del motor.
type Notifier interface {
	Notify(req models.Request, approver models.User) error
}

// Engine es el dueño del ciclo de vida de las solicitudes: valida las
// transiciones y acopla cada una con su entrada de historial en una sola
// transacción.
type Engine struct {
	db       *gorm.DB
	users    UserDirectory
	notifier Notifier
}

func New(db *gorm.DB, users UserDirectory, notifier Notifier) *Engine {
	return &Engine{db: db, users: users, notifier: notifier}
}

type CreateInput struct {
	Title       string
	Description string
	RequestType models.RequestType
	Priority    models.RequestPriority
	RequesterID uint
	ApproverID  uint
}

// columnas de lectura: la fila de la solicitud más los nombres resueltos
const hydratedColumns = `requests.*,
	(SELECT full_name FROM users WHERE users.id = requests.requester_id) AS requester_name,
	(SELECT full_name FROM users WHERE users.id = requests.approver_id) AS approver_name`

//
// CREACIÓN
//

func (e *Engine) Create(ctx context.Context, in CreateInput) (*models.Request, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)

	if in.Title == "" {
		return nil, &ValidationError{Msg: "el título es obligatorio"}
	}
	if in.Description == "" {
		return nil, &ValidationError{Msg: "la descripción es obligatoria"}
	}

	switch in.RequestType {
	case models.TypeDeployment, models.TypeAccess, models.TypeChange, models.TypeTool:
	default:
		return nil, &ValidationError{Msg: "el tipo de solicitud no es válido"}
	}

	if in.Priority == "" {
		in.Priority = models.PriorityMedium
	}
	switch in.Priority {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
	default:
		return nil, &ValidationError{Msg: "la prioridad no es válida"}
	}

	if in.RequesterID == 0 || in.ApproverID == 0 {
		return nil, &ValidationError{Msg: "faltan el solicitante o el aprobador"}
	}
	if in.RequesterID == in.ApproverID {
		return nil, &ValidationError{Msg: "el solicitante y el aprobador deben ser usuarios distintos"}
	}

	requester, err := e.lookupUser(ctx, in.RequesterID, "el solicitante no existe o está inactivo")
	if err != nil {
		return nil, err
	}
	approver, err := e.lookupUser(ctx, in.ApproverID, "el aprobador no existe o está inactivo")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	req := models.Request{
		Code:        fmt.Sprintf("REQ-%d", now.UnixMilli()),
		Title:       in.Title,
		Description: in.Description,
		RequestType: in.RequestType,
		Priority:    in.Priority,
		Status:      models.StatusPending,
		RequesterID: in.RequesterID,
		ApproverID:  in.ApproverID,
		CreatedAt:   now,
	}

	// solicitud + entrada "created": o se guardan las dos o ninguna
	err = e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&req).Error; err != nil {
			return err
		}
		entry := models.HistoryEntry{
			RequestID: req.ID,
			UserID:    in.RequesterID,
			Action:    models.ActionCreated,
			Comment:   "Solicitud creada",
			CreatedAt: now,
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, &PersistenceError{Op: "crear solicitud", Err: err}
	}

	req.RequesterName = requester.FullName
	req.ApproverName = approver.FullName

	// la notificación queda fuera de la unidad atómica
	if e.notifier != nil {
		go func(req models.Request, approver models.User) {
			if err := e.notifier.Notify(req, approver); err != nil {
				log.Printf("notificación fallida para %s: %v", req.Code, err)
			}
		}(req, *approver)
	}

	return &req, nil
}

//
// TRANSICIÓN (aprobar / rechazar)
//

func (e *Engine) Transition(ctx context.Context, requestID uint, target models.RequestStatus, actorID uint, comment string) error {
	switch target {
	case models.StatusApproved, models.StatusRejected:
	default:
		return &ValidationError{Msg: "el estado destino no es válido"}
	}

	if _, err := e.lookupUser(ctx, actorID, "el usuario que decide no existe o está inactivo"); err != nil {
		return err
	}

	comment = strings.TrimSpace(comment)
	if comment == "" {
		if target == models.StatusApproved {
			comment = "Solicitud aprobada"
		} else {
			comment = "Solicitud rechazada"
		}
	}

	now := time.Now()
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// compare-and-swap sobre el estado: solo avanza si sigue en pending
		res := tx.Model(&models.Request{}).
			Where("id = ? AND status = ?", requestID, models.StatusPending).
			Updates(map[string]interface{}{"status": target, "updated_at": now})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			var current models.Request
			if err := tx.First(&current, requestID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &NotFoundError{RequestID: requestID}
				}
				return err
			}
			return &InvalidTransitionError{Current: current.Status, Target: target}
		}

		entry := models.HistoryEntry{
			RequestID: requestID,
			UserID:    actorID,
			Action:    models.HistoryAction(target),
			Comment:   comment,
			CreatedAt: now,
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		var nf *NotFoundError
		var it *InvalidTransitionError
		if errors.As(err, &nf) || errors.As(err, &it) {
			return err
		}
		return &PersistenceError{Op: "actualizar solicitud", Err: err}
	}

	return nil
}

//
// LECTURAS
//

func (e *Engine) GetByID(ctx context.Context, requestID uint) (*models.Request, error) {
	var req models.Request
	err := e.db.WithContext(ctx).
		Select(hydratedColumns).
		First(&req, requestID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{RequestID: requestID}
		}
		return nil, &PersistenceError{Op: "leer solicitud", Err: err}
	}
	return &req, nil
}

func (e *Engine) ListAll(ctx context.Context) ([]models.Request, error) {
	requests := []models.Request{}
	err := e.db.WithContext(ctx).
		Select(hydratedColumns).
		Order("requests.created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, &PersistenceError{Op: "listar solicitudes", Err: err}
	}
	return requests, nil
}

func (e *Engine) History(ctx context.Context, requestID uint) ([]models.HistoryEntry, error) {
	var req models.Request
	err := e.db.WithContext(ctx).
		Select("id").
		First(&req, requestID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{RequestID: requestID}
		}
		return nil, &PersistenceError{Op: "leer solicitud", Err: err}
	}

	entries := []models.HistoryEntry{}
	err = e.db.WithContext(ctx).
		Select(`history_entries.*,
	(SELECT full_name FROM users WHERE users.id = history_entries.user_id) AS user_name`).
		Where("history_entries.request_id = ?", requestID).
		Order("history_entries.created_at DESC, history_entries.id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, &PersistenceError{Op: "leer historial", Err: err}
	}
	return entries, nil
}

func (e *Engine) lookupUser(ctx context.Context, id uint, msg string) (*models.User, error) {
	user, err := e.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ValidationError{Msg: msg}
		}
		return nil, &PersistenceError{Op: "consultar usuario", Err: err}
	}
	return user, nil
}
