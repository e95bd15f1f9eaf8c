package daylock

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/record"
)

var (
	// transient user-facing errors; the caller may simply retry
	ErrConfirmFailed   = errors.New("could not confirm the attendance sheet; please try again")
	ErrUnconfirmFailed = errors.New("could not reopen the attendance sheet; please try again")
)

type (
	// Key identifies one attendance sheet: a calendar day in one class.
	Key struct {
		Date    string
		ClassID string
	}

	// Confirmer is the external attendance-confirmation collaborator.
	Confirmer interface {
		Confirm(ctx context.Context, date, classID string, records []record.AttendanceRecord) error
		Unconfirm(ctx context.Context, date, classID string) error
	}

	// Service tracks which (date, class) attendance sheets are confirmed.
	// Open is implicit: a key with no entry is open. State transitions happen
	// only after a successful round-trip to the collaborator, and the registry
	// is session-local; it is not persisted alongside the records it gates, so
	// a restart loses it unless the external layer is queried again.
	Service struct {
		client Confirmer
		logger core.Logger

		mu        sync.RWMutex
		confirmed map[Key]bool
	}
)

func NewService(client Confirmer, logger core.Logger) *Service {
	return &Service{
		client:    client,
		logger:    logger,
		confirmed: make(map[Key]bool),
	}
}

func (svc *Service) IsConfirmed(date, classID string) bool {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return svc.confirmed[Key{Date: date, ClassID: classID}]
}

// Confirm locks the (date, class) sheet, carrying along the scoped attendance
// subset for that key. On collaborator failure the key stays open.
// Locking is advisory: the core does not reject later attendance writes for a
// confirmed key; only the presentation layer disables them.
func (svc *Service) Confirm(ctx context.Context, date, classID string, records []record.AttendanceRecord) error {
	if err := svc.client.Confirm(ctx, date, classID, records); err != nil {
		svc.logger.Error(fmt.Sprintf("confirming attendance %s/%s: %v", date, classID, err), err)
		return ErrConfirmFailed
	}
	svc.set(date, classID, true)
	return nil
}

// Unconfirm reopens the sheet; symmetric to Confirm.
func (svc *Service) Unconfirm(ctx context.Context, date, classID string) error {
	if err := svc.client.Unconfirm(ctx, date, classID); err != nil {
		svc.logger.Error(fmt.Sprintf("reopening attendance %s/%s: %v", date, classID, err), err)
		return ErrUnconfirmFailed
	}
	svc.set(date, classID, false)
	return nil
}

func (svc *Service) set(date, classID string, confirmed bool) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	key := Key{Date: date, ClassID: classID}
	if confirmed {
		svc.confirmed[key] = true
	} else {
		delete(svc.confirmed, key)
	}
}
