package confirmsvc

import (
	"context"
	"sync"

	"github.com/trezcool/darasa/core/daylock"
	"github.com/trezcool/darasa/core/record"
)

type (
	// Call records one round-trip made through the mock.
	Call struct {
		Op      string // "confirm" | "unconfirm"
		Date    string
		ClassID string
		Records []record.AttendanceRecord
	}

	// Mock stands in for the external confirmation collaborator in tests.
	// Set Err to make every call fail.
	Mock struct {
		mu    sync.Mutex
		Err   error
		Calls []Call
	}
)

var _ daylock.Confirmer = (*Mock)(nil)

func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Confirm(ctx context.Context, date, classID string, records []record.AttendanceRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Calls = append(m.Calls, Call{Op: "confirm", Date: date, ClassID: classID, Records: records})
	return nil
}

func (m *Mock) Unconfirm(ctx context.Context, date, classID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Calls = append(m.Calls, Call{Op: "unconfirm", Date: date, ClassID: classID})
	return nil
}
