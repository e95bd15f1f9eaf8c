package record

import (
	"context"
	"errors"
	"sync"

	pkgerrors "github.com/pkg/errors"
)

var (
	// errors
	ErrNoSnapshot = errors.New("records snapshot not fetched yet")
)

type (
	// Source delivers the five collections from the external data
	// collaborator. Each method returns the full list; narrowing happens
	// in-memory via Scope.
	Source interface {
		FetchStudents(ctx context.Context) ([]Student, error)
		FetchAttendance(ctx context.Context) ([]AttendanceRecord, error)
		FetchAssessments(ctx context.Context) ([]AssessmentScore, error)
		FetchParticipation(ctx context.Context) ([]ParticipationLog, error)
		FetchBehavioral(ctx context.Context) ([]BehavioralRecord, error)
	}

	Service struct {
		src  Source
		mu   sync.RWMutex
		snap *Snapshot
	}
)

func NewService(src Source) *Service {
	return &Service{src: src}
}

// Refresh refetches all five collections and replaces the held snapshot.
// A failure on any collection leaves the previous snapshot in place.
func (svc *Service) Refresh(ctx context.Context) (Snapshot, error) {
	students, err := svc.src.FetchStudents(ctx)
	if err != nil {
		return Snapshot{}, pkgerrors.Wrap(err, "fetching students")
	}
	attendance, err := svc.src.FetchAttendance(ctx)
	if err != nil {
		return Snapshot{}, pkgerrors.Wrap(err, "fetching attendance")
	}
	assessments, err := svc.src.FetchAssessments(ctx)
	if err != nil {
		return Snapshot{}, pkgerrors.Wrap(err, "fetching assessments")
	}
	participation, err := svc.src.FetchParticipation(ctx)
	if err != nil {
		return Snapshot{}, pkgerrors.Wrap(err, "fetching participation")
	}
	behavioral, err := svc.src.FetchBehavioral(ctx)
	if err != nil {
		return Snapshot{}, pkgerrors.Wrap(err, "fetching behavioral")
	}

	snap := NewSnapshot(students, attendance, assessments, participation, behavioral)
	svc.mu.Lock()
	svc.snap = &snap
	svc.mu.Unlock()
	return snap, nil
}

// Snapshot returns the currently held snapshot, fetching it first if needed.
func (svc *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	svc.mu.RLock()
	snap := svc.snap
	svc.mu.RUnlock()
	if snap != nil {
		return *snap, nil
	}
	return svc.Refresh(ctx)
}

// Current returns the held snapshot without fetching.
func (svc *Service) Current() (Snapshot, error) {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	if svc.snap == nil {
		return Snapshot{}, ErrNoSnapshot
	}
	return *svc.snap, nil
}
