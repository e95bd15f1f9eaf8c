package record

import (
	"context"
	"errors"
	"testing"
)

type fakeSource struct {
	snap Snapshot
	err  error
}

func (src *fakeSource) FetchStudents(ctx context.Context) ([]Student, error) {
	return src.snap.Students, src.err
}
func (src *fakeSource) FetchAttendance(ctx context.Context) ([]AttendanceRecord, error) {
	return src.snap.Attendance, src.err
}
func (src *fakeSource) FetchAssessments(ctx context.Context) ([]AssessmentScore, error) {
	return src.snap.Assessments, src.err
}
func (src *fakeSource) FetchParticipation(ctx context.Context) ([]ParticipationLog, error) {
	return src.snap.Participation, src.err
}
func (src *fakeSource) FetchBehavioral(ctx context.Context) ([]BehavioralRecord, error) {
	return src.snap.Behavioral, src.err
}

func TestService_Refresh(t *testing.T) {
	ctx := context.Background()
	src := &fakeSource{snap: newTestSnapshot()}
	svc := NewService(src)

	if _, err := svc.Current(); err != ErrNoSnapshot {
		t.Errorf("Current() error = %v, want %v", err, ErrNoSnapshot)
	}

	snap, err := svc.Refresh(ctx)
	if err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if len(snap.Students) != 3 {
		t.Errorf("Refresh() students = %d, want 3", len(snap.Students))
	}
	if snap.Version == "" {
		t.Error("Refresh() snapshot has no version")
	}

	// a failed refresh keeps the previous snapshot in place
	src.err = errors.New("collaborator down")
	if _, err = svc.Refresh(ctx); err == nil {
		t.Fatal("Refresh() expected error, got nil")
	}
	kept, err := svc.Current()
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if kept.Version != snap.Version {
		t.Errorf("Current() version = %q, want previous %q", kept.Version, snap.Version)
	}
}

func TestService_Snapshot_fetchesOnDemand(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&fakeSource{snap: newTestSnapshot()})

	snap1, err := svc.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	// cached thereafter
	snap2, err := svc.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if snap1.Version != snap2.Version {
		t.Errorf("Snapshot() version changed without refresh: %q != %q", snap1.Version, snap2.Version)
	}

	// refresh replaces it wholesale
	snap3, err := svc.Refresh(ctx)
	if err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if snap3.Version == snap1.Version {
		t.Error("Refresh() did not stamp a new version")
	}
}
