package inmemrecords

import (
	"context"
	"sync"

	"github.com/trezcool/darasa/core/record"
)

// Source keeps the five collections in memory. It backs tests and the admin
// CLI's offline mode; seed it with the Add* methods.
type Source struct {
	mu sync.RWMutex

	students      []record.Student
	attendance    []record.AttendanceRecord
	assessments   []record.AssessmentScore
	participation []record.ParticipationLog
	behavioral    []record.BehavioralRecord

	// Err, when set, is returned by every Fetch* call.
	Err error
}

var _ record.Source = (*Source)(nil)

func NewSource() *Source {
	return &Source{}
}

func (src *Source) Fail(err error) {
	src.mu.Lock()
	defer src.mu.Unlock()
	src.Err = err
}

func (src *Source) AddStudents(students ...record.Student) {
	src.mu.Lock()
	defer src.mu.Unlock()
	src.students = append(src.students, students...)
}

func (src *Source) AddAttendance(recs ...record.AttendanceRecord) {
	src.mu.Lock()
	defer src.mu.Unlock()
	src.attendance = append(src.attendance, recs...)
}

func (src *Source) AddAssessments(recs ...record.AssessmentScore) {
	src.mu.Lock()
	defer src.mu.Unlock()
	src.assessments = append(src.assessments, recs...)
}

func (src *Source) AddParticipation(logs ...record.ParticipationLog) {
	src.mu.Lock()
	defer src.mu.Unlock()
	src.participation = append(src.participation, logs...)
}

func (src *Source) AddBehavioral(recs ...record.BehavioralRecord) {
	src.mu.Lock()
	defer src.mu.Unlock()
	src.behavioral = append(src.behavioral, recs...)
}

func (src *Source) Clear() {
	src.mu.Lock()
	defer src.mu.Unlock()
	src.students = nil
	src.attendance = nil
	src.assessments = nil
	src.participation = nil
	src.behavioral = nil
	src.Err = nil
}

func (src *Source) FetchStudents(ctx context.Context) ([]record.Student, error) {
	src.mu.RLock()
	defer src.mu.RUnlock()
	if src.Err != nil {
		return nil, src.Err
	}
	out := make([]record.Student, len(src.students))
	copy(out, src.students)
	return out, nil
}

func (src *Source) FetchAttendance(ctx context.Context) ([]record.AttendanceRecord, error) {
	src.mu.RLock()
	defer src.mu.RUnlock()
	if src.Err != nil {
		return nil, src.Err
	}
	out := make([]record.AttendanceRecord, len(src.attendance))
	copy(out, src.attendance)
	return out, nil
}

func (src *Source) FetchAssessments(ctx context.Context) ([]record.AssessmentScore, error) {
	src.mu.RLock()
	defer src.mu.RUnlock()
	if src.Err != nil {
		return nil, src.Err
	}
	out := make([]record.AssessmentScore, len(src.assessments))
	copy(out, src.assessments)
	return out, nil
}

func (src *Source) FetchParticipation(ctx context.Context) ([]record.ParticipationLog, error) {
	src.mu.RLock()
	defer src.mu.RUnlock()
	if src.Err != nil {
		return nil, src.Err
	}
	out := make([]record.ParticipationLog, len(src.participation))
	copy(out, src.participation)
	return out, nil
}

func (src *Source) FetchBehavioral(ctx context.Context) ([]record.BehavioralRecord, error) {
	src.mu.RLock()
	defer src.mu.RUnlock()
	if src.Err != nil {
		return nil, src.Err
	}
	out := make([]record.BehavioralRecord, len(src.behavioral))
	copy(out, src.behavioral)
	return out, nil
}
