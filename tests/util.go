package testutil

import (
	"context"
	"strconv"
	"testing"

	"github.com/trezcool/darasa/core/record"
	inmemrecords "github.com/trezcool/darasa/storage/records/inmem"
)

var seq int

func nextID() string {
	seq++
	return "id-" + strconv.Itoa(seq)
}

func Student(name, code, class string, rest ...string) record.Student {
	st := record.Student{
		ID:        nextID(),
		Name:      name,
		StudentID: code,
		Class:     class,
	}
	if len(rest) > 0 {
		st.Gender = rest[0]
	}
	if len(rest) > 1 {
		st.Subclass = rest[1]
	}
	return st
}

func Attendance(studentID, date, status string) record.AttendanceRecord {
	return record.AttendanceRecord{
		ID:        nextID(),
		StudentID: studentID,
		Date:      date,
		Status:    status,
		MarkedBy:  "teacher-1",
		Timestamp: date + "T08:00:00Z",
	}
}

func Assessment(studentID, subject string, score, maxScore int, date string, term ...string) record.AssessmentScore {
	rec := record.AssessmentScore{
		ID:             nextID(),
		StudentID:      studentID,
		Subject:        subject,
		AssessmentType: record.AssessmentTest,
		Score:          score,
		MaxScore:       maxScore,
		Date:           date,
	}
	if len(term) > 0 {
		rec.Term = term[0]
	}
	return rec
}

func Participation(studentID, date string, rating int) record.ParticipationLog {
	return record.ParticipationLog{
		ID:           nextID(),
		StudentID:    studentID,
		Date:         date,
		Subject:      "math",
		ActivityType: record.ActivityAnswer,
		Rating:       rating,
	}
}

func Behavioral(studentID, date, typ string) record.BehavioralRecord {
	rec := record.BehavioralRecord{
		ID:        nextID(),
		StudentID: studentID,
		Date:      date,
		Type:      typ,
		Category:  record.CategoryDiscipline,
	}
	if typ == record.BehaviorNegative {
		rec.Severity = record.SeverityLow
	}
	return rec
}

// Snapshot builds a snapshot directly from the given collections, bypassing a
// Source round-trip.
func Snapshot(
	students []record.Student,
	attendance []record.AttendanceRecord,
	assessments []record.AssessmentScore,
	participation []record.ParticipationLog,
	behavioral []record.BehavioralRecord,
) record.Snapshot {
	return record.NewSnapshot(students, attendance, assessments, participation, behavioral)
}

// SeededService wires a record.Service over an in-memory source pre-filled
// with the given collections and primes its snapshot.
func SeededService(
	t *testing.T,
	students []record.Student,
	attendance []record.AttendanceRecord,
	assessments []record.AssessmentScore,
	participation []record.ParticipationLog,
	behavioral []record.BehavioralRecord,
) *record.Service {
	src := inmemrecords.NewSource()
	src.AddStudents(students...)
	src.AddAttendance(attendance...)
	src.AddAssessments(assessments...)
	src.AddParticipation(participation...)
	src.AddBehavioral(behavioral...)

	svc := record.NewService(src)
	if _, err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("SeededService(): %v", err)
	}
	return svc
}
