package record

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/darasa/core"
)

// Scope narrows a roster and its events to a working subset. Student
// predicates (class, gender, search) select the roster; event collections are
// then re-derived from the surviving student ids and optionally narrowed by
// date or term. Predicates are independent, so application order is
// irrelevant.
type Scope struct {
	ClassID   string `query:"class_id" json:"classId"`
	Gender    string `query:"gender" json:"gender"`
	Search    string `query:"search" json:"search"` // case-insensitive substring match on name only
	Date      string `query:"date" json:"date" validate:"omitempty,isodate"`
	TermStart string `query:"term_start" json:"termStart" validate:"required_with=TermEnd,omitempty,isodate"`
	TermEnd   string `query:"term_end" json:"termEnd" validate:"required_with=TermStart,omitempty,isodate"`
}

func (sc *Scope) IsEmpty() bool {
	return sc.ClassID == "" && sc.Gender == "" && sc.Search == "" &&
		sc.Date == "" && sc.TermStart == "" && sc.TermEnd == ""
}

func (sc *Scope) Clean() {
	sc.ClassID = core.CleanString(sc.ClassID)
	sc.Gender = core.CleanString(sc.Gender, true /* lower */)
	sc.Search = core.CleanString(sc.Search)
	sc.Date = core.CleanString(sc.Date)
	sc.TermStart = core.CleanString(sc.TermStart)
	sc.TermEnd = core.CleanString(sc.TermEnd)
}

func (sc *Scope) Validate(validate *validator.Validate) error {
	sc.Clean()
	if err := validate.Struct(sc); err != nil {
		return err
	}
	// tags cannot compare two fields lexically
	if sc.TermStart != "" && sc.TermEnd != "" && sc.TermStart > sc.TermEnd {
		return core.NewValidationError(nil, core.FieldError{Field: "termStart", Error: "must not be after termEnd"})
	}
	return nil
}

// Key returns a stable identity for this scope, used as a memoization key
// together with the snapshot version.
func (sc Scope) Key() string {
	return strings.Join([]string{
		"class=" + sc.ClassID,
		"gender=" + sc.Gender,
		"search=" + strings.ToLower(sc.Search),
		"date=" + sc.Date,
		"term=" + sc.TermStart + ".." + sc.TermEnd,
	}, "|")
}

func (sc Scope) matchStudent(st Student) bool {
	if sc.ClassID != "" && st.Class != sc.ClassID { // exact string equality, not prefix
		return false
	}
	if sc.Gender != "" && strings.ToLower(st.Gender) != sc.Gender {
		return false
	}
	if sc.Search != "" && !strings.Contains(strings.ToLower(st.Name), strings.ToLower(sc.Search)) {
		return false
	}
	return true
}

// matchDate reports whether an event record dated `date` falls inside the
// scope's date or term window. Zero-padded ISO dates compare lexically, which
// is numerically consistent, so a closed [start, end] interval is a plain
// string range check.
func (sc Scope) matchDate(date string) bool {
	if sc.Date != "" && date != sc.Date {
		return false
	}
	if sc.TermStart != "" && date < sc.TermStart {
		return false
	}
	if sc.TermEnd != "" && date > sc.TermEnd {
		return false
	}
	return true
}

// Apply derives the scoped View of snap. Scoping is always student-driven:
// events inherit the filtered roster membership rather than matching their own
// class, which also silently drops records referencing unknown students.
func (sc Scope) Apply(snap Snapshot) View {
	students := make([]Student, 0, len(snap.Students))
	ids := make(map[string]struct{}, len(snap.Students))
	for _, st := range snap.Students {
		if sc.matchStudent(st) {
			students = append(students, st)
			ids[st.ID] = struct{}{}
		}
	}

	keep := func(studentID, date string) bool {
		if _, ok := ids[studentID]; !ok {
			return false
		}
		return sc.matchDate(date)
	}

	view := View{
		ScopeKey: sc.Key(),
		Version:  snap.Version,
		Students: students,
	}
	view.Attendance = make([]AttendanceRecord, 0, len(snap.Attendance))
	for _, r := range snap.Attendance {
		if keep(r.StudentID, r.Date) {
			view.Attendance = append(view.Attendance, r)
		}
	}
	view.Assessments = make([]AssessmentScore, 0, len(snap.Assessments))
	for _, r := range snap.Assessments {
		if keep(r.StudentID, r.Date) {
			view.Assessments = append(view.Assessments, r)
		}
	}
	view.Participation = make([]ParticipationLog, 0, len(snap.Participation))
	for _, r := range snap.Participation {
		if keep(r.StudentID, r.Date) {
			view.Participation = append(view.Participation, r)
		}
	}
	view.Behavioral = make([]BehavioralRecord, 0, len(snap.Behavioral))
	for _, r := range snap.Behavioral {
		if keep(r.StudentID, r.Date) {
			view.Behavioral = append(view.Behavioral, r)
		}
	}
	return view
}
