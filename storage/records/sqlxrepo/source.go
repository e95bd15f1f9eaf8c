package sqlxrecords

import (
	"context"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/record"
)

// Open connects to the external layer's database for read-only access.
// The schema belongs to that layer; nothing here creates or migrates it.
func Open(conf *core.Config) (*sqlx.DB, error) {
	user := url.UserPassword(conf.Database.User, conf.Database.Password)

	sslMode := "require"
	if conf.Database.DisableTLS {
		sslMode = "disable"
	}
	q := make(url.Values)
	q.Set("sslmode", sslMode)
	q.Set("timezone", "utc")

	u := url.URL{
		Scheme:   conf.Database.Engine,
		User:     user,
		Host:     conf.Database.Address(),
		Path:     conf.Database.Name,
		RawQuery: q.Encode(),
	}
	db, err := sqlx.Open(conf.Database.Engine, u.String())
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	return db, nil
}

// Ping waits for the database to be ready. Waits 100ms longer between each attempt.
func Ping(db *sqlx.DB) error {
	var err error
	maxAttempts := 30
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		err = db.Ping()
		if err == nil {
			break
		}
		time.Sleep(time.Duration(attempts) * 100 * time.Millisecond)
	}

	if err != nil {
		return errors.Wrap(err, "DB ping timeout")
	}
	return nil
}

type source struct {
	db *sqlx.DB
}

var _ record.Source = (*source)(nil)

func NewSource(db *sqlx.DB) record.Source {
	return &source{db: db}
}

type (
	studentRow struct {
		ID        string      `db:"id"`
		Name      string      `db:"name"`
		StudentID string      `db:"student_id"`
		Class     string      `db:"class"`
		Gender    null.String `db:"gender"`
		Subclass  null.String `db:"subclass"`
	}

	attendanceRow struct {
		ID        string      `db:"id"`
		StudentID string      `db:"student_id"`
		Date      string      `db:"date"`
		Status    string      `db:"status"`
		MarkedBy  null.String `db:"marked_by"`
		Timestamp null.String `db:"timestamp"`
	}

	assessmentRow struct {
		ID             string      `db:"id"`
		StudentID      string      `db:"student_id"`
		Subject        string      `db:"subject"`
		AssessmentType string      `db:"assessment_type"`
		AssessmentName null.String `db:"assessment_name"`
		Score          int         `db:"score"`
		MaxScore       int         `db:"max_score"`
		Date           string      `db:"date"`
		Term           null.String `db:"term"`
	}

	participationRow struct {
		ID           string      `db:"id"`
		StudentID    string      `db:"student_id"`
		Date         string      `db:"date"`
		Subject      null.String `db:"subject"`
		ActivityType null.String `db:"activity_type"`
		Description  null.String `db:"description"`
		Rating       int         `db:"rating"`
	}

	behavioralRow struct {
		ID          string      `db:"id"`
		StudentID   string      `db:"student_id"`
		Date        string      `db:"date"`
		Type        string      `db:"type"`
		Category    null.String `db:"category"`
		Severity    null.String `db:"severity"`
		ActionTaken null.String `db:"action_taken"`
	}
)

func (src *source) FetchStudents(ctx context.Context) ([]record.Student, error) {
	var rows []studentRow
	q := `SELECT id, name, student_id, class, gender, subclass FROM student ORDER BY id`
	if err := src.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, errors.Wrap(err, "querying students")
	}

	students := make([]record.Student, 0, len(rows))
	for _, row := range rows {
		students = append(students, record.Student{
			ID:        row.ID,
			Name:      row.Name,
			StudentID: row.StudentID,
			Class:     row.Class,
			Gender:    row.Gender.String,
			Subclass:  row.Subclass.String,
		})
	}
	return students, nil
}

func (src *source) FetchAttendance(ctx context.Context) ([]record.AttendanceRecord, error) {
	var rows []attendanceRow
	q := `SELECT id, student_id, date, status, marked_by, timestamp FROM attendance_record ORDER BY date, id`
	if err := src.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, errors.Wrap(err, "querying attendance")
	}

	recs := make([]record.AttendanceRecord, 0, len(rows))
	for _, row := range rows {
		recs = append(recs, record.AttendanceRecord{
			ID:        row.ID,
			StudentID: row.StudentID,
			Date:      row.Date,
			Status:    row.Status,
			MarkedBy:  row.MarkedBy.String,
			Timestamp: row.Timestamp.String,
		})
	}
	return recs, nil
}

func (src *source) FetchAssessments(ctx context.Context) ([]record.AssessmentScore, error) {
	var rows []assessmentRow
	q := `SELECT id, student_id, subject, assessment_type, assessment_name, score, max_score, date, term FROM assessment_score ORDER BY date, id`
	if err := src.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, errors.Wrap(err, "querying assessments")
	}

	recs := make([]record.AssessmentScore, 0, len(rows))
	for _, row := range rows {
		recs = append(recs, record.AssessmentScore{
			ID:             row.ID,
			StudentID:      row.StudentID,
			Subject:        row.Subject,
			AssessmentType: row.AssessmentType,
			AssessmentName: row.AssessmentName.String,
			Score:          row.Score,
			MaxScore:       row.MaxScore,
			Date:           row.Date,
			Term:           row.Term.String,
		})
	}
	return recs, nil
}

func (src *source) FetchParticipation(ctx context.Context) ([]record.ParticipationLog, error) {
	var rows []participationRow
	q := `SELECT id, student_id, date, subject, activity_type, description, rating FROM participation_log ORDER BY date, id`
	if err := src.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, errors.Wrap(err, "querying participation")
	}

	logs := make([]record.ParticipationLog, 0, len(rows))
	for _, row := range rows {
		logs = append(logs, record.ParticipationLog{
			ID:           row.ID,
			StudentID:    row.StudentID,
			Date:         row.Date,
			Subject:      row.Subject.String,
			ActivityType: row.ActivityType.String,
			Description:  row.Description.String,
			Rating:       row.Rating,
		})
	}
	return logs, nil
}

func (src *source) FetchBehavioral(ctx context.Context) ([]record.BehavioralRecord, error) {
	var rows []behavioralRow
	q := `SELECT id, student_id, date, type, category, severity, action_taken FROM behavioral_record ORDER BY date, id`
	if err := src.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, errors.Wrap(err, "querying behavioral records")
	}

	recs := make([]record.BehavioralRecord, 0, len(rows))
	for _, row := range rows {
		recs = append(recs, record.BehavioralRecord{
			ID:          row.ID,
			StudentID:   row.StudentID,
			Date:        row.Date,
			Type:        row.Type,
			Category:    row.Category.String,
			Severity:    row.Severity.String,
			ActionTaken: row.ActionTaken.String,
		})
	}
	return recs, nil
}
