package tests

import (
	"net/mail"
	"os"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	. "github.com/trezcool/darasa/apps/api/echo"
	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/daylock"
	"github.com/trezcool/darasa/core/record"
	"github.com/trezcool/darasa/core/risk"
	"github.com/trezcool/darasa/core/stats"
	confirmsvc "github.com/trezcool/darasa/services/confirm"
	emailsvc "github.com/trezcool/darasa/services/email"
	inmemrecords "github.com/trezcool/darasa/storage/records/inmem"
)

var (
	app        *Server
	src        *inmemrecords.Source
	recordSvc  *record.Service
	confirmer  *confirmsvc.Mock
	classifier *risk.Classifier
)

type nopLogger struct{}

func (nopLogger) Enable(bool)                        {}
func (nopLogger) Debug(string, ...interface{})       {}
func (nopLogger) Info(string, ...interface{})        {}
func (nopLogger) Warn(string, ...interface{})        {}
func (nopLogger) Error(string, ...interface{})       {}
func (nopLogger) Fatal(msg string, _ ...interface{}) { panic(msg) }

func TestMain(m *testing.M) {
	conf := &core.Config{
		TestMode:         true,
		Env:              "TEST",
		AppName:          "Darasa",
		DefaultFromEmail: mail.Address{Address: "noreply@test.cd"},
		AlertEmails:      []string{"head@test.cd"},
	}

	src = inmemrecords.NewSource()
	seed(src)
	recordSvc = record.NewService(src)
	confirmer = confirmsvc.NewMock()
	classifier = risk.NewClassifier()

	validate := validator.New()
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	core.InitValidators(validate, translator)

	app = NewServer(
		ServerDeps{
			Conf:       conf,
			Logger:     nopLogger{},
			RecordSvc:  recordSvc,
			StatsCache: stats.NewCache(),
			Classifier: classifier,
			Notifier:   risk.NewNotifier(emailsvc.NewConsoleServiceMock(conf), conf),
			LockSvc:    daylock.NewService(confirmer, nopLogger{}),
			Validate:   validate,
			Translator: translator,
		},
	)

	os.Exit(m.Run())
}

func seed(src *inmemrecords.Source) {
	src.AddStudents(
		record.Student{ID: "s1", Name: "Amina Yusuf", StudentID: "STU-001", Class: "1", Gender: "F"},
		record.Student{ID: "s2", Name: "Brian Otieno", StudentID: "STU-002", Class: "1", Gender: "M"},
		record.Student{ID: "s3", Name: "Chausiku Juma", StudentID: "STU-003", Class: "12", Gender: "F"},
	)
	src.AddAttendance(
		record.AttendanceRecord{ID: "a1", StudentID: "s1", Date: "2025-03-01", Status: record.StatusPresent},
		record.AttendanceRecord{ID: "a2", StudentID: "s1", Date: "2025-03-02", Status: record.StatusAbsent},
		record.AttendanceRecord{ID: "a3", StudentID: "s2", Date: "2025-03-01", Status: record.StatusPresent},
		record.AttendanceRecord{ID: "a4", StudentID: "s3", Date: "2025-03-01", Status: record.StatusAbsent},
		record.AttendanceRecord{ID: "a5", StudentID: "s3", Date: "2025-03-02", Status: record.StatusAbsent},
	)
	src.AddAssessments(
		record.AssessmentScore{ID: "x1", StudentID: "s1", Subject: "math", Score: 8, MaxScore: 10, Date: "2025-03-10"},
		record.AssessmentScore{ID: "x2", StudentID: "s1", Subject: "math", Score: 6, MaxScore: 10, Date: "2025-03-11"},
		record.AssessmentScore{ID: "x3", StudentID: "s3", Subject: "math", Score: 2, MaxScore: 10, Date: "2025-03-10"},
	)
	src.AddParticipation(
		record.ParticipationLog{ID: "p1", StudentID: "s1", Date: "2025-03-01", Subject: "math", ActivityType: record.ActivityAnswer, Rating: 4},
		record.ParticipationLog{ID: "p2", StudentID: "s1", Date: "2025-03-02", Subject: "math", ActivityType: record.ActivityQuestion, Rating: 5},
	)
	src.AddBehavioral(
		record.BehavioralRecord{ID: "b1", StudentID: "s3", Date: "2025-03-01", Type: record.BehaviorNegative, Category: record.CategoryDiscipline, Severity: record.SeverityLow},
		record.BehavioralRecord{ID: "b2", StudentID: "s3", Date: "2025-03-02", Type: record.BehaviorNegative, Category: record.CategoryDiscipline, Severity: record.SeverityMedium},
		record.BehavioralRecord{ID: "b3", StudentID: "s3", Date: "2025-03-03", Type: record.BehaviorNegative, Category: record.CategoryRespect, Severity: record.SeverityHigh},
		record.BehavioralRecord{ID: "b4", StudentID: "s1", Date: "2025-03-01", Type: record.BehaviorPositive, Category: record.CategoryLeadership},
	)
}
