package main

import (
	"bytes"
	"net/mail"
	"strings"
	"testing"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/record"
	"github.com/trezcool/darasa/core/risk"
	"github.com/trezcool/darasa/core/stats"
	emailsvc "github.com/trezcool/darasa/services/email"
	testutil "github.com/trezcool/darasa/tests"
)

func setup(t *testing.T) (*commandLine, *bytes.Buffer) {
	students := []record.Student{
		{ID: "s1", Name: "Amina Yusuf", StudentID: "STU-001", Class: "1", Gender: "F"},
		{ID: "s2", Name: "Brian Otieno", StudentID: "STU-002", Class: "1", Gender: "M"},
	}
	attendance := []record.AttendanceRecord{
		testutil.Attendance("s1", "2025-03-01", record.StatusPresent),
		testutil.Attendance("s2", "2025-03-01", record.StatusAbsent),
		testutil.Attendance("s2", "2025-03-02", record.StatusAbsent),
	}
	assessments := []record.AssessmentScore{
		testutil.Assessment("s1", "math", 9, 10, "2025-03-10"),
		testutil.Assessment("s2", "math", 2, 10, "2025-03-10"),
	}
	behavioral := []record.BehavioralRecord{
		testutil.Behavioral("s2", "2025-03-01", record.BehaviorNegative),
		testutil.Behavioral("s2", "2025-03-02", record.BehaviorNegative),
		testutil.Behavioral("s2", "2025-03-03", record.BehaviorNegative),
	}

	conf := &core.Config{
		AppName:          "Darasa",
		DefaultFromEmail: mail.Address{Address: "noreply@test.cd"},
		AlertEmails:      []string{"head@test.cd"},
	}

	out := new(bytes.Buffer)
	cli := &commandLine{
		recordSvc:  testutil.SeededService(t, students, attendance, assessments, nil, behavioral),
		statsCache: stats.NewCache(),
		classifier: risk.NewClassifier(),
		notifier:   risk.NewNotifier(emailsvc.NewConsoleServiceMock(conf), conf),
		out:        out,
	}
	return cli, out
}

type cliTest struct {
	name     string
	args     []string // without program name
	wantErr  error
	wantOut  []string
	notInOut []string
}

func Test_commandLine_run(t *testing.T) {
	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{
			name:    "report",
			args:    []string{"report"},
			wantOut: []string{"Students: 2", "Amina Yusuf", "Brian Otieno", "ATTENDANCE"},
		},
		{
			name:     "report scoped to search",
			args:     []string{"report", "-search", "amina"},
			wantOut:  []string{"Students: 1", "Amina Yusuf"},
			notInOut: []string{"Brian Otieno"},
		},
		{
			name:    "alert lists flagged students",
			args:    []string{"alert"},
			wantOut: []string{"Brian Otieno (STU-002): failing, missingClass, badBehavior"},
		},
		{
			name:     "alert scoped away from flagged students",
			args:     []string{"alert", "-gender", "f"},
			wantOut:  []string{"No at-risk students."},
			notInOut: []string{"Brian Otieno"},
		},
		{
			name:    "alert with send",
			args:    []string{"alert", "-send"},
			wantOut: []string{"Digest sent for 1 students."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, out := setup(t)
			args := append([]string{"admin"}, tt.args...)

			err := cli.run(args)
			if err != tt.wantErr {
				t.Fatalf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
			for _, want := range tt.wantOut {
				if !strings.Contains(out.String(), want) {
					t.Errorf("cli.run() output missing %q:\n%s", want, out.String())
				}
			}
			for _, notWant := range tt.notInOut {
				if strings.Contains(out.String(), notWant) {
					t.Errorf("cli.run() output unexpectedly contains %q:\n%s", notWant, out.String())
				}
			}
		})
	}
}

func Test_commandLine_alert_sendsDigest(t *testing.T) {
	cli, _ := setup(t)
	emailsvc.ClearSentMessages()

	if err := cli.run([]string{"admin", "alert", "-send"}); err != nil {
		t.Fatalf("cli.run() error = %v", err)
	}

	sent := emailsvc.GetSentMessages()
	if len(sent) != 1 {
		t.Fatalf("sent %d digest emails, want 1", len(sent))
	}
	if !strings.Contains(sent[0].BodyStr, "Brian Otieno (STU-002)") {
		t.Errorf("digest body missing flagged student:\n%s", sent[0].BodyStr)
	}
}
