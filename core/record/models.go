package record

// Attendance statuses
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
	StatusExcused = "excused"
)

// Assessment types
const (
	AssessmentTest       = "test"
	AssessmentQuiz       = "quiz"
	AssessmentExam       = "exam"
	AssessmentAssignment = "assignment"
	AssessmentProject    = "project"
)

// Participation activity types
const (
	ActivityAnswer       = "answer"
	ActivityQuestion     = "question"
	ActivityDiscussion   = "discussion"
	ActivityPresentation = "presentation"
	ActivityGroupWork    = "group_work"
)

// Behavioral record types
const (
	BehaviorPositive = "positive"
	BehaviorNegative = "negative"
)

// Behavioral categories
const (
	CategoryDiscipline  = "discipline"
	CategoryLeadership  = "leadership"
	CategoryCooperation = "cooperation"
	CategoryRespect     = "respect"
	CategoryPunctuality = "punctuality"
	CategoryOther       = "other"
)

// Behavioral severities (negative records only)
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

var (
	AttendanceStatuses = []string{StatusPresent, StatusAbsent, StatusLate, StatusExcused}
	AssessmentTypes    = []string{AssessmentTest, AssessmentQuiz, AssessmentExam, AssessmentAssignment, AssessmentProject}
	ActivityTypes      = []string{ActivityAnswer, ActivityQuestion, ActivityDiscussion, ActivityPresentation, ActivityGroupWork}
	BehaviorTypes      = []string{BehaviorPositive, BehaviorNegative}
	BehaviorCategories = []string{CategoryDiscipline, CategoryLeadership, CategoryCooperation, CategoryRespect, CategoryPunctuality, CategoryOther}
	Severities         = []string{SeverityLow, SeverityMedium, SeverityHigh}
)

type Student struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StudentID string `json:"studentId"` // human-readable code; may duplicate across re-imports
	Class     string `json:"class"`     // string form of a numeric class id
	Gender    string `json:"gender,omitempty"`
	Subclass  string `json:"subclass,omitempty"`
}

type AttendanceRecord struct {
	ID        string `json:"id"`
	StudentID string `json:"studentId"`
	Date      string `json:"date"` // ISO calendar day; duplicates per (student, date) are tolerated
	Status    string `json:"status"`
	MarkedBy  string `json:"markedBy"`
	Timestamp string `json:"timestamp"`
}

type AssessmentScore struct {
	ID             string `json:"id"`
	StudentID      string `json:"studentId"`
	Subject        string `json:"subject"`
	AssessmentType string `json:"assessmentType"`
	AssessmentName string `json:"assessmentName"`
	Score          int    `json:"score"`
	MaxScore       int    `json:"maxScore"` // zero and score > maxScore are tolerated, never enforced here
	Date           string `json:"date"`
	Term           string `json:"term"`
}

type ParticipationLog struct {
	ID           string `json:"id"`
	StudentID    string `json:"studentId"`
	Date         string `json:"date"`
	Subject      string `json:"subject"`
	ActivityType string `json:"activityType"`
	Description  string `json:"description"`
	Rating       int    `json:"rating"` // 1..5
}

type BehavioralRecord struct {
	ID          string `json:"id"`
	StudentID   string `json:"studentId"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Severity    string `json:"severity,omitempty"` // negative records only
	ActionTaken string `json:"actionTaken,omitempty"`
}
