package httprecords

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/record"
)

// source fetches the five JSON collections from the external data
// collaborator. Calls carry the request context but no client timeout, retry
// or cancellation of their own: a failed fetch is surfaced and the user
// re-triggers the action.
type source struct {
	client  *http.Client
	baseURL string
}

var _ record.Source = (*source)(nil)

func NewSource(conf *core.Config) record.Source {
	return &source{
		client:  http.DefaultClient,
		baseURL: conf.Records.BaseURL,
	}
}

func (src *source) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.baseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "building request")
	}
	req.Header.Set("Accept", "application/json")

	res, err := src.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "fetching "+path)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return errors.New(fmt.Sprintf("fetching %s - status: %d", path, res.StatusCode))
	}

	// anything but a JSON array here is a caller/collaborator bug, not a
	// runtime condition to recover from
	if err = json.NewDecoder(res.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decoding "+path)
	}
	return nil
}

func (src *source) FetchStudents(ctx context.Context) ([]record.Student, error) {
	var students []record.Student
	if err := src.get(ctx, "/students", &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (src *source) FetchAttendance(ctx context.Context) ([]record.AttendanceRecord, error) {
	var recs []record.AttendanceRecord
	if err := src.get(ctx, "/attendance", &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (src *source) FetchAssessments(ctx context.Context) ([]record.AssessmentScore, error) {
	var recs []record.AssessmentScore
	if err := src.get(ctx, "/assessments", &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (src *source) FetchParticipation(ctx context.Context) ([]record.ParticipationLog, error) {
	var logs []record.ParticipationLog
	if err := src.get(ctx, "/participation", &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (src *source) FetchBehavioral(ctx context.Context) ([]record.BehavioralRecord, error) {
	var recs []record.BehavioralRecord
	if err := src.get(ctx, "/behavioral", &recs); err != nil {
		return nil, err
	}
	return recs, nil
}
