package confirmsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/daylock"
	"github.com/trezcool/darasa/core/record"
)

// client talks to the attendance-confirmation endpoints of the external
// layer. No timeout or retry of its own; a failed call is surfaced to the
// caller who simply re-triggers the action.
type client struct {
	http    *http.Client
	baseURL string
}

var _ daylock.Confirmer = (*client)(nil)

func NewClient(conf *core.Config) daylock.Confirmer {
	return &client{
		http:    http.DefaultClient,
		baseURL: conf.Records.BaseURL,
	}
}

type (
	confirmPayload struct {
		Date    string                    `json:"date"`
		ClassID string                    `json:"classId"`
		Records []record.AttendanceRecord `json:"records"`
	}

	unconfirmPayload struct {
		Date    string `json:"date"`
		ClassID string `json:"classId"`
	}
)

func (c *client) Confirm(ctx context.Context, date, classID string, records []record.AttendanceRecord) error {
	return c.post(ctx, "/attendance/confirm", confirmPayload{Date: date, ClassID: classID, Records: records})
}

func (c *client) Unconfirm(ctx context.Context, date, classID string) error {
	return c.post(ctx, "/attendance/unconfirm", unconfirmPayload{Date: date, ClassID: classID})
}

func (c *client) post(ctx context.Context, path string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "encoding payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "building request")
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "posting "+path)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return errors.New(fmt.Sprintf("posting %s - status: %d", path, res.StatusCode))
	}
	return nil
}
