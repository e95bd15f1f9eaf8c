package confirmsvc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/record"
)

func TestClient_Confirm(t *testing.T) {
	var got confirmPayload
	mux := http.NewServeMux()
	mux.HandleFunc("/attendance/confirm", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decoding payload: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewClient(&core.Config{Records: core.RecordsConfig{BaseURL: srv.URL}})
	records := []record.AttendanceRecord{
		{ID: "a1", StudentID: "s1", Date: "2025-03-01", Status: record.StatusPresent},
	}
	if err := client.Confirm(context.Background(), "2025-03-01", "1", records); err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}

	if got.Date != "2025-03-01" || got.ClassID != "1" || len(got.Records) != 1 {
		t.Errorf("payload = %+v", got)
	}
}

func TestClient_Unconfirm_serverError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(&core.Config{Records: core.RecordsConfig{BaseURL: srv.URL}})
	if err := client.Unconfirm(context.Background(), "2025-03-01", "1"); err == nil {
		t.Error("Unconfirm() expected error on 502, got nil")
	}
}
