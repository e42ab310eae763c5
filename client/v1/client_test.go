package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionsScan(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/sessions/scan", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)

		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"admitted": false,
				"reject": map[string]any{
					"reason":           "COOLDOWN",
					"message":          "Rina Safitri needs 90 more minutes of rest before the next shift",
					"remainingMinutes": 90,
				},
			},
		})
	}))
	defer server.Close()

	client := NewAbsensiClient(server.URL, "test-token")

	outcome, err := client.Sessions.Scan(SessionDescriptorDTO{
		Date:      "2025-10-20",
		Division:  "CACHE",
		ShiftTime: "07:00 - 16:00",
		PlanMpp:   10,
	}, nil, "jkt001")

	assert.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "jkt001", gotBody["opsId"])
	assert.False(t, outcome.Admitted)
	if assert.NotNil(t, outcome.Reject) {
		assert.Equal(t, "COOLDOWN", outcome.Reject.Reason)
		assert.Equal(t, 90, outcome.Reject.RemainingMinutes)
	}
}

func TestWorkersSearchPagination(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/workers/search", r.URL.Path)
		assert.Equal(t, "25", r.URL.Query().Get("limit"))
		assert.Equal(t, "50", r.URL.Query().Get("offset"))

		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"id": 1, "opsId": "JKT001", "fullName": "Rina Safitri", "department": "Cache", "status": "Active"},
			},
			"pagination": map[string]any{"total": 120},
		})
	}))
	defer server.Close()

	client := NewAbsensiClient(server.URL, "")

	list, total, err := client.Workers.Search(WorkerSearchParams{}, 25, 50)
	assert.NoError(t, err)
	assert.Equal(t, int64(120), total)
	if assert.Len(t, list, 1) {
		assert.Equal(t, "JKT001", list[0].OpsID)
	}
}

func TestTransportErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{"message": "invalid or expired token"})
	}))
	defer server.Close()

	client := NewAbsensiClient(server.URL, "expired")

	_, _, err := client.Workers.Search(WorkerSearchParams{}, 10, 0)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
