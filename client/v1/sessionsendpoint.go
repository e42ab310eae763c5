package v1

import (
	"encoding/json"
	"strconv"
	"time"
)

// SessionDescriptorDTO is the draft session header kept while scanning.
type SessionDescriptorDTO struct {
	Date      string `json:"date"` // yyyy-MM-dd
	Division  string `json:"division"`
	ShiftTime string `json:"shiftTime"`
	ShiftCode string `json:"shiftCode"`
	PlanMpp   int    `json:"planMpp"`
}

type BufferedRecordDTO struct {
	ID        string    `json:"id"`
	WorkerID  uint      `json:"workerId"`
	OpsID     string    `json:"opsId"`
	FullName  string    `json:"fullName"`
	ScannedAt time.Time `json:"scannedAt"`
}

type ScanRejectDTO struct {
	Reason           string `json:"reason"`
	Message          string `json:"message"`
	RemainingMinutes int    `json:"remainingMinutes,omitempty"`
}

type ScanOutcomeDTO struct {
	Admitted           bool               `json:"admitted"`
	Entry              *BufferedRecordDTO `json:"entry,omitempty"`
	Reject             *ScanRejectDTO     `json:"reject,omitempty"`
	AutoClosedRecordID uint               `json:"autoClosedRecordId,omitempty"`
}

type SessionSummaryDTO struct {
	ID          uint   `json:"id"`
	Date        string `json:"date"`
	Division    string `json:"division"`
	ShiftTime   string `json:"shiftTime"`
	ShiftCode   string `json:"shiftCode"`
	PlanMpp     int    `json:"planMpp"`
	Actual      int    `json:"actual"`
	Fulfillment string `json:"fulfillment"`
}

type SaveResultDTO struct {
	Saved bool `json:"saved"`
	ID    uint `json:"id"`
}

type SessionsEndpoint struct {
	transport *Transport
}

// Scan submits one scan attempt with the full draft context. A rejection
// comes back inside the outcome, not as an HTTP error.
func (ep *SessionsEndpoint) Scan(session SessionDescriptorDTO, buffer []BufferedRecordDTO, opsID string) (*ScanOutcomeDTO, error) {
	payload := map[string]any{
		"session": session,
		"buffer":  buffer,
		"opsId":   opsID,
	}

	resp, err := ep.transport.Post("/api/v1/sessions/scan", payload, nil)
	if err != nil {
		return nil, err
	}

	var result SuccessEnvelope[ScanOutcomeDTO]
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, err
	}

	return &result.Data, nil
}

// Save finalizes the draft: the session and all buffered records are
// persisted together.
func (ep *SessionsEndpoint) Save(session SessionDescriptorDTO, buffer []BufferedRecordDTO) (*SaveResultDTO, error) {
	payload := map[string]any{
		"session": session,
		"buffer":  buffer,
	}

	resp, err := ep.transport.Post("/api/v1/sessions", payload, nil)
	if err != nil {
		return nil, err
	}

	var result SuccessEnvelope[SaveResultDTO]
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, err
	}

	return &result.Data, nil
}

type SessionSearchParams struct {
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	Divisions []string `json:"divisions,omitempty"`
	ShiftCode *string  `json:"shiftCode,omitempty"`
}

func (ep *SessionsEndpoint) Search(params SessionSearchParams, limit, offset int) ([]SessionSummaryDTO, int64, error) {
	resp, err := ep.transport.Post("/api/v1/sessions/search", params, map[string]string{
		"limit":  strconv.Itoa(limit),
		"offset": strconv.Itoa(offset),
	})
	if err != nil {
		return nil, 0, err
	}

	var result SearchEnvelope[SessionSummaryDTO]
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, 0, err
	}

	return result.Data, result.Pagination.Total, nil
}
