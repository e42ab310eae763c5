package v1

import (
	"encoding/json"
	"strconv"
)

type WorkerDTO struct {
	ID         uint   `json:"id"`
	OpsID      string `json:"opsId"`
	FullName   string `json:"fullName"`
	NationalID string `json:"nationalId"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Status     string `json:"status"`
}

type WorkerSearchParams struct {
	Query       *string  `json:"query,omitempty"`
	Departments []string `json:"departments,omitempty"`
	Statuses    []string `json:"statuses,omitempty"`
}

type WorkersEndpoint struct {
	transport *Transport
}

func (ep *WorkersEndpoint) Search(params WorkerSearchParams, limit, offset int) ([]WorkerDTO, int64, error) {
	resp, err := ep.transport.Post("/api/v1/workers/search", params, map[string]string{
		"limit":  strconv.Itoa(limit),
		"offset": strconv.Itoa(offset),
	})
	if err != nil {
		return nil, 0, err
	}

	var result SearchEnvelope[WorkerDTO]
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, 0, err
	}

	return result.Data, result.Pagination.Total, nil
}
