package v1

import (
	"encoding/json"
	"strconv"
)

type AttendanceTallyDTO struct {
	WorkerID uint   `json:"workerId"`
	OpsID    string `json:"opsId"`
	FullName string `json:"fullName"`
	Days     int    `json:"days"`
}

type PeriodReportDTO struct {
	Label     string               `json:"label"`
	StartDate string               `json:"startDate"`
	EndDate   string               `json:"endDate"`
	Tallies   []AttendanceTallyDTO `json:"tallies"`
}

type HalfMonthReportDTO struct {
	Period1 PeriodReportDTO `json:"period1"`
	Period2 PeriodReportDTO `json:"period2"`
}

type ReportsEndpoint struct {
	transport *Transport
}

func (ep *ReportsEndpoint) HalfMonth(year int, month int) (*HalfMonthReportDTO, error) {
	resp, err := ep.transport.Get("/api/v1/reports/halfmonth", map[string]string{
		"year":  strconv.Itoa(year),
		"month": strconv.Itoa(month),
	})
	if err != nil {
		return nil, err
	}

	var result SuccessEnvelope[HalfMonthReportDTO]
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, err
	}

	return &result.Data, nil
}
