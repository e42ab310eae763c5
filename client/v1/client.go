package v1

// AbsensiClient talks to one site's attendance API.
type AbsensiClient struct {
	Transport *Transport
	Workers   *WorkersEndpoint
	Sessions  *SessionsEndpoint
	Reports   *ReportsEndpoint
}

// NewAbsensiClient initializes the API client
func NewAbsensiClient(baseURL string, token string) *AbsensiClient {
	t := NewTransport(baseURL, token)
	return &AbsensiClient{
		Transport: t,
		Workers:   &WorkersEndpoint{transport: t},
		Sessions:  &SessionsEndpoint{transport: t},
		Reports:   &ReportsEndpoint{transport: t},
	}
}

// SuccessEnvelope is the server's single-object reply shape.
type SuccessEnvelope[T any] struct {
	Data T `json:"data"`
}

// SearchEnvelope is the server's list reply shape.
type SearchEnvelope[T any] struct {
	Data       []T `json:"data"`
	Pagination struct {
		Total int64 `json:"total"`
	} `json:"pagination"`
}
