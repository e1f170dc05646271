package collector

// Fetcher defines the interface for fetching the raw metric payload.
type Fetcher interface {
	// FetchMetric performs a single request and returns the raw response
	// body as text. Implementations do not retry.
	FetchMetric() (string, error)
	Name() string
}

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Body string
	Err  error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchMetric() (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Body, nil
}
