package gemini

import "context"

// MockCompleter records requests and plays back canned responses.
type MockCompleter struct {
	Response  string
	Responses []string
	Err       error

	Requests []Request
}

var _ Completer = (*MockCompleter)(nil)

func (m *MockCompleter) Complete(_ context.Context, req Request) (string, error) {
	m.Requests = append(m.Requests, req)
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.Responses) > 0 {
		resp := m.Responses[0]
		m.Responses = m.Responses[1:]
		return resp, nil
	}
	return m.Response, nil
}
