package classifier

type mockClient struct {
	prediction Prediction
	err        error
}

// NewMock returns a client with a canned answer, for local runs and tests.
func NewMock(p Prediction, err error) Client { return &mockClient{prediction: p, err: err} }

func (m *mockClient) Predict(string, []byte) (*Prediction, error) {
	if m.err != nil {
		return nil, m.err
	}
	p := m.prediction
	return &p, nil
}
