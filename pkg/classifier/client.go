package classifier

// Prediction is the model service's answer for one leaf image. Confidence is
// on a 0-100 scale and is passed through as received.
type Prediction struct {
	Disease    string  `json:"disease"`
	Confidence float64 `json:"confidence"`
}

type Client interface {
	Predict(filename string, image []byte) (*Prediction, error)
}
