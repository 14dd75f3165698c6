package classifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"
)

type httpClient struct {
	endpoint string
	httpc    *http.Client
}

// NewHTTP talks to the external model service: multipart POST with the image
// under field "file", JSON {disease, confidence} back. No retries; a failed
// call is reported to the caller.
func NewHTTP(endpoint string, timeout time.Duration) Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &httpClient{endpoint: endpoint, httpc: &http.Client{Timeout: timeout}}
}

func (c *httpClient) Predict(filename string, image []byte) (*Prediction, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(image); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, c.endpoint, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("classifier returned status %d", resp.StatusCode)
	}

	var p Prediction
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode classifier response: %w", err)
	}
	return &p, nil
}
