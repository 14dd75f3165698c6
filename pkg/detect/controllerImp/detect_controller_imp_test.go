package controllerImp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmassist/entities"
	"farmassist/pkg/detect/service"
)

type stubSvc struct {
	res *entities.DetectionResult
	err error
}

func (s stubSvc) Analyze(string, []byte) (*entities.DetectionResult, error) { return s.res, s.err }

func multipartBody(t *testing.T, field, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func doAnalyze(t *testing.T, svc service.DetectService, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/detect", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rr := httptest.NewRecorder()
	_ = New(svc).Analyze(e.NewContext(req, rr))
	return rr
}

func TestAnalyzeNoFile(t *testing.T) {
	body, ct := multipartBody(t, "image", "leaf.jpg", []byte{0xff, 0xd8, 0xff})
	rr := doAnalyze(t, stubSvc{}, body, ct)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "No file uploaded")
}

func TestAnalyzeInvalidImageIs400(t *testing.T) {
	body, ct := multipartBody(t, "file", "anim.gif", []byte("GIF89a"))
	svc := stubSvc{err: fmt.Errorf("%w: please select an image file (JPEG, PNG)", service.ErrInvalidImage)}
	rr := doAnalyze(t, svc, body, ct)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAnalyzeClassifierDownIs502(t *testing.T) {
	body, ct := multipartBody(t, "file", "leaf.jpg", []byte{0xff, 0xd8, 0xff})
	svc := stubSvc{err: fmt.Errorf("%w: connection refused", service.ErrClassifierUnavailable)}
	rr := doAnalyze(t, svc, body, ct)
	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Contains(t, rr.Body.String(), "Failed to analyze image")
}

func TestAnalyzeSuccess(t *testing.T) {
	body, ct := multipartBody(t, "file", "leaf.jpg", []byte{0xff, 0xd8, 0xff})
	svc := stubSvc{res: &entities.DetectionResult{
		Disease: "Late Blight", Confidence: 92,
		OrganicSolution: "o", ChemicalSolution: "c",
	}}
	rr := doAnalyze(t, svc, body, ct)
	assert.Equal(t, http.StatusOK, rr.Code)

	var res entities.DetectionResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	assert.Equal(t, "Late Blight", res.Disease)
	assert.Equal(t, 92.0, res.Confidence)
}
