package controllerImp

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"farmassist/pkg/detect/service"
	"farmassist/pkg/detect/serviceImp"
)

type DetectCtrl struct{ svc service.DetectService }

func New(svc service.DetectService) *DetectCtrl { return &DetectCtrl{svc} }

func (h *DetectCtrl) Analyze(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "No file uploaded"})
	}

	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "No file uploaded"})
	}
	defer f.Close()

	// Read one byte past the limit so oversized uploads are detected without
	// buffering the whole file.
	data, err := io.ReadAll(io.LimitReader(f, serviceImp.MaxImageBytes+1))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "could not read file"})
	}

	res, err := h.svc.Analyze(fh.Filename, data)
	if errors.Is(err, service.ErrInvalidImage) {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	}
	if errors.Is(err, service.ErrClassifierUnavailable) {
		return c.JSON(http.StatusBadGateway, map[string]string{"message": "Failed to analyze image. Please try again."})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Error analyzing image", "error": err.Error()})
	}
	return c.JSON(http.StatusOK, res)
}
