// Package client is the consuming side's typed wrapper around the resource
// API. Transport failures never escape to UI code: list calls return empty
// slices, single-record calls return nil, boolean calls return false, and the
// notifier gets one message. "No data" and "error fetching data" render the
// same; only the notification differs.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"farmassist/entities"
	detect "farmassist/pkg/detect/service"
	"farmassist/pkg/detect/serviceImp"
)

// Config replaces the original UI's browser-local settings. It is built once
// at session start and passed in explicitly.
type Config struct {
	BaseURL         string
	PredictEndpoint string // defaults to BaseURL + /api/detect
}

type Notifier interface {
	Success(msg string)
	Error(msg string)
}

type noopNotifier struct{}

func (noopNotifier) Success(string) {}
func (noopNotifier) Error(string)   {}

type Client struct {
	base    string
	predict string
	httpc   *http.Client
	notify  Notifier
}

func New(cfg Config, n Notifier) *Client {
	if n == nil {
		n = noopNotifier{}
	}
	base := strings.TrimRight(cfg.BaseURL, "/")
	predict := cfg.PredictEndpoint
	if predict == "" {
		predict = base + "/api/detect"
	}
	return &Client{
		base:    base,
		predict: predict,
		httpc:   &http.Client{Timeout: 30 * time.Second},
		notify:  n,
	}
}

// --- crops ---

func (c *Client) GetAllCrops() []entities.Crop {
	var crops []entities.Crop
	if !c.getJSON(c.base+"/api/crops", &crops) {
		c.notify.Error("Failed to fetch crop information from database.")
		return []entities.Crop{}
	}
	return crops
}

func (c *Client) GetCropByID(id uint) *entities.Crop {
	var crop entities.Crop
	if !c.getJSON(fmt.Sprintf("%s/api/crops/%d", c.base, id), &crop) {
		c.notify.Error("Failed to fetch crop information.")
		return nil
	}
	return &crop
}

// SaveCrop creates when the id is zero and updates otherwise.
func (c *Client) SaveCrop(crop entities.Crop) *entities.Crop {
	url := c.base + "/api/crops"
	method := http.MethodPost
	if crop.ID != 0 {
		url = fmt.Sprintf("%s/%d", url, crop.ID)
		method = http.MethodPut
	}
	var saved entities.Crop
	if !c.sendJSON(method, url, crop, &saved) {
		c.notify.Error("Failed to save crop information. Please try again.")
		return nil
	}
	verb := "added"
	if crop.ID != 0 {
		verb = "updated"
	}
	c.notify.Success(fmt.Sprintf("Crop %s %s successfully!", crop.Name, verb))
	return &saved
}

func (c *Client) DeleteCrop(id uint) bool {
	if !c.sendJSON(http.MethodDelete, fmt.Sprintf("%s/api/crops/%d", c.base, id), nil, nil) {
		c.notify.Error("Failed to delete crop. Please try again.")
		return false
	}
	c.notify.Success("Crop deleted successfully!")
	return true
}

// --- solutions ---

func (c *Client) GetAllSolutions() []entities.Solution {
	var ss []entities.Solution
	if !c.getJSON(c.base+"/api/solutions", &ss) {
		c.notify.Error("Failed to fetch solutions from database.")
		return []entities.Solution{}
	}
	return ss
}

func (c *Client) GetSolutionByID(id uint) *entities.Solution {
	var s entities.Solution
	if !c.getJSON(fmt.Sprintf("%s/api/solutions/%d", c.base, id), &s) {
		c.notify.Error("Failed to fetch solution.")
		return nil
	}
	return &s
}

// GetSolutionByDisease does the substring lookup. A 404 is a quiet nil: no
// stored solution for a disease is an expected outcome, not a failure.
func (c *Client) GetSolutionByDisease(name string) *entities.Solution {
	resp, err := c.httpc.Get(c.base + "/api/solutions/disease/" + name)
	if err != nil {
		c.notify.Error("No solution found for this disease.")
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.notify.Error("No solution found for this disease.")
		return nil
	}
	var s entities.Solution
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		c.notify.Error("No solution found for this disease.")
		return nil
	}
	return &s
}

func (c *Client) SaveSolution(s entities.Solution) *entities.Solution {
	url := c.base + "/api/solutions"
	method := http.MethodPost
	if s.ID != 0 {
		url = fmt.Sprintf("%s/%d", url, s.ID)
		method = http.MethodPut
	}
	var saved entities.Solution
	if !c.sendJSON(method, url, s, &saved) {
		c.notify.Error("Failed to save solution. Please try again.")
		return nil
	}
	verb := "added"
	if s.ID != 0 {
		verb = "updated"
	}
	c.notify.Success(fmt.Sprintf("Solution for %s %s successfully!", s.Disease, verb))
	return &saved
}

func (c *Client) DeleteSolution(id uint) bool {
	if !c.sendJSON(http.MethodDelete, fmt.Sprintf("%s/api/solutions/%d", c.base, id), nil, nil) {
		c.notify.Error("Failed to delete solution. Please try again.")
		return false
	}
	c.notify.Success("Solution deleted successfully!")
	return true
}

// --- detection ---

// AnalyzePlantImage validates the file locally, then submits it for
// detection. This is the one facade call that surfaces an error: the
// detection page distinguishes a bad file from an unavailable model.
func (c *Client) AnalyzePlantImage(filename string, image []byte) (*entities.DetectionResult, error) {
	if err := serviceImp.ValidateImage(image); err != nil {
		return nil, err
	}

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

	req, err := http.NewRequest(http.MethodPost, c.predict, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.notify.Error("Failed to analyze image. Please try again.")
		return nil, fmt.Errorf("%w: %v", detect.ErrClassifierUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.notify.Error("Failed to analyze image. Please try again.")
		return nil, fmt.Errorf("%w: status %d", detect.ErrClassifierUnavailable, resp.StatusCode)
	}

	var res entities.DetectionResult
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		c.notify.Error("Failed to analyze image. Please try again.")
		return nil, fmt.Errorf("%w: %v", detect.ErrClassifierUnavailable, err)
	}
	c.notify.Success("Image analysis complete!")
	return &res, nil
}

// TestConnection probes /api/test.
func (c *Client) TestConnection() bool {
	resp, err := c.httpc.Get(c.base + "/api/test")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode <= 299
}

// --- helpers ---

func (c *Client) getJSON(url string, out any) bool {
	resp, err := c.httpc.Get(url)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false
	}
	return json.NewDecoder(resp.Body).Decode(out) == nil
}

func (c *Client) sendJSON(method, url string, in, out any) bool {
	var body *bytes.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return false
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return false
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false
	}
	if out == nil {
		return true
	}
	return json.NewDecoder(resp.Body).Decode(out) == nil
}
