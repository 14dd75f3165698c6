package controllerImp

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"farmassist/pkg/guide/service"
)

type GuideCtrl struct {
	s        service.GuideService
	allow    map[string]bool
	maxBytes int
}

// New builds the controller; allowedDomains is a comma-separated host
// allow-list for URL ingestion.
func New(s service.GuideService, allowedDomains string, maxBytes int) *GuideCtrl {
	allow := map[string]bool{}
	for _, h := range strings.Split(allowedDomains, ",") {
		h = strings.TrimSpace(h)
		if h != "" {
			allow[strings.ToLower(h)] = true
		}
	}
	if maxBytes <= 0 {
		maxBytes = 1500000
	}
	return &GuideCtrl{s: s, allow: allow, maxBytes: maxBytes}
}

type ingestReq struct {
	Title   string `json:"title"`
	Tags    string `json:"tags"`
	Content string `json:"content"`
}

func (h *GuideCtrl) IngestText(c echo.Context) error {
	var req ingestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid json"})
	}
	g, err := h.s.Ingest(req.Title, req.Tags, req.Content, "")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusCreated, g)
}

func (h *GuideCtrl) IngestURL(c echo.Context) error {
	var body struct{ URL, Tags, Title string }
	if err := c.Bind(&body); err != nil || body.URL == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "url required"})
	}
	u, err := url.Parse(body.URL)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "bad url"})
	}
	if !h.allow[strings.ToLower(u.Host)] {
		return c.JSON(http.StatusForbidden, map[string]string{"message": "domain not allowed"})
	}

	text, title, err := fetchMainText(body.URL, h.maxBytes)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"message": err.Error()})
	}
	if body.Title != "" {
		title = body.Title
	}

	g, err := h.s.Ingest(title, body.Tags, text, body.URL)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusCreated, g)
}

func (h *GuideCtrl) List(c echo.Context) error {
	gs, err := h.s.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Error fetching guides", "error": err.Error()})
	}
	return c.JSON(http.StatusOK, gs)
}

func (h *GuideCtrl) Search(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "q required"})
	}
	gs, err := h.s.Search(q, 10)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Error searching guides", "error": err.Error()})
	}
	return c.JSON(http.StatusOK, gs)
}

func (h *GuideCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	g, err := h.s.Get(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Guide not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Error fetching guide", "error": err.Error()})
	}
	return c.JSON(http.StatusOK, g)
}

func (h *GuideCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	err := h.s.Delete(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Guide not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Error deleting guide", "error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Guide deleted successfully"})
}

// --- helpers ---

func fetchMainText(u string, maxBytes int) (string, string, error) {
	client := &http.Client{Timeout: 20 * time.Second}
	resp, err := client.Get(u)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()
	if resp.ContentLength > 0 && resp.ContentLength > int64(maxBytes) {
		return "", "", fmt.Errorf("page too large")
	}
	limited := io.LimitedReader{R: resp.Body, N: int64(maxBytes)}
	b, err := io.ReadAll(&limited)
	if err != nil {
		return "", "", err
	}
	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if !strings.Contains(ct, "text/html") && !strings.Contains(ct, "text/plain") {
		return "", "", fmt.Errorf("unsupported content-type: %s", ct)
	}
	if strings.Contains(ct, "text/plain") {
		return string(b), guessTitleFromText(string(b)), nil
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b))
	if err != nil {
		return "", "", err
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())

	// main/article content plus headings, paragraphs and list items
	var parts []string
	sel := doc.Find("main, article")
	if sel.Length() == 0 {
		sel = doc.Selection
	}
	sel.Find("h1,h2,h3,p,li").Each(func(_ int, s *goquery.Selection) {
		t := strings.TrimSpace(s.Text())
		if len(t) > 0 {
			parts = append(parts, t)
		}
	})
	text := cleanWhitespace(strings.Join(parts, "\n"))
	return text, title, nil
}

var wsRX = regexp.MustCompile(`\s+\n`)

func cleanWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	return wsRX.ReplaceAllString(s, "\n")
}

func guessTitleFromText(s string) string {
	line := strings.SplitN(strings.TrimSpace(s), "\n", 2)[0]
	if len(line) > 120 {
		line = line[:120]
	}
	return line
}
