package inventory

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/breeze-rmm/inventory-agent/internal/config"
	"github.com/breeze-rmm/inventory-agent/internal/logging"
	"github.com/breeze-rmm/inventory-agent/pkg/models"
	"go.uber.org/zap"
)

// ErrNoOutput is returned when no destination is configured.
var ErrNoOutput = errors.New("no inventory destination configured")

// Sink delivers a finished inventory record.
type Sink interface {
	Name() string
	Send(ctx context.Context, inv *models.Inventory) error
}

// Sinks returns the destinations configured in cfg, stdout first.
func Sinks(cfg *config.Config, logger *zap.Logger, version string) ([]Sink, error) {
	var sinks []Sink
	if cfg.Stdout {
		sinks = append(sinks, &WriterSink{W: os.Stdout, Format: cfg.OutputFormat})
	}
	if cfg.LocalPath != "" {
		sinks = append(sinks, &FileSink{Path: cfg.LocalPath, Format: cfg.OutputFormat})
	}
	if cfg.ServerURL != "" {
		sinks = append(sinks, NewHTTPSink(cfg.ServerURL, userAgent(cfg.AgentString, version), cfg.InsecureSkipVerify, logger))
	}
	if len(sinks) == 0 {
		return nil, ErrNoOutput
	}
	return sinks, nil
}

func userAgent(custom, version string) string {
	if custom != "" {
		return custom
	}
	return "Breeze-Inventory/" + version
}

// WriterSink encodes the record to a writer.
type WriterSink struct {
	W      io.Writer
	Format string
}

func (s *WriterSink) Name() string { return "stdout" }

func (s *WriterSink) Send(_ context.Context, inv *models.Inventory) error {
	return Encode(s.W, inv, s.Format)
}

// FileSink writes the record to a file. When Path is an existing directory,
// or ends with a separator, the file is named after the device ID.
type FileSink struct {
	Path   string
	Format string
}

func (s *FileSink) Name() string { return "local" }

func (s *FileSink) Send(_ context.Context, inv *models.Inventory) error {
	path := s.target(inv.DeviceID)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, inv, s.Format); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write inventory: %w", err)
	}
	return nil
}

func (s *FileSink) target(deviceID string) string {
	isDir := strings.HasSuffix(s.Path, string(os.PathSeparator)) || strings.HasSuffix(s.Path, "/")
	if fi, err := os.Stat(s.Path); err == nil && fi.IsDir() {
		isDir = true
	}
	if isDir {
		return filepath.Join(s.Path, deviceID+extension(s.Format))
	}
	return s.Path
}

// SubmitError represents a rejected or failed submission
type SubmitError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Submission error codes
const (
	ErrCodeNetworkError = "NETWORK_ERROR"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeRejected     = "REJECTED"
	ErrCodeServerError  = "SERVER_ERROR"
)

// HTTPSink posts the record as JSON to the inventory server. Credentials in
// the URL are sent as basic authentication.
type HTTPSink struct {
	url       string
	userAgent string
	logger    *zap.Logger
	client    *http.Client
}

// NewHTTPSink creates a sink posting to url.
func NewHTTPSink(url, userAgent string, insecureSkipVerify bool, logger *zap.Logger) *HTTPSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: insecureSkipVerify,
		},
	}
	return &HTTPSink{
		url:       url,
		userAgent: userAgent,
		logger:    logging.Component(logger, "submit"),
		client: &http.Client{
			Transport: transport,
			Timeout:   30 * time.Second,
		},
	}
}

func (s *HTTPSink) Name() string { return "server" }

func (s *HTTPSink) Send(ctx context.Context, inv *models.Inventory) error {
	body, err := json.Marshal(inv)
	if err != nil {
		return fmt.Errorf("failed to marshal inventory: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return &SubmitError{
			Code:    ErrCodeNetworkError,
			Message: fmt.Sprintf("failed to connect to server: %v", err),
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return handleErrorResponse(resp.StatusCode, respBody)
	}

	s.logger.Debug("Inventory accepted",
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)))
	return nil
}

// handleErrorResponse converts HTTP error responses to SubmitError
func handleErrorResponse(statusCode int, body []byte) *SubmitError {
	var serverError struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &serverError); err == nil && serverError.Code != "" {
		return &SubmitError{Code: serverError.Code, Message: serverError.Message, StatusCode: statusCode}
	}

	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return &SubmitError{Code: ErrCodeUnauthorized, Message: "Server refused the credentials", StatusCode: statusCode}
	case statusCode >= 400 && statusCode < 500:
		return &SubmitError{Code: ErrCodeRejected, Message: fmt.Sprintf("Inventory rejected (status %d): %s", statusCode, body), StatusCode: statusCode}
	default:
		return &SubmitError{Code: ErrCodeServerError, Message: fmt.Sprintf("Server error (status %d): %s", statusCode, body), StatusCode: statusCode}
	}
}
