package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client calls the external ai-service. The service owns all intelligence:
// this client only moves strings across HTTP and passes service errors
// through unchanged. It never interprets them and never retries beyond the
// transport layer.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{BaseURL: baseURL, HTTP: &http.Client{Timeout: 60 * time.Second}}
}

// MatchResult is the job-match analysis returned by the ai-service.
type MatchResult struct {
	MatchScore           int      `json:"match_score"`
	Summary              string   `json:"summary"`
	MatchingKeywords     []string `json:"matching_keywords"`
	MissingKeywords      []string `json:"missing_keywords"`
	TailoringSuggestions []string `json:"tailoring_suggestions"`
	Error                string   `json:"error,omitempty"`
}

// doPostWithRetry performs an HTTP POST to the given path with retry/backoff.
func (c *Client) doPostWithRetry(ctx context.Context, path string, body []byte) (*http.Response, error) {
	attempts := 3
	var lastErr error
	for i := 0; i < attempts; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.HTTP.Do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		// exponential backoff before retrying
		if i < attempts-1 {
			backoff := time.Duration(1<<i) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, lastErr
}

// postJSON posts the payload and decodes the response body into a map.
func (c *Client) postJSON(ctx context.Context, path string, payload interface{}) (map[string]interface{}, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	resp, err := c.doPostWithRetry(ctx, path, b)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var out map[string]interface{}
	if err := json.Unmarshal(respBytes, &out); err != nil {
		return nil, fmt.Errorf("ai-service returned non-JSON response (status %d)", resp.StatusCode)
	}
	// the service reports failures inside the body as an error string
	if msg, ok := out["error"].(string); ok && msg != "" {
		return nil, errors.New(msg)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ai-service returned status %d", resp.StatusCode)
	}
	return out, nil
}

// ParseResume sends extracted resume text for parsing and enhancement. The
// response is a resume-shaped payload plus an advisory list of skills the
// service thought were missing; the payload goes straight to the import
// normalizer.
func (c *Client) ParseResume(ctx context.Context, resumeText, modelChoice string) (map[string]interface{}, []string, error) {
	payload := map[string]string{
		"resume_text":  resumeText,
		"model_choice": modelChoice,
	}
	out, err := c.postJSON(ctx, "/aiResumeParser", payload)
	if err != nil {
		return nil, nil, err
	}

	var missing []string
	if raw, ok := out["missing_skills"].([]interface{}); ok {
		for _, itm := range raw {
			if s, ok := itm.(string); ok {
				missing = append(missing, s)
			}
		}
		delete(out, "missing_skills")
	}
	return out, missing, nil
}

// AnalyzeMatch sends resume and job-description text for compatibility
// analysis.
func (c *Client) AnalyzeMatch(ctx context.Context, resumeText, jdText string) (*MatchResult, error) {
	payload := map[string]string{
		"resume_text": resumeText,
		"jd_text":     jdText,
	}
	out, err := c.postJSON(ctx, "/aiJobMatcher", payload)
	if err != nil {
		return nil, err
	}

	// round-trip through JSON to decode into the typed result
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	var result MatchResult
	if err := json.Unmarshal(b, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GenerateCoverLetter asks the service to draft a cover letter from resume
// and job-description text.
func (c *Client) GenerateCoverLetter(ctx context.Context, resumeText, jdText, userName string) (string, error) {
	payload := map[string]string{
		"resume_text": resumeText,
		"jd_text":     jdText,
		"user_name":   userName,
	}
	out, err := c.postJSON(ctx, "/aiCoverLetter", payload)
	if err != nil {
		return "", err
	}
	letter, _ := out["cover_letter"].(string)
	if letter == "" {
		return "", errors.New("ai-service returned no cover letter")
	}
	return letter, nil
}
