package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewClient(srv.URL)
	return c, srv
}

func TestParseResume(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"fullName":       "Ada Lovelace",
			"skills":         []map[string]string{{"name": "Go"}},
			"missing_skills": []string{"Kubernetes", "Terraform"},
		})
	})
	defer srv.Close()

	out, missing, err := c.ParseResume(context.Background(), "resume body", "gpt-4o")
	if err != nil {
		t.Fatalf("ParseResume: %v", err)
	}
	if gotPath != "/aiResumeParser" {
		t.Errorf("path = %q", gotPath)
	}
	if gotBody["resume_text"] != "resume body" || gotBody["model_choice"] != "gpt-4o" {
		t.Errorf("request body = %+v", gotBody)
	}
	if out["fullName"] != "Ada Lovelace" {
		t.Errorf("payload = %+v", out)
	}
	if _, present := out["missing_skills"]; present {
		t.Errorf("missing_skills should be stripped from the payload")
	}
	if !reflect.DeepEqual(missing, []string{"Kubernetes", "Terraform"}) {
		t.Errorf("missing = %+v", missing)
	}
}

func TestAnalyzeMatch(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/aiJobMatcher" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"match_score":           78,
			"summary":               "Strong backend fit",
			"matching_keywords":     []string{"Go", "Postgres"},
			"missing_keywords":      []string{"Kafka"},
			"tailoring_suggestions": []string{"Mention event pipelines"},
		})
	})
	defer srv.Close()

	result, err := c.AnalyzeMatch(context.Background(), "resume body", "jd body")
	if err != nil {
		t.Fatalf("AnalyzeMatch: %v", err)
	}
	if result.MatchScore != 78 || result.Summary != "Strong backend fit" {
		t.Errorf("result = %+v", result)
	}
	if !reflect.DeepEqual(result.MatchingKeywords, []string{"Go", "Postgres"}) {
		t.Errorf("matching keywords = %+v", result.MatchingKeywords)
	}
	if !reflect.DeepEqual(result.MissingKeywords, []string{"Kafka"}) {
		t.Errorf("missing keywords = %+v", result.MissingKeywords)
	}
}

func TestGenerateCoverLetter(t *testing.T) {
	var gotBody map[string]string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/aiCoverLetter" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]string{"cover_letter": "Dear Hiring Manager,"})
	})
	defer srv.Close()

	letter, err := c.GenerateCoverLetter(context.Background(), "resume body", "jd body", "Ada")
	if err != nil {
		t.Fatalf("GenerateCoverLetter: %v", err)
	}
	if letter != "Dear Hiring Manager," {
		t.Errorf("letter = %q", letter)
	}
	if gotBody["user_name"] != "Ada" || gotBody["jd_text"] != "jd body" {
		t.Errorf("request body = %+v", gotBody)
	}
}

func TestServiceErrorPassthrough(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"error": "model quota exceeded"})
	})
	defer srv.Close()

	_, _, err := c.ParseResume(context.Background(), "resume body", "")
	if err == nil || err.Error() != "model quota exceeded" {
		t.Fatalf("expected the service error verbatim, got %v", err)
	}
}

func TestNonJSONResponse(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>upstream error</html>"))
	})
	defer srv.Close()

	if _, err := c.AnalyzeMatch(context.Background(), "resume", "jd"); err == nil {
		t.Fatalf("expected error for non-JSON response")
	}
}

func TestEmptyCoverLetter(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	})
	defer srv.Close()

	if _, err := c.GenerateCoverLetter(context.Background(), "resume", "jd", "Ada"); err == nil {
		t.Fatalf("expected error for missing cover letter")
	}
}
