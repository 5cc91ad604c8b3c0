package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/conceptgraph/wiktsem/internal/titleindex"
	"github.com/conceptgraph/wiktsem/internal/walker"
)

func TestExtractEndpoint(t *testing.T) {
	w := walker.New(titleindex.NewMapOracle(), "en", nil)
	router := NewRouter(w, nil)

	body := `{"entry":{"language":"English","title":"dog","sections":[
		{"heading":"Noun","text":"","sections":[
			{"heading":"Synonyms","text":"* {{l|en|canine}}"}
		]}
	]}}`

	req := httptest.NewRequest(http.MethodPost, "/extract", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp extractResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(resp.Edges) != 1 {
		t.Fatalf("edges = %d, want 1: %+v", len(resp.Edges), resp.Edges)
	}
	if resp.Edges[0].RelationURI != "/r/Synonym" {
		t.Errorf("relation = %q, want /r/Synonym", resp.Edges[0].RelationURI)
	}
}

func TestExtractEndpointMissingTitle(t *testing.T) {
	w := walker.New(titleindex.NewMapOracle(), "en", nil)
	router := NewRouter(w, nil)

	req := httptest.NewRequest(http.MethodPost, "/extract", bytes.NewBufferString(`{"entry":{"language":"English"}}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestExtractEndpointBadJSON(t *testing.T) {
	w := walker.New(titleindex.NewMapOracle(), "en", nil)
	router := NewRouter(w, nil)

	req := httptest.NewRequest(http.MethodPost, "/extract", bytes.NewBufferString(`not json`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
