package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	derr "github.com/tcarmet/bmw-finder/internal/domain/errors"
	"github.com/tcarmet/bmw-finder/internal/domain/models"
	"github.com/tcarmet/bmw-finder/internal/infrastructures/stolo/dto"
)

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(srv.URL+"/stocklocator", srv.URL+"/stocklocator_uc", "BMW", 50, srv.Client())
}

func TestSearch_SendsBrandPagingAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stocklocator" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method: %s", r.Method)
		}

		q := r.URL.Query()
		if q.Get("brand") != "BMW" || q.Get("maxResults") != "42" || q.Get("startIndex") != "0" {
			t.Fatalf("unexpected query: %s", r.URL.RawQuery)
		}

		var req dto.SearchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(req.SearchContext) != 1 || req.SearchContext[0].Model == nil {
			t.Fatalf("expected model search context, got %+v", req.SearchContext)
		}
		if got := req.SearchContext[0].Model.MarketingModelRange.Value; len(got) != 1 || got[0] != "iX2_U10E" {
			t.Fatalf("unexpected model filter: %v", got)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"hits":[],"metadata":{"totalCount":0}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	resp, err := c.Search(context.Background(), models.ConditionNew, 42, 0, dto.NewModelSearchRequest("iX2_U10E"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Metadata.TotalCount != 0 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestSearch_UsedConditionHitsUsedCarURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stocklocator_uc" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"hits":[],"metadata":{"totalCount":0}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	if _, err := c.Search(context.Background(), models.ConditionUsed, 1, 0, dto.NewModelSearchRequest("iX2_U10E")); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestSearch_ClampsMaxResultsToPageSize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("maxResults"); got != "50" {
			t.Fatalf("expected maxResults clamped to 50, got %s", got)
		}
		_, _ = w.Write([]byte(`{"hits":[],"metadata":{"totalCount":0}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	if _, err := c.Search(context.Background(), models.ConditionNew, 109, 0, dto.NewModelSearchRequest("iX2_U10E")); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestSearch_ServerErrorMapsToSourceUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(srv)
	_, err := c.Search(context.Background(), models.ConditionNew, 1, 0, dto.NewModelSearchRequest("iX2_U10E"))
	if !errors.Is(err, derr.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}

func TestSearch_ClientErrorIsPlainStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := newTestClient(srv)
	_, err := c.Search(context.Background(), models.ConditionNew, 1, 0, dto.NewModelSearchRequest("iX2_U10E"))
	if err == nil {
		t.Fatal("expected error for 400 response")
	}
	if errors.Is(err, derr.ErrSourceUnavailable) {
		t.Fatalf("expected a plain status error, got %v", err)
	}
}

func TestSearch_MalformedBodyMapsToDecodeFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"hits": "not-an-array"`))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	_, err := c.Search(context.Background(), models.ConditionNew, 1, 0, dto.NewModelSearchRequest("iX2_U10E"))
	if !errors.Is(err, derr.ErrDecodeFailed) {
		t.Fatalf("expected ErrDecodeFailed, got %v", err)
	}
}

func TestSearch_ConnectionFailureMapsToSourceUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := NewClient(srv.URL+"/stocklocator", srv.URL+"/stocklocator_uc", "BMW", 50, http.DefaultClient)
	_, err := c.Search(context.Background(), models.ConditionNew, 1, 0, dto.NewModelSearchRequest("iX2_U10E"))
	if !errors.Is(err, derr.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}
