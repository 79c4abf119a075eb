package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	derr "github.com/tcarmet/bmw-finder/internal/domain/errors"
	"github.com/tcarmet/bmw-finder/internal/domain/models"
	"github.com/tcarmet/bmw-finder/internal/infrastructures/stolo/dto"
)

type Client struct {
	newCarURL  string
	usedCarURL string
	brand      string
	pageSize   int
	httpClient *http.Client
}

func NewClient(newCarURL, usedCarURL, brand string, pageSize int, httpClient *http.Client) *Client {
	return &Client{
		newCarURL:  newCarURL,
		usedCarURL: usedCarURL,
		brand:      brand,
		pageSize:   pageSize,
		httpClient: httpClient,
	}
}

// Search performs one POST against the stock-locator endpoint matching the
// query condition. maxResults above the endpoint page size is clamped.
func (c *Client) Search(ctx context.Context, condition models.Condition, maxResults, startIndex int, body dto.SearchRequest) (dto.SearchResponse, error) {
	searchURL, err := c.buildSearchURL(condition, maxResults, startIndex)
	if err != nil {
		return dto.SearchResponse{}, fmt.Errorf("build search url: %w", err)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return dto.SearchResponse{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, searchURL, bytes.NewReader(payload))
	if err != nil {
		return dto.SearchResponse{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return dto.SearchResponse{}, err
		}
		return dto.SearchResponse{}, fmt.Errorf("%w: do request: %v", derr.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
			return dto.SearchResponse{}, fmt.Errorf("%w: unexpected status: %s", derr.ErrSourceUnavailable, resp.Status)
		}
		return dto.SearchResponse{}, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	var dtoResp dto.SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&dtoResp); err != nil {
		return dto.SearchResponse{}, fmt.Errorf("%w: %v", derr.ErrDecodeFailed, err)
	}

	return dtoResp, nil
}

// PageSize is the per-request result cap the client enforces.
func (c *Client) PageSize() int {
	return c.pageSize
}

func (c *Client) buildSearchURL(condition models.Condition, maxResults, startIndex int) (string, error) {
	baseURL := c.usedCarURL
	if condition == models.ConditionNew {
		baseURL = c.newCarURL
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}

	if maxResults > c.pageSize || maxResults <= 0 {
		maxResults = c.pageSize
	}
	if startIndex < 0 {
		startIndex = 0
	}

	q := u.Query()
	q.Set("brand", c.brand)
	q.Set("maxResults", strconv.Itoa(maxResults))
	q.Set("startIndex", strconv.Itoa(startIndex))
	u.RawQuery = q.Encode()

	return u.String(), nil
}
