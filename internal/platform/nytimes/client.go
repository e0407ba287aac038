// Package nytimes is a client for the New York Times book reviews API.
package nytimes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const DefaultReviewsURL = "https://api.nytimes.com/svc/books/v3/reviews.json"

type Client struct {
	httpClient *http.Client
	userAgent  string
	reviewsURL string
	apiKey     string
	limiter    *rate.Limiter
}

// NewClient builds a client limited to rps outbound requests per second.
// Requests are never retried.
func NewClient(reviewsURL, apiKey, userAgent string, rps float64) *Client {
	if reviewsURL == "" {
		reviewsURL = DefaultReviewsURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		userAgent:  userAgent,
		reviewsURL: reviewsURL,
		apiKey:     apiKey,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// ReviewsResponse matches reviews.json
type ReviewsResponse struct {
	Status     string   `json:"status"`
	Copyright  string   `json:"copyright"`
	NumResults int      `json:"num_results"`
	Results    []Review `json:"results"`
}

type Review struct {
	URL             string   `json:"url"`
	PublicationDate string   `json:"publication_dt"`
	Byline          string   `json:"byline"`
	BookTitle       string   `json:"book_title"`
	BookAuthor      string   `json:"book_author"`
	Summary         string   `json:"summary"`
	ISBN13          []string `json:"isbn13"`
}

// ReviewsURL returns the request URL for a title lookup.
func (c *Client) ReviewsURL(title string) string {
	params := url.Values{}
	params.Set("title", title)
	params.Set("api-key", c.apiKey)
	return c.reviewsURL + "?" + params.Encode()
}

// RawReviews fetches the reviews payload for title without decoding it.
func (c *Client) RawReviews(ctx context.Context, title string) ([]byte, error) {
	return c.rawGet(ctx, c.ReviewsURL(title))
}

// Reviews fetches and decodes the reviews for title.
func (c *Client) Reviews(ctx context.Context, title string) (*ReviewsResponse, error) {
	raw, err := c.RawReviews(ctx, title)
	if err != nil {
		return nil, err
	}
	return DecodeReviews(raw)
}

func DecodeReviews(raw []byte) (*ReviewsResponse, error) {
	var res ReviewsResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	return &res, nil
}

func (c *Client) rawGet(ctx context.Context, reqURL string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// The request URL carries the API key; keep only the cause.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return nil, fmt.Errorf("reviews request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
