package search

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// NewsAPI queries the NewsAPI "everything" endpoint. Every call is
// single-shot; failures are reported to the caller and the run continues
// with the remaining sources.
type NewsAPI struct {
	cfg    NewsAPIConfig
	apiKey string
	client *http.Client
}

type newsAPIResponse struct {
	Status       string           `json:"status"`
	TotalResults int              `json:"totalResults"`
	Articles     []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Source struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"source"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

func NewNewsAPI(cfg NewsAPIConfig, apiKey string, timeout time.Duration) *NewsAPI {
	return &NewsAPI{
		cfg:    cfg,
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
	}
}

func (n *NewsAPI) Name() string { return "newsapi" }

func (n *NewsAPI) Search(person string, day time.Time) ([]Candidate, error) {
	if n.apiKey == "" {
		return nil, errors.New("API key is missing")
	}

	params := url.Values{}
	params.Set("q", fmt.Sprintf("%q", person))
	params.Set("from", day.Format("2006-01-02"))
	params.Set("to", day.AddDate(0, 0, 1).Format("2006-01-02"))
	params.Set("language", n.cfg.Language)
	params.Set("sortBy", n.cfg.SortBy)

	req, err := http.NewRequest(http.MethodGet, n.cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", n.apiKey)

	res, err := n.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting newsapi: %w", err)
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
	case http.StatusBadRequest:
		return nil, errors.New("bad request: check query parameters")
	case http.StatusUnauthorized:
		return nil, errors.New("invalid API key, check credentials")
	case http.StatusTooManyRequests:
		return nil, errors.New("rate limit exceeded")
	default:
		return nil, fmt.Errorf("unexpected status %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("reading newsapi response: %w", err)
	}

	var response newsAPIResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("parsing newsapi response: %w", err)
	}

	candidates := make([]Candidate, 0, len(response.Articles))
	for _, a := range response.Articles {
		candidates = append(candidates, Candidate{URL: a.URL, Title: a.Title})
	}
	return candidates, nil
}
