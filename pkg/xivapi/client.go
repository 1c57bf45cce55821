// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package xivapi fetches server and character data from the public game data api.
package xivapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/patrickmn/go-cache"
	"github.com/tidwall/gjson"

	"github.com/AccelByte/extend-party-finder/pkg/constants"
	"github.com/AccelByte/extend-party-finder/pkg/envelope"
	"github.com/AccelByte/extend-party-finder/pkg/metrics"
	"github.com/AccelByte/extend-party-finder/pkg/models"
)

const (
	serversCacheKey   = "servers"
	defaultRetryDelay = 500 * time.Millisecond
)

var errRetryableStatus = errors.New("retryable status")

type Options struct {
	BaseURL       string
	UserAgent     string
	Timeout       time.Duration
	RetryAttempts int
	RetryDelay    time.Duration
	CacheTTL      time.Duration
}

type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	attempts   uint
	retryDelay time.Duration
	cache      *cache.Cache
	metrics    metrics.PartyFinderMetrics
}

func NewClient(opts Options, metrics metrics.PartyFinderMetrics) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = constants.DefaultBaseURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = constants.DefaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = constants.HTTPTimeout
	}
	if opts.RetryAttempts <= 0 {
		opts.RetryAttempts = 1
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = defaultRetryDelay
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = constants.CacheTTL
	}

	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		userAgent:  opts.UserAgent,
		httpClient: &http.Client{Timeout: opts.Timeout},
		attempts:   uint(opts.RetryAttempts),
		retryDelay: opts.RetryDelay,
		cache:      cache.New(opts.CacheTTL, 2*opts.CacheTTL),
		metrics:    metrics,
	}
}

// Servers returns the names of every game server.
func (c *Client) Servers(scope *envelope.Scope) ([]string, error) {
	if cached, ok := c.cache.Get(serversCacheKey); ok {
		return cached.([]string), nil
	}

	body, err := c.get(scope, constants.ProviderServers, "/servers", nil)
	if err != nil {
		return nil, err
	}

	result := gjson.ParseBytes(body)
	if !result.IsArray() {
		return nil, fmt.Errorf("unexpected server list response: %s", truncate(body))
	}
	servers := make([]string, 0, len(result.Array()))
	for _, server := range result.Array() {
		servers = append(servers, server.String())
	}

	c.cache.SetDefault(serversCacheKey, servers)
	return servers, nil
}

// SearchCharacter looks up a character by exact name on a server. It returns
// models.ErrCharacterNotFound or models.ErrMultipleCharacters unless exactly one matches.
func (c *Client) SearchCharacter(scope *envelope.Scope, name string, server string) (models.CharacterSummary, error) {
	cacheKey := "search:" + server + ":" + name
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.(models.CharacterSummary), nil
	}

	query := url.Values{}
	query.Set("name", name)
	query.Set("server", server)
	body, err := c.get(scope, constants.ProviderSearch, "/character/search", query)
	if err != nil {
		return models.CharacterSummary{}, err
	}

	count := gjson.GetBytes(body, "Pagination.Results").Int()
	if count == 0 {
		return models.CharacterSummary{}, fmt.Errorf("%w: %s on %s", models.ErrCharacterNotFound, name, server)
	}
	if count > 1 {
		return models.CharacterSummary{}, fmt.Errorf("%w: %d results for %s on %s", models.ErrMultipleCharacters, count, name, server)
	}

	if listed := gjson.GetBytes(body, "Results.#").Int(); listed != 1 {
		return models.CharacterSummary{}, fmt.Errorf("character search counted 1 result but listed %d: %s", listed, truncate(body))
	}

	hit := gjson.GetBytes(body, "Results.0")
	summary := models.CharacterSummary{
		ID:   int(hit.Get("ID").Int()),
		Name: hit.Get("Name").String(),
	}
	if summary.ID == 0 {
		return models.CharacterSummary{}, fmt.Errorf("character search returned no id: %s", truncate(body))
	}

	c.cache.SetDefault(cacheKey, summary)
	return summary, nil
}

// Character fetches a character and returns it as a party member. Every job is kept,
// in the order the api lists them; filtering to combat jobs is left to the caller.
func (c *Client) Character(scope *envelope.Scope, id int) (models.Member, error) {
	cacheKey := "character:" + strconv.Itoa(id)
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.(models.Member), nil
	}

	body, err := c.get(scope, constants.ProviderCharacter, "/character/"+strconv.Itoa(id), nil)
	if err != nil {
		return models.Member{}, err
	}

	character := gjson.GetBytes(body, "Character")
	if !character.Exists() {
		return models.Member{}, fmt.Errorf("%w: id %d", models.ErrCharacterNotFound, id)
	}

	member := models.Member{
		DisplayName: character.Get("Name").String(),
		Jobs:        make([]models.JobRecord, 0),
	}
	character.Get("ClassJobs").ForEach(func(_, job gjson.Result) bool {
		member.Jobs = append(member.Jobs, models.JobRecord{
			JobID: int(job.Get("ClassID").Int()),
			Name:  job.Get("UnlockedState.Name").String(),
			Level: int(job.Get("Level").Int()),
		})
		return true
	})

	c.cache.SetDefault(cacheKey, member)
	return member, nil
}

func (c *Client) get(scope *envelope.Scope, endpoint string, path string, query url.Values) ([]byte, error) {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var body []byte
	err := retry.Do(
		func() error {
			var err error
			body, err = c.doGet(scope, endpoint, requestURL)
			return err
		},
		retry.Context(scope.Ctx),
		retry.Attempts(c.attempts),
		retry.Delay(c.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			scope.Log.WithField("endpoint", endpoint).Warnf("retrying request #%d: %s", n+1, err)
		}),
	)
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) doGet(scope *envelope.Scope, endpoint string, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(scope.Ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, retry.Unrecoverable(err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	scope.Log.WithField("url", requestURL).Debug("requesting character data provider")
	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.AddProviderElapsedTimeMs(endpoint, "error", time.Since(startTime))
		return nil, err
	}
	defer resp.Body.Close()
	c.metrics.AddProviderElapsedTimeMs(endpoint, strconv.Itoa(resp.StatusCode), time.Since(startTime))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response from %s: %w", requestURL, err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w %d for %s: %s", errRetryableStatus, resp.StatusCode, requestURL, truncate(body))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, retry.Unrecoverable(fmt.Errorf("api status %d for %s: %s", resp.StatusCode, requestURL, truncate(body)))
	}

	if !gjson.ValidBytes(body) {
		return nil, retry.Unrecoverable(fmt.Errorf("invalid json from %s: %s", requestURL, truncate(body)))
	}
	return body, nil
}

func truncate(body []byte) string {
	const limit = 4 << 10
	if len(body) > limit {
		return string(body[:limit])
	}
	return string(body)
}
