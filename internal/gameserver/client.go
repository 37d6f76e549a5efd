// Package gameserver queries the game server's public status endpoint and
// parses its occupancy payload.
package gameserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mfalcao/slack-punchcard-bot/internal/domain/entity"
)

const requestTimeout = 10 * time.Second

// statusResponse is the subset of the status payload we care about.
// The players field is a "current/capacity" string.
type statusResponse struct {
	Players string `json:"players"`
}

type Client struct {
	url    string
	client *http.Client
}

func New(url string) *Client {
	return &Client{
		url: url,
		client: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// FetchOccupancy performs one GET against the status endpoint. Any failure
// (network, non-200, empty body, malformed JSON or players string) is
// returned as an error so the caller can skip the cycle.
func (c *Client) FetchOccupancy(ctx context.Context) (entity.Occupancy, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return entity.Occupancy{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return entity.Occupancy{}, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entity.Occupancy{}, fmt.Errorf("received non-200 status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return entity.Occupancy{}, fmt.Errorf("failed to read response body: %w", err)
	}

	if len(body) == 0 {
		return entity.Occupancy{}, fmt.Errorf("empty response body")
	}

	var status statusResponse
	if err := json.Unmarshal(body, &status); err != nil {
		return entity.Occupancy{}, fmt.Errorf("failed to unmarshal status response: %w", err)
	}

	return ParsePlayers(status.Players)
}

// ParsePlayers validates and parses a "current/capacity" string into a typed
// occupancy reading. Anything not matching integer "/" integer is rejected:
// no whitespace, no signs, digits only on both sides.
func ParsePlayers(players string) (entity.Occupancy, error) {
	curPart, capPart, found := strings.Cut(players, "/")
	if !found {
		return entity.Occupancy{}, fmt.Errorf("invalid players format: %q", players)
	}

	current, err := parseCount(curPart)
	if err != nil {
		return entity.Occupancy{}, fmt.Errorf("invalid current player count %q: %w", curPart, err)
	}

	capacity, err := parseCount(capPart)
	if err != nil {
		return entity.Occupancy{}, fmt.Errorf("invalid capacity %q: %w", capPart, err)
	}

	if capacity == 0 {
		return entity.Occupancy{}, fmt.Errorf("capacity must be positive: %q", players)
	}

	return entity.Occupancy{Current: current, Capacity: capacity}, nil
}

func parseCount(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty count")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("not an unsigned integer")
		}
	}
	return strconv.Atoi(s)
}
