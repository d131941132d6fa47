// Package espn fetches rendered NFL play-by-play pages and exposes their
// visible text lines for the parsing pipeline. Accordion expansion is a
// browser-automation concern and is not handled here; pages fetched over
// plain HTTP carry the play cards in the served markup.
package espn

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"
)

const base = "https://www.espn.com/nfl/playbyplay/_/gameId/"

var httpCli = &http.Client{Timeout: 30 * time.Second}
var ua = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119 Safari/537.36 (+stats-research)"

// GameURL returns the play-by-play page URL for an ESPN game id.
func GameURL(gameID string) string {
	return base + gameID
}

// FetchGamePage downloads the play-by-play HTML for a game.
func FetchGamePage(ctx context.Context, gameID, referer string) (string, error) {
	html, err := getTextWithRetry(ctx, GameURL(gameID), referer)
	if err != nil {
		return "", fmt.Errorf("fetch game %s: %w", gameID, err)
	}
	return html, nil
}

// polite delay between game requests (env GAME_DELAY_MS), default 300ms
func GameDelay() time.Duration {
	ms := 300
	if v, err := strconv.Atoi(os.Getenv("GAME_DELAY_MS")); err == nil && v >= 0 && v <= 60000 {
		ms = v
	}
	return time.Duration(ms) * time.Millisecond
}

// fetch with UA, Accept-Language + optional Referer, retries on 429/5xx with jittered backoff
func getTextWithRetry(ctx context.Context, url, referer string) (string, error) {
	maxAttempts := 4
	backoff := 250 * time.Millisecond
	for attempt := 0; attempt < maxAttempts; attempt++ {
		req, _ := http.NewRequestWithContext(ctx, "GET", url, nil)
		req.Header.Set("User-Agent", ua)
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")
		if referer != "" {
			req.Header.Set("Referer", referer)
		}
		resp, err := httpCli.Do(req)
		if err != nil {
			if attempt == maxAttempts-1 {
				return "", err
			}
		} else {
			b, readErr := io.ReadAll(resp.Body)
			resp.Body.Close()
			if resp.StatusCode == 200 && readErr == nil {
				return string(b), nil
			}
			// retry only on 429/5xx
			if resp.StatusCode != 429 && (resp.StatusCode < 500 || resp.StatusCode > 599) {
				return "", fmt.Errorf("status %d for %s (body len=%d)", resp.StatusCode, url, len(b))
			}
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(backoff*time.Duration(1<<attempt) + time.Duration(rand.Intn(200))*time.Millisecond):
		}
	}
	return "", fmt.Errorf("exhausted retries for %s", url)
}
