package benchmark

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

var fetchClient = &http.Client{Timeout: 60 * time.Second}

// Fetch downloads the live benchmark table and writes it to dest.
// The body must parse as a dump before anything is written, so a bad
// response can never clobber a good local copy. Returns the record count.
func Fetch(url, dest string) (int, error) {
	if url == "" {
		return 0, fmt.Errorf("no benchmark URL configured")
	}

	resp, err := fetchClient.Get(url)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch benchmark table: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("benchmark API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read benchmark response: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(body, &records); err != nil {
		return 0, fmt.Errorf("benchmark response is not a valid dump: %w", err)
	}
	if len(records) == 0 {
		return 0, fmt.Errorf("benchmark response contained no records")
	}

	if err := os.WriteFile(dest, body, 0644); err != nil {
		return 0, fmt.Errorf("failed to write benchmark table: %w", err)
	}

	return len(records), nil
}
