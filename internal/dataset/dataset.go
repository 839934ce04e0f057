// Package dataset loads the static dinosaur JSON document.
//
// The document is read once at startup, from a local file or an http(s)
// URL, and the result is handed to everything else as an explicit,
// read-only value. Nothing re-reads or mutates it afterwards.
package dataset

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/aanand-mishra/dino-compare/internal/types"
)

// Document is the on-disk shape: {"Dinos": [ ... ]}.
type Document struct {
	Dinos []types.Dinosaur `json:"Dinos"`
}

// ErrEmpty is returned when the document holds no records.
var ErrEmpty = errors.New("dataset has no dinosaurs")

// Load reads the dataset from source, which is either a filesystem path
// or an http:// / https:// URL.
func Load(ctx context.Context, source string) ([]types.Dinosaur, error) {
	if isURL(source) {
		return Fetch(ctx, http.DefaultClient, source)
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("dataset.Load: open: %w", err)
	}
	defer f.Close()

	dinos, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("dataset.Load: %s: %w", source, err)
	}
	return dinos, nil
}

// Fetch downloads and decodes the dataset. It is the one network call the
// application makes; there is no retry.
func Fetch(ctx context.Context, client *http.Client, url string) ([]types.Dinosaur, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dataset.Fetch: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dataset.Fetch: get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dataset.Fetch: get %s: unexpected status %s", url, resp.Status)
	}

	dinos, err := Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("dataset.Fetch: %s: %w", url, err)
	}
	return dinos, nil
}

// Decode parses a dataset document. A bare JSON array of records is
// accepted as well as the {"Dinos": [...]} wrapper.
func Decode(r io.Reader) ([]types.Dinosaur, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	trimmed := bytes.TrimSpace(raw)
	var dinos []types.Dinosaur
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &dinos); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
	} else {
		var doc Document
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		dinos = doc.Dinos
	}

	if len(dinos) == 0 {
		return nil, ErrEmpty
	}
	return dinos, nil
}

func isURL(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
