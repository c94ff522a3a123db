package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/BuzzLyutic/todo-dashboard/internal/model"
)

// HTTPSource fetches the snapshot artifact over HTTP. The artifact keeps its
// name between sync runs, so every fetch carries a fresh "t" parameter.
type HTTPSource struct {
	url    string
	client *http.Client
	now    func() time.Time
}

func NewHTTPSource(artifactURL string, client *http.Client) *HTTPSource {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPSource{
		url:    artifactURL,
		client: client,
		now:    time.Now,
	}
}

// One request per call, no retry.
func (s *HTTPSource) Load(ctx context.Context) (model.Snapshot, error) {
	var snap model.Snapshot

	target, err := s.bustedURL()
	if err != nil {
		return snap, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return snap, fmt.Errorf("build snapshot request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := s.client.Do(req)
	if err != nil {
		return snap, fmt.Errorf("fetch snapshot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return snap, fmt.Errorf("fetch snapshot: unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return model.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.Tasks == nil {
		snap.Tasks = []model.Task{}
	}
	return snap, nil
}

func (s *HTTPSource) bustedURL() (string, error) {
	u, err := url.Parse(s.url)
	if err != nil {
		return "", fmt.Errorf("parse snapshot url: %w", err)
	}
	q := u.Query()
	q.Set("t", strconv.FormatInt(s.now().UnixMilli(), 10))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
