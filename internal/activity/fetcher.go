package activity

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/runlog/runlog-backend-go/internal/models"
)

// DefaultPageSize is the number of records requested per page.
const DefaultPageSize = 100

// ErrNoUser indicates no resolvable user id was available. It fails the
// fetch before any network call is made.
var ErrNoUser = errors.New("no resolvable user id")

// History holds the complete normalized run history of one user.
type History struct {
	Outdoor []models.RunEntry
	Indoor  []models.RunEntry
}

// All returns the combined outdoor and indoor entries.
func (h *History) All() []models.RunEntry {
	all := make([]models.RunEntry, 0, len(h.Outdoor)+len(h.Indoor))
	all = append(all, h.Outdoor...)
	all = append(all, h.Indoor...)
	return all
}

// Fetcher retrieves complete run histories from the activity service by
// walking the cursor-paginated query.
type Fetcher struct {
	client     Client
	normalizer *Normalizer
	pageSize   int
}

// NewFetcher creates a fetcher using the given client and normalizer.
func NewFetcher(client Client, normalizer *Normalizer) *Fetcher {
	return &Fetcher{
		client:     client,
		normalizer: normalizer,
		pageSize:   DefaultPageSize,
	}
}

// FetchHistory retrieves the full history of one variant (indoor or
// outdoor), requesting pages strictly sequentially until the service
// reports no further token.
//
// The policy is best-effort: a failed page request stops pagination but
// whatever was accumulated so far is returned as a success. An error is
// surfaced only when nothing at all was fetched.
func (f *Fetcher) FetchHistory(ctx context.Context, userID string, indoor bool) ([]models.RunEntry, error) {
	if userID == "" {
		return nil, ErrNoUser
	}

	var entries []models.RunEntry
	token := ""
	for {
		page, err := f.client.FetchActivities(ctx, userID, f.pageSize, token, !indoor)
		if err != nil {
			if len(entries) > 0 {
				log.Printf("[Fetcher] page request failed after %d records, keeping partial history: %v", len(entries), err)
				return entries, nil
			}
			return nil, fmt.Errorf("failed to fetch activities: %w", err)
		}

		for _, raw := range page.Records {
			if raw.IsIndoorRun != indoor {
				continue
			}
			entries = append(entries, f.normalizer.Normalize(raw))
		}

		if !page.HasMore || page.NextToken == "" {
			break
		}
		token = page.NextToken
	}
	return entries, nil
}

// FetchAll retrieves the outdoor and indoor histories as two concurrent
// pagination runs and waits for both to finish. The two runs have no
// ordering relationship to each other.
//
// One variant failing outright does not discard the other; an error is
// returned only when both runs came back empty-handed.
func (f *Fetcher) FetchAll(ctx context.Context, userID string) (*History, error) {
	if userID == "" {
		return nil, ErrNoUser
	}

	var (
		wg                    sync.WaitGroup
		outdoor, indoor       []models.RunEntry
		outdoorErr, indoorErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		outdoor, outdoorErr = f.FetchHistory(ctx, userID, false)
	}()
	go func() {
		defer wg.Done()
		indoor, indoorErr = f.FetchHistory(ctx, userID, true)
	}()
	wg.Wait()

	if outdoorErr != nil && indoorErr != nil {
		return nil, fmt.Errorf("failed to fetch run history: %w", errors.Join(outdoorErr, indoorErr))
	}
	if outdoorErr != nil {
		log.Printf("[Fetcher] outdoor fetch failed, continuing with indoor only: %v", outdoorErr)
	}
	if indoorErr != nil {
		log.Printf("[Fetcher] indoor fetch failed, continuing with outdoor only: %v", indoorErr)
	}

	return &History{Outdoor: outdoor, Indoor: indoor}, nil
}
