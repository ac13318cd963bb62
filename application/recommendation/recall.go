package recommendation

import (
	"context"
	"sync"

	"github.com/cwalinapj/Sitebuilder1.0-sub001/application/ports"
)

const (
	userRecallTopK    = 8
	trendsRecallTopK  = 5
	catalogRecallTopK = 12
)

// recallResult carries the three independent query results. User and trend
// matches feed the upsell heuristic as raw signal; catalog matches feed the
// diversity selector. The rankings are never merged.
type recallResult struct {
	user    []ports.Match
	trends  []ports.Match
	catalog []ports.Match
}

// recall issues the three similarity queries concurrently and waits for all
// of them. Any failure fails the whole recall; no partial recommendation is
// assembled from a subset of indices.
func (s *Service) recall(ctx context.Context, userID string, vector []float32, catalogFilter map[string]interface{}) (*recallResult, error) {
	var (
		wg     sync.WaitGroup
		result recallResult
		errs   [3]error
	)

	wg.Add(3)

	go func() {
		defer wg.Done()
		result.user, errs[0] = s.userIndex.Query(ctx, vector, userRecallTopK, map[string]interface{}{
			"user_id": userID,
		})
	}()

	go func() {
		defer wg.Done()
		result.trends, errs[1] = s.trendsIndex.Query(ctx, vector, trendsRecallTopK, nil)
	}()

	go func() {
		defer wg.Done()
		result.catalog, errs[2] = s.catalogIndex.Query(ctx, vector, catalogRecallTopK, catalogFilter)
	}()

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return &result, nil
}
