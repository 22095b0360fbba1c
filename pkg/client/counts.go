package client

import (
	"context"
	"net/http"
	"sync"
)

// batchIDs is the request body for the batch count endpoints.
type batchIDs struct {
	IDs []uint `json:"ids"`
}

// FetchCounts retrieves likes, comments, shares, and liked-by-me for the
// given posts. The four batch calls run concurrently and the results are
// merged per post. Any endpoint that fails degrades to zero values for its
// column so one bad call never blanks the whole feed.
func (c *Client) FetchCounts(ctx context.Context, ids []uint) map[uint]PostCounts {
	counts := make(map[uint]PostCounts, len(ids))
	if len(ids) == 0 {
		return counts
	}

	likes := make(map[uint]int64)
	comments := make(map[uint]int64)
	shares := make(map[uint]int64)
	liked := make(map[uint]bool)

	var wg sync.WaitGroup
	wg.Add(4)
	go c.fetchCountMap(ctx, &wg, "/api/posts/likes-count", ids, &likes)
	go c.fetchCountMap(ctx, &wg, "/api/posts/comments-count", ids, &comments)
	go c.fetchCountMap(ctx, &wg, "/api/posts/shares-count", ids, &shares)
	go func() {
		defer wg.Done()
		var m map[uint]bool
		if err := c.do(ctx, http.MethodPost, "/api/posts/liked", batchIDs{IDs: ids}, &m); err == nil {
			liked = m
		}
	}()
	wg.Wait()

	for _, id := range ids {
		counts[id] = PostCounts{
			Likes:    likes[id],
			Comments: comments[id],
			Shares:   shares[id],
			Liked:    liked[id],
		}
	}
	return counts
}

func (c *Client) fetchCountMap(ctx context.Context, wg *sync.WaitGroup, path string, ids []uint, dest *map[uint]int64) {
	defer wg.Done()
	var m map[uint]int64
	if err := c.do(ctx, http.MethodPost, path, batchIDs{IDs: ids}, &m); err == nil {
		*dest = m
	}
}
