package api

import "context"

// SRS batch endpoints. Scheduling lives entirely on the backend; the client
// fetches a ready-made batch and reports accuracy through the checker
// endpoints as the session progresses.

// LessonBatch fetches the characters due for first-time learning.
func (c *Client) LessonBatch(ctx context.Context) ([]CharacterDetail, error) {
	var out []CharacterDetail
	if err := c.get(ctx, "/api/v1/srs/lesson-batch", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ReviewBatch fetches the characters due for review.
func (c *Client) ReviewBatch(ctx context.Context) ([]CharacterDetail, error) {
	var out []CharacterDetail
	if err := c.get(ctx, "/api/v1/srs/review-batch", &out); err != nil {
		return nil, err
	}
	return out, nil
}
