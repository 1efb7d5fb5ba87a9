package api

import (
	"context"
	"time"
)

// ActivityStats is the aggregate view shown on the profile dashboard.
type ActivityStats struct {
	TotalAttempts   int     `json:"totalAttempts"`
	TotalLearned    int     `json:"totalLearned"`
	TotalReviews    int     `json:"totalReviews"`
	AverageAccuracy float64 `json:"averageAccuracy"`
	CurrentStreak   int     `json:"currentStreak"`
	LongestStreak   int     `json:"longestStreak"`
}

// ActivityDay is one day of practice history.
type ActivityDay struct {
	Date     string            `json:"date"`
	Attempts []ActivitySummary `json:"attempts"`
}

// ActivitySummary is one attempt row in a day's history.
type ActivitySummary struct {
	UUID      string    `json:"uuid"`
	Character string    `json:"character"`
	Kind      string    `json:"kind"`
	Score     int       `json:"score"`
	Timestamp time.Time `json:"timestamp"`
}

// ActivityDetail is the full record of one attempt.
type ActivityDetail struct {
	ActivitySummary
	StrokeAccuracies []float64      `json:"strokeAccuracies"`
	UserStrokes      [][][2]float64 `json:"userStrokes"`
}

// ActivityStats fetches the aggregate dashboard numbers.
func (c *Client) ActivityStats(ctx context.Context) (*ActivityStats, error) {
	var out ActivityStats
	if err := c.get(ctx, "/api/v1/activity/stats", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ActivityHistory fetches the attempts of one day (YYYY-MM-DD).
func (c *Client) ActivityHistory(ctx context.Context, date string) (*ActivityDay, error) {
	var out ActivityDay
	if err := c.get(ctx, "/api/v1/activity/history/"+date, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ActivityDetail fetches the full record of one attempt.
func (c *Client) ActivityDetail(ctx context.Context, uuid string) (*ActivityDetail, error) {
	var out ActivityDetail
	if err := c.get(ctx, "/api/v1/activity/"+uuid, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
