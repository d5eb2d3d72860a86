package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCandidate(t *testing.T) {
	created := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	cand := &Candidate{
		Name:         "acme/agent-kit",
		URL:          "https://github.com/acme/agent-kit",
		Description:  "Pre-seed agent infrastructure MVP",
		Language:     "Python",
		Stars:        42,
		Forks:        3,
		CreatedAt:    created,
		Archived:     false,
		Fork:         false,
		Contributors: 2,
		HasSponsors:  true,
		KeywordHits:  2,
		Score:        0,
	}

	assert.Equal(t, "acme/agent-kit", cand.Name)
	assert.Equal(t, "https://github.com/acme/agent-kit", cand.URL)
	assert.Equal(t, "Pre-seed agent infrastructure MVP", cand.Description)
	assert.Equal(t, "Python", cand.Language)
	assert.Equal(t, 42, cand.Stars)
	assert.Equal(t, 3, cand.Forks)
	assert.Equal(t, created, cand.CreatedAt)
	assert.False(t, cand.Archived)
	assert.False(t, cand.Fork)
	assert.Equal(t, 2, cand.Contributors)
	assert.True(t, cand.HasSponsors)
	assert.Equal(t, 2, cand.KeywordHits)
	assert.Equal(t, 0, cand.Score)
}

func TestCandidate_AgeDays(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		createdAt time.Time
		expected  int
	}{
		{
			name:      "今天刚创建",
			createdAt: now.Add(-2 * time.Hour),
			expected:  0,
		},
		{
			name:      "一周前创建",
			createdAt: now.AddDate(0, 0, -7),
			expected:  7,
		},
		{
			name:      "半年前创建",
			createdAt: now.AddDate(0, 0, -180),
			expected:  180,
		},
		{
			name:      "刚好一年前创建",
			createdAt: now.AddDate(0, 0, -365),
			expected:  365,
		},
		{
			name:      "创建时间在未来 (时钟偏差) 按 0 算",
			createdAt: now.Add(3 * time.Hour),
			expected:  0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			cand := &Candidate{CreatedAt: tt.createdAt}
			assert.Equal(t, tt.expected, cand.AgeDays(now))
		})
	}
}
