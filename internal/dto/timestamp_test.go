package dto

import (
	"Social_Feed/internal/model"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_MarshalDropsFractionAndZone(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	ts := NewTimestamp(time.Date(2025, 6, 1, 18, 30, 15, 987654321, loc))

	b, err := json.Marshal(struct {
		At Timestamp `json:"at"`
	}{At: ts})
	require.NoError(t, err)
	assert.JSONEq(t, `{"at":"2025-06-01T10:30:15"}`, string(b))
}

func TestTimestamp_Unmarshal(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"2025-06-01T10:30:00"`), &ts))
	assert.Equal(t, time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC), ts.Time())

	assert.Error(t, json.Unmarshal([]byte(`"2025-06-01 10:30:00"`), &ts))
}

func TestPostFromModel_CarriesCounts(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	p := PostFromModel(&model.PostWithCounts{
		Post:          model.Post{ID: "p1", Username: "alice", Content: "hi", CreatedAt: now, UpdatedAt: now},
		LikesCount:    2,
		CommentsCount: 3,
	})

	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"p1","username":"alice","content":"hi","createdAt":"2025-06-01T10:30:00","updatedAt":"2025-06-01T10:30:00","likesCount":2,"commentsCount":3}`, string(b))
}
