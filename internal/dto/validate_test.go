package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_CollectsAllFields(t *testing.T) {
	v := NewValidator()

	err := v.ValidateStruct(&CreatePostReq{Username: "", Content: "   "})
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"Username is required", "Content is required"}, verr.Details)
}

func TestValidator_LengthBounds(t *testing.T) {
	v := NewValidator()

	err := v.ValidateStruct(&CreateCommentReq{Username: strings.Repeat("u", 51), Content: strings.Repeat("c", 1001)})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{
		"Username must be between 1 and 50 characters",
		"Content must be between 1 and 1000 characters",
	}, verr.Details)
}

func TestValidator_CountsRunesNotBytes(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateStruct(&LikeReq{Username: strings.Repeat("é", 50)}))
	assert.NoError(t, v.ValidateStruct(&UpdatePostReq{Username: "alice", Content: strings.Repeat("x", 2000)}))
	assert.Error(t, v.ValidateStruct(&UpdatePostReq{Username: "alice", Content: strings.Repeat("x", 2001)}))
}

func TestValidator_IgnoresNonStructs(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateStruct(nil))
	assert.NoError(t, v.ValidateStruct(map[string]string{"username": ""}))
	assert.NotNil(t, v.Engine())
}
