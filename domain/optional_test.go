package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalDistinguishesNullFromAbsent(t *testing.T) {
	var omitted UpdateRecipeRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &omitted))
	assert.False(t, omitted.CategoryID.Present)
	assert.False(t, omitted.ImageURL.Present)

	var cleared UpdateRecipeRequest
	require.NoError(t, json.Unmarshal([]byte(`{"category_id": null, "image_url": null}`), &cleared))
	assert.True(t, cleared.CategoryID.Present)
	assert.Nil(t, cleared.CategoryID.Value)
	assert.True(t, cleared.ImageURL.Present)
	assert.Nil(t, cleared.ImageURL.Value)
}

func TestOptionalDecodesValue(t *testing.T) {
	var req UpdateRecipeRequest
	require.NoError(t, json.Unmarshal([]byte(`{"category_id": 3, "image_url": "/uploads/soup.jpg"}`), &req))

	require.True(t, req.CategoryID.Present)
	require.NotNil(t, req.CategoryID.Value)
	assert.Equal(t, uint(3), *req.CategoryID.Value)
	require.NotNil(t, req.ImageURL.Value)
	assert.Equal(t, "/uploads/soup.jpg", *req.ImageURL.Value)
}

func TestOptionalMarshalRoundTrip(t *testing.T) {
	value := uint(3)
	set, err := json.Marshal(Optional[uint]{Present: true, Value: &value})
	require.NoError(t, err)
	assert.Equal(t, `3`, string(set))

	null, err := json.Marshal(Optional[uint]{Present: true})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(null))
}
