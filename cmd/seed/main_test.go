package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/location-search/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSeedFileAndBuildDocuments(t *testing.T) {
	seed, err := readSeedFile(filepath.Join("testdata", "demo.yaml"))
	require.NoError(t, err)

	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	provinces, categories, locations, reviews, err := buildDocuments(seed, now)
	require.NoError(t, err)

	assert.Len(t, provinces, 3)
	assert.Len(t, categories, 3)
	assert.Len(t, locations, 3)
	assert.Len(t, reviews, 3)

	root := categories[0].(models.Category)
	child := categories[1].(models.Category)
	assert.True(t, root.IsRoot())
	require.NotNil(t, child.ParentID)
	assert.Equal(t, root.ID, *child.ParentID)

	first := locations[0].(models.Location)
	assert.Equal(t, models.LocationStatusApproved, first.Status)
	assert.Equal(t, now.AddDate(0, 0, -2), first.CreatedAt)
	assert.Equal(t, first.ID, reviews[0].(models.Review).LocationID)

	// thứ tự ObjectID theo thứ tự file
	assert.Less(t, provinces[0].(models.Province).ID.Hex(), provinces[1].(models.Province).ID.Hex())
}

func TestBuildDocuments_UnknownParent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories:\n  - name: Hải sản\n    parent: Không có\n"), 0o600))

	seed, err := readSeedFile(path)
	require.NoError(t, err)
	_, _, _, _, err = buildDocuments(seed, time.Now())
	assert.Error(t, err)
}

func TestBuildDocuments_InvalidRating(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("locations:\n  - name: A\n    ratings: [6]\n"), 0o600))

	seed, err := readSeedFile(path)
	require.NoError(t, err)
	_, _, _, _, err = buildDocuments(seed, time.Now())
	assert.Error(t, err)
}
