package search

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/location-search/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeLookup struct {
	categories []models.Category
	err        error
}

func (f *fakeLookup) FindByName(_ context.Context, name string) (*models.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.categories {
		if strings.EqualFold(f.categories[i].Name, name) {
			c := f.categories[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeLookup) FindChildren(_ context.Context, parentID primitive.ObjectID) ([]models.Category, error) {
	var out []models.Category
	for _, c := range f.categories {
		if c.ParentID != nil && *c.ParentID == parentID {
			out = append(out, c)
		}
	}
	return out, nil
}

func TestCategoryExpander_Expand(t *testing.T) {
	food := primitive.NewObjectID()
	seafood := primitive.NewObjectID()
	lookup := &fakeLookup{categories: []models.Category{
		{ID: food, Name: "Ẩm thực"},
		{ID: seafood, Name: "Hải sản", ParentID: &food},
		{ID: primitive.NewObjectID(), Name: "Cafe", ParentID: &food},
		{ID: primitive.NewObjectID(), Name: "Tôm hùm", ParentID: &seafood},
	}}
	ce := NewCategoryExpander(lookup)
	ctx := context.Background()

	t.Run("parent with children", func(t *testing.T) {
		got, err := ce.Expand(ctx, "Ẩm thực")
		require.NoError(t, err)
		assert.Equal(t, []string{"Ẩm thực", "Hải sản", "Cafe"}, got)
	})

	t.Run("one level only", func(t *testing.T) {
		got, err := ce.Expand(ctx, "Hải sản")
		require.NoError(t, err)
		assert.Equal(t, []string{"Hải sản", "Tôm hùm"}, got)
	})

	t.Run("leaf", func(t *testing.T) {
		got, err := ce.Expand(ctx, "Cafe")
		require.NoError(t, err)
		assert.Equal(t, []string{"Cafe"}, got)
	})

	t.Run("unknown name falls back", func(t *testing.T) {
		got, err := ce.Expand(ctx, "Không có")
		require.NoError(t, err)
		assert.Equal(t, []string{"Không có"}, got)
	})

	t.Run("empty", func(t *testing.T) {
		got, err := ce.Expand(ctx, "")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestCategoryExpander_LookupError(t *testing.T) {
	ce := NewCategoryExpander(&fakeLookup{err: errors.New("boom")})
	_, err := ce.Expand(context.Background(), "Ẩm thực")
	assert.Error(t, err)
}
