package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func lookupE(d bson.D, key string) (interface{}, bool) {
	for _, e := range d {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

func TestFilter_StatusAlwaysApproved(t *testing.T) {
	for _, f := range []Filter{
		Compile("", "", nil),
		Compile("hai san", "Đà Nẵng", []string{"Ẩm thực"}),
	} {
		v, ok := lookupE(f.BSON(), "status")
		assert.True(t, ok)
		assert.Equal(t, "approved", v)
	}
}

func TestFilter_EmptyPredicatesOmitted(t *testing.T) {
	doc := Compile("", "", nil).BSON()
	assert.Len(t, doc, 1)
}

func TestFilter_FullPredicates(t *testing.T) {
	f := Compile("a.b", "Đà Nẵng", []string{"Ẩm thực", "Hải sản"})
	doc := f.BSON()
	assert.Len(t, doc, 4)

	name, ok := lookupE(doc, "name")
	assert.True(t, ok)
	assert.Equal(t, primitive.Regex{Pattern: `a\.b`, Options: "i"}, name)

	cat, ok := lookupE(doc, "category")
	assert.True(t, ok)
	assert.Equal(t, bson.D{{Key: "$in", Value: []string{"Ẩm thực", "Hải sản"}}}, cat)

	prov, ok := lookupE(doc, "province")
	assert.True(t, ok)
	assert.Equal(t, primitive.Regex{Pattern: "Đà Nẵng", Options: "i"}, prov)
}

func TestFilter_Immutable(t *testing.T) {
	cats := []string{"Ẩm thực"}
	f := Compile("", "", cats)
	cats[0] = "changed"
	assert.Equal(t, []string{"Ẩm thực"}, f.Categories())

	got := f.Categories()
	got[0] = "changed"
	assert.Equal(t, []string{"Ẩm thực"}, f.Categories())
}
