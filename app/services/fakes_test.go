package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/location-search/app/models"
	"github.com/location-search/internal/parser"
	"github.com/location-search/internal/search"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errBoom = errors.New("connection reset by peer")

// fakeSource nguồn từ điển trong bộ nhớ
type fakeSource struct {
	provinces  []string
	categories []string
	err        error
	calls      atomic.Int32
}

func (f *fakeSource) ListActiveProvinces(ctx context.Context) ([]string, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return append([]string(nil), f.provinces...), nil
}

func (f *fakeSource) ListActiveCategories(ctx context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]string(nil), f.categories...), nil
}

// fakeDirectory cây danh mục trong bộ nhớ
type fakeDirectory struct {
	categories []models.Category
	err        error
}

func (f *fakeDirectory) add(name string, parent *models.Category) *models.Category {
	c := models.Category{ID: primitive.NewObjectID(), Name: name, Status: models.StatusActive}
	if parent != nil {
		id := parent.ID
		c.ParentID = &id
	}
	f.categories = append(f.categories, c)
	return &f.categories[len(f.categories)-1]
}

func (f *fakeDirectory) FindByName(ctx context.Context, name string) (*models.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.categories {
		if strings.EqualFold(c.Name, name) {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeDirectory) FindChildren(ctx context.Context, parentID primitive.ObjectID) ([]models.Category, error) {
	var out []models.Category
	for _, c := range f.categories {
		if c.ParentID != nil && *c.ParentID == parentID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeDirectory) ParentNames(ctx context.Context, names []string) (map[string]string, error) {
	out := make(map[string]string)
	for _, n := range names {
		for _, c := range f.categories {
			if c.Name != n || c.IsRoot() {
				continue
			}
			for _, p := range f.categories {
				if p.ID == *c.ParentID {
					out[n] = p.Name
				}
			}
		}
	}
	return out, nil
}

// memStore đánh giá Plan trên dữ liệu trong bộ nhớ, cùng ngữ nghĩa với pipeline MongoDB
type memStore struct {
	locations []models.Location
	ratings   map[primitive.ObjectID][]int
	err       error
	lastPlan  search.Plan
}

func (m *memStore) Execute(ctx context.Context, plan search.Plan) (search.ResultSet, error) {
	m.lastPlan = plan
	if m.err != nil {
		return search.ResultSet{}, m.err
	}

	f := plan.Filter()
	var matched []models.Location
	for _, loc := range m.locations {
		if loc.Status != f.Status() {
			continue
		}
		if f.Keyword() != "" && !containsFold(loc.Name, f.Keyword()) {
			continue
		}
		if f.Province() != "" && !containsFold(loc.Province, f.Province()) {
			continue
		}
		if cats := f.Categories(); len(cats) > 0 && !contains(cats, loc.Category) {
			continue
		}
		if plan.Mode() == search.ModeFaceted {
			avg, count := m.rating(loc.ID)
			if !plan.Rating().Contains(avg) {
				continue
			}
			loc.RatingAvg, loc.RatingCount = &avg, &count
		}
		loc.Status = ""
		matched = append(matched, loc)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if plan.Sort() == search.SortRating {
			if *a.RatingAvg != *b.RatingAvg {
				return *a.RatingAvg > *b.RatingAvg
			}
			if *a.RatingCount != *b.RatingCount {
				return *a.RatingCount > *b.RatingCount
			}
		} else if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID.Hex() > b.ID.Hex()
	})

	total := int64(len(matched))
	skip, limit := plan.Page().Skip(), plan.Page().Limit()
	items := []models.Location{}
	for i := skip; i < total && i < skip+limit; i++ {
		items = append(items, matched[i])
	}
	return search.ResultSet{Items: items, Total: total}, nil
}

func (m *memStore) rating(id primitive.ObjectID) (float64, int) {
	rs := m.ratings[id]
	if len(rs) == 0 {
		return 0, 0
	}
	sum := 0
	for _, r := range rs {
		sum += r
	}
	return float64(sum) / float64(len(rs)), len(rs)
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// staticLoader trả về nguyên ảnh chụp cho trước
type staticLoader struct {
	dict *parser.Dictionaries
	err  error
}

func (s staticLoader) Load(ctx context.Context) (*parser.Dictionaries, error) {
	return s.dict, s.err
}
