package search

// Mode chế độ thực thi
type Mode int

const (
	// ModeSimple find + count độc lập, không kèm đánh giá
	ModeSimple Mode = iota
	// ModeFaceted một pipeline aggregate: join đánh giá, lọc điểm, sort, $facet trang + tổng
	ModeFaceted
)

func (m Mode) String() string {
	if m == ModeFaceted {
		return "faceted"
	}
	return "simple"
}

// Plan kế hoạch thực thi, dựng một lần từ input đã kiểm tra.
// Rating chỉ có nghĩa ở ModeFaceted.
type Plan struct {
	filter Filter
	mode   Mode
	rating RatingRange
	sort   SortMode
	page   Page
}

// NewPlan chọn FACETED khi cần thông tin đánh giá hoặc có khoảng điểm
func NewPlan(filter Filter, q Query) Plan {
	p := Plan{
		filter: filter,
		mode:   ModeSimple,
		sort:   SortNewest,
		page:   NewPage(q.Page, q.PageSize),
	}
	if q.IncludeRatings || !q.Rating.IsZero() {
		p.mode = ModeFaceted
		p.rating = q.Rating
		if q.Sort == SortRating {
			p.sort = SortRating
		}
	}
	return p
}

// Filter điều kiện lọc dùng chung
func (p Plan) Filter() Filter { return p.filter }

// Mode chế độ thực thi
func (p Plan) Mode() Mode { return p.mode }

// Rating khoảng điểm (rỗng ở ModeSimple)
func (p Plan) Rating() RatingRange { return p.rating }

// Sort thứ tự thực tế sẽ áp dụng
func (p Plan) Sort() SortMode { return p.sort }

// Page trang cần lấy
func (p Plan) Page() Page { return p.page }
