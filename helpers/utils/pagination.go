package utils

// TotalPages ceil(total / pageSize); 0 khi không có kết quả
func TotalPages(total int64, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	size := int64(pageSize)
	return int((total + size - 1) / size)
}

// ClampInt giới hạn v trong [min, max]; max <= 0 nghĩa là không giới hạn trên
func ClampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if max > 0 && v > max {
		return max
	}
	return v
}
