package services

import "errors"

// ErrUpstreamFailure lỗi từ kho dữ liệu hoặc từ điển. Nguyên nhân chỉ được ghi log,
// client chỉ nhận lỗi chung.
var ErrUpstreamFailure = errors.New("dịch vụ dữ liệu tạm thời không khả dụng")
