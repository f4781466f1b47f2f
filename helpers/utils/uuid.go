package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateUUID tạo UUID v4
func GenerateUUID() string {
	return uuid.NewString()
}

// GenerateShortID tạo ID ngắn (8 ký tự)
func GenerateShortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// IsValidRequestID chấp nhận request ID từ client nếu là UUID hợp lệ
func IsValidRequestID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
