package pkg

import "github.com/google/uuid"

// NewID 生成 UUIDv7：随机且在进程内按时间单调递增，可直接作为排序的次要键
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
