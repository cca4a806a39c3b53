package service

import "errors"

// Lỗi của Recognition Adapter. Handler chỉ trả về 500 generic cho cả hai,
// nhưng caller/test có thể phân biệt nguyên nhân bằng errors.Is.
var (
	ErrImageDecode     = errors.New("dữ liệu ảnh không decode được")
	ErrExternalService = errors.New("gọi dịch vụ nhận dạng bên ngoài thất bại")
)
