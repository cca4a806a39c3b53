package service

import (
	"bytes"
	"context"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// PlateRecognizer là Recognition Adapter: nhận ảnh thô, trả về text đã trim
// từ model - hoặc biển số, hoặc một trong hai sentinel.
type PlateRecognizer interface {
	AnalyzeImage(ctx context.Context, imageBytes []byte) (string, error)
}

// recognitionPrompt là prompt cố định gửi kèm mọi ảnh, định nghĩa contract
// ba chiều: biển số | NO_VEHICLE_FOUND | PLATE_UNREADABLE.
const recognitionPrompt = `Analyze the provided image. Your primary task is to identify and extract a vehicle's registration number from its license plate.

Follow these rules strictly:
1. If you find a clear license plate, provide ONLY the extracted registration number in a machine-readable format (e.g., MH12AB3456). Do not add any extra words.
2. If the image does not contain a vehicle, respond with the exact text: NO_VEHICLE_FOUND
3. If the image contains a vehicle but the license plate is not visible or is unreadable, respond with the exact text: PLATE_UNREADABLE`

// decodeImageFormat kiểm tra bytes có phải ảnh hợp lệ không (JPEG/PNG/GIF)
// và trả về tên format để gửi kèm request đến model.
func decodeImageFormat(imageBytes []byte) (string, error) {
	if len(imageBytes) == 0 {
		return "", fmt.Errorf("%w: ảnh rỗng", ErrImageDecode)
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(imageBytes))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrImageDecode, err)
	}
	return format, nil
}
