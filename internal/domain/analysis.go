package domain

import "time"

type AnalysisCode string

const (
	CodeSuccess         AnalysisCode = "SUCCESS"
	CodeNoVehicle       AnalysisCode = "NO_VEHICLE"
	CodePlateUnreadable AnalysisCode = "PLATE_UNREADABLE"
)

// Hai sentinel mà model được yêu cầu trả về thay cho biển số.
// So sánh exact, case-sensitive.
const (
	SentinelNoVehicle       = "NO_VEHICLE_FOUND"
	SentinelPlateUnreadable = "PLATE_UNREADABLE"
)

const (
	MessageSuccess         = "Successfully extracted vehicle number."
	MessageNoVehicle       = "The uploaded image does not appear to contain a vehicle."
	MessagePlateUnreadable = "A vehicle was found, but the license plate could not be read."
)

// AnalysisResponseDTO - body JSON trả về cho client của POST /analyze
type AnalysisResponseDTO struct {
	Code          AnalysisCode `json:"code"`
	Message       string       `json:"message"`
	VehicleNumber string       `json:"vehicle_number,omitempty"`
}

// ClassifyReply áp dụng luật phân loại ba chiều lên reply đã trim của model.
// Text khác hai sentinel được coi là biển số, giữ nguyên byte-for-byte.
func ClassifyReply(reply string) AnalysisResponseDTO {
	switch reply {
	case SentinelNoVehicle:
		return AnalysisResponseDTO{Code: CodeNoVehicle, Message: MessageNoVehicle}
	case SentinelPlateUnreadable:
		return AnalysisResponseDTO{Code: CodePlateUnreadable, Message: MessagePlateUnreadable}
	default:
		return AnalysisResponseDTO{Code: CodeSuccess, Message: MessageSuccess, VehicleNumber: reply}
	}
}

// AnalysisNotification - event gửi đến các client đang theo dõi qua WebSocket
// sau mỗi lần phân tích hoàn tất.
type AnalysisNotification struct {
	Code          AnalysisCode `json:"code"`
	VehicleNumber string       `json:"vehicle_number,omitempty"`
	ImageSize     int          `json:"image_size"`
	Timestamp     time.Time    `json:"timestamp"`
}
