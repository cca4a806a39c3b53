package handler

import (
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vehicle_analysis/internal/domain"
	"vehicle_analysis/internal/service"
)

type AnalysisHandler struct {
	recognizer service.PlateRecognizer
	wsManager  *WebSocketManager // optional, có thể nil
}

func NewAnalysisHandler(recognizer service.PlateRecognizer, wsManager *WebSocketManager) *AnalysisHandler {
	return &AnalysisHandler{recognizer: recognizer, wsManager: wsManager}
}

// POST /analyze
// Nhận file ảnh qua multipart field "image", gửi cho Recognition Adapter và
// phân loại reply thành SUCCESS / NO_VEHICLE / PLATE_UNREADABLE.
func (h *AnalysisHandler) HandleAnalysisRequest(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Thiếu file ảnh trong form field 'image': " + err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("AnalysisHandler: lỗi mở file upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An internal error occurred during image analysis."})
		return
	}
	defer file.Close()

	imageBytes, err := io.ReadAll(file)
	if err != nil {
		log.Printf("AnalysisHandler: lỗi đọc file upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An internal error occurred during image analysis."})
		return
	}
	log.Printf("AnalysisHandler: đã nhận %d bytes ảnh để phân tích.", len(imageBytes))

	reply, err := h.recognizer.AnalyzeImage(c.Request.Context(), imageBytes)
	if err != nil {
		// Decode error và external-service error đều trả 500 generic;
		// chi tiết chỉ nằm trong log server-side.
		switch {
		case errors.Is(err, service.ErrImageDecode):
			log.Printf("AnalysisHandler: ảnh không decode được: %v", err)
		default:
			log.Printf("AnalysisHandler: lỗi từ Recognition Adapter: %v", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An internal error occurred during image analysis."})
		return
	}

	response := domain.ClassifyReply(reply)

	if h.wsManager != nil {
		h.wsManager.BroadcastAnalysis(domain.AnalysisNotification{
			Code:          response.Code,
			VehicleNumber: response.VehicleNumber,
			ImageSize:     len(imageBytes),
			Timestamp:     time.Now().UTC(),
		})
	}

	c.JSON(http.StatusOK, response)
}

// GET /
func (h *AnalysisHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "Vehicle Analysis API is running."})
}
