package service

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"

	"vehicle_analysis/internal/domain"
)

// RekognitionAPI là phần API của Rekognition client mà service này dùng.
type RekognitionAPI interface {
	DetectLabels(ctx context.Context, params *rekognition.DetectLabelsInput, optFns ...func(*rekognition.Options)) (*rekognition.DetectLabelsOutput, error)
	DetectText(ctx context.Context, params *rekognition.DetectTextInput, optFns ...func(*rekognition.Options)) (*rekognition.DetectTextOutput, error)
}

// RekognitionService là Recognition Adapter chạy trên AWS Rekognition,
// dùng DetectLabels để kiểm tra có xe trong ảnh không và DetectText + regex
// để trích xuất biển số. Cùng contract ba chiều với provider Gemini.
type RekognitionService struct {
	client RekognitionAPI
}

func NewRekognitionService(client RekognitionAPI) *RekognitionService {
	return &RekognitionService{client: client}
}

// Nhãn Rekognition được coi là "có xe".
var vehicleLabels = map[string]bool{
	"Vehicle":    true,
	"Car":        true,
	"Automobile": true,
	"Truck":      true,
	"Motorcycle": true,
	"Bus":        true,
	"Van":        true,
}

// Regex biển số: 2 chữ số + 1-2 chữ cái + 3-5 chữ số, cho phép '-' hoặc
// khoảng trắng ở giữa và phần thập phân kiểu 123.45.
var plateRegex = regexp.MustCompile(`^[0-9]{2}[A-Z]{1,2}[- ]?[0-9]{3,5}(\.[0-9]{2})?$`)

func (s *RekognitionService) AnalyzeImage(ctx context.Context, imageBytes []byte) (string, error) {
	if _, err := decodeImageFormat(imageBytes); err != nil {
		log.Printf("RekognitionService: ảnh không hợp lệ: %v", err)
		return "", err
	}

	image := &types.Image{Bytes: imageBytes}

	labelsOut, err := s.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         image,
		MaxLabels:     aws.Int32(20),
		MinConfidence: aws.Float32(55.0),
	})
	if err != nil {
		log.Printf("RekognitionService: lỗi DetectLabels: %v", err)
		return "", fmt.Errorf("%w: %v", ErrExternalService, err)
	}

	if !containsVehicleLabel(labelsOut.Labels) {
		return domain.SentinelNoVehicle, nil
	}

	textOut, err := s.client.DetectText(ctx, &rekognition.DetectTextInput{Image: image})
	if err != nil {
		log.Printf("RekognitionService: lỗi DetectText: %v", err)
		return "", fmt.Errorf("%w: %v", ErrExternalService, err)
	}

	plate, confidence := selectPlate(textOut.TextDetections)
	if plate == "" {
		log.Printf("RekognitionService: có xe nhưng không tìm thấy text khớp regex biển số (%d khối text)", len(textOut.TextDetections))
		return domain.SentinelPlateUnreadable, nil
	}

	log.Printf("RekognitionService: biển số được chọn: %q với độ tin cậy %.2f", plate, confidence)
	return plate, nil
}

func containsVehicleLabel(labels []types.Label) bool {
	for _, label := range labels {
		if label.Name != nil && vehicleLabels[*label.Name] {
			return true
		}
	}
	return false
}

// selectPlate chọn dòng text khớp regex biển số có confidence cao nhất.
// Biển số trả về đã bỏ khoảng trắng và dấu chấm.
func selectPlate(detections []types.TextDetection) (string, float32) {
	var best string
	var maxConfidence float32
	for _, d := range detections {
		if d.Type != types.TextTypesLine && d.Type != types.TextTypesWord {
			continue
		}
		if d.DetectedText == nil || d.Confidence == nil {
			continue
		}
		txt := strings.ToUpper(strings.ReplaceAll(*d.DetectedText, " ", ""))
		txt = strings.ReplaceAll(txt, ".", "")
		if plateRegex.MatchString(txt) && *d.Confidence > maxConfidence {
			maxConfidence = *d.Confidence
			best = txt
		}
	}
	return best, maxConfidence
}
