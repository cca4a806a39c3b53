package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"vehicle_analysis/internal/config"
)

// GeminiRecognitionService gọi Google Gemini để đọc biển số từ ảnh.
type GeminiRecognitionService struct {
	client    *genai.Client
	modelName string
}

func NewGeminiRecognitionService(ctx context.Context, cfg *config.Config) (*GeminiRecognitionService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GoogleAPIKey))
	if err != nil {
		return nil, fmt.Errorf("lỗi khởi tạo Gemini client: %w", err)
	}
	return &GeminiRecognitionService{
		client:    client,
		modelName: cfg.GeminiModel,
	}, nil
}

func (s *GeminiRecognitionService) Close() error {
	return s.client.Close()
}

// AnalyzeImage gửi prompt cố định + ảnh lên Gemini và trả về text đã trim.
// Mọi lỗi gọi model được log chi tiết server-side và wrap thành ErrExternalService.
func (s *GeminiRecognitionService) AnalyzeImage(ctx context.Context, imageBytes []byte) (string, error) {
	format, err := decodeImageFormat(imageBytes)
	if err != nil {
		log.Printf("GeminiRecognitionService: ảnh không hợp lệ: %v", err)
		return "", err
	}

	model := s.client.GenerativeModel(s.modelName)
	resp, err := model.GenerateContent(ctx,
		genai.Text(recognitionPrompt),
		genai.ImageData(format, imageBytes),
	)
	if err != nil {
		log.Printf("GeminiRecognitionService: lỗi gọi model %s: %v", s.modelName, err)
		return "", fmt.Errorf("%w: %v", ErrExternalService, err)
	}

	text, err := extractText(resp)
	if err != nil {
		log.Printf("GeminiRecognitionService: response không có text: %v", err)
		return "", fmt.Errorf("%w: %v", ErrExternalService, err)
	}
	return strings.TrimSpace(text), nil
}

// extractText ghép các text part trong candidate đầu tiên của response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("response rỗng từ model")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("candidate không chứa text part nào")
	}
	return sb.String(), nil
}
