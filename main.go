package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsgo_config "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"

	"vehicle_analysis/internal/api"
	"vehicle_analysis/internal/api/handler"
	"vehicle_analysis/internal/config"
	"vehicle_analysis/internal/service"
)

func main() {
	// 1. Load Configuration - credential thiếu thì dừng ngay tại đây
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Lỗi cấu hình: %v", err)
	}
	log.Println("Cấu hình đã được tải. Provider:", cfg.Provider)

	// 2. Khởi tạo Recognition Adapter theo provider đã cấu hình
	var recognizer service.PlateRecognizer
	var closeRecognizer func() error

	switch cfg.Provider {
	case config.ProviderGemini:
		geminiService, err := service.NewGeminiRecognitionService(context.Background(), cfg)
		if err != nil {
			log.Fatalf("Không thể khởi tạo Gemini client: %v", err)
		}
		recognizer = geminiService
		closeRecognizer = geminiService.Close
		log.Println("Đã khởi tạo Gemini client với model:", cfg.GeminiModel)

	case config.ProviderRekognition:
		awsSDKCfg, err := awsgo_config.LoadDefaultConfig(context.Background(), awsgo_config.WithRegion(cfg.AWSRegion))
		if err != nil {
			log.Fatalf("Không thể tải AWS SDK config: %v", err)
		}
		recognizer = service.NewRekognitionService(rekognition.NewFromConfig(awsSDKCfg))
		log.Println("Đã khởi tạo Rekognition client cho region:", cfg.AWSRegion)
	}

	// 3. Khởi động WebSocket manager cho feed kết quả phân tích
	webSocketManager := handler.NewWebSocketManager()
	go webSocketManager.Start()
	log.Println("WebSocket Manager đã được khởi động.")

	// 4. Setup HTTP Router
	router := api.SetupRouter(recognizer, webSocketManager)

	// 5. Start HTTP Server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server đang chạy trên port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Lỗi ListenAndServe(): %v", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Đang tắt server...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server buộc phải tắt: %v", err)
	}

	if closeRecognizer != nil {
		if err := closeRecognizer(); err != nil {
			log.Printf("Lỗi đóng recognition client: %v", err)
		}
	}

	log.Println("Server đã tắt.")
}
