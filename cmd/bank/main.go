package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
	"gopkg.in/yaml.v3"

	grpc_adapter "github.com/JoeShih716/go-mem-bank/internal/app/bank/adapter/in/grpc"
	memory_adapter "github.com/JoeShih716/go-mem-bank/internal/app/bank/adapter/out/memory"
	"github.com/JoeShih716/go-mem-bank/internal/app/bank/usecase"
	pb "github.com/JoeShih716/go-mem-bank/proto"
)

type AccountTypeConfig struct {
	Name         string `yaml:"name"`
	InterestRate string `yaml:"interest_rate"`
}

type Config struct {
	Listen       string              `yaml:"listen"`
	AccountTypes []AccountTypeConfig `yaml:"account_types"`
}

func main() {
	// 1. 載入設定
	cfg := loadConfig()

	// 2. 初始化 In-Memory Ledger
	ledger := memory_adapter.NewMutexLedger()

	// 3. 預先註冊設定檔中的帳戶類型
	ctx := context.Background()
	for _, at := range cfg.AccountTypes {
		rate, err := decimal.NewFromString(at.InterestRate)
		if err != nil {
			log.Fatalf("Invalid interest rate for account type %q: %v", at.Name, err)
		}
		if err := ledger.AddAccountType(ctx, at.Name, rate); err != nil {
			log.Fatalf("Failed to add account type %q: %v", at.Name, err)
		}
	}
	log.Printf("Registered %d account types", len(cfg.AccountTypes))

	// 4. 初始化 UseCase
	bankUseCase := usecase.NewBankUseCase(ledger)

	// 5. 初始化 gRPC Adapter (Driving Adapter)
	grpcServer := grpc_adapter.NewGrpcServer(bankUseCase)

	// 6. 啟動 gRPC Server
	lis, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	s := grpc.NewServer()
	pb.RegisterBankServiceServer(s, grpcServer)
	reflection.Register(s) // 方便 gRPC Client 測試 (如 Postman/BloomRPC)

	// Graceful Shutdown
	go func() {
		log.Printf("Starting gRPC server on %s", cfg.Listen)
		if err := s.Serve(lis); err != nil {
			log.Fatalf("failed to serve: %v", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	s.GracefulStop()
	log.Println("Server exited")
}

func loadConfig() Config {
	cfgData, err := os.ReadFile("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(cfgData, &cfg); err != nil {
		log.Fatalf("Failed to parse config: %v", err)
	}

	// 補全預設配置 (如果 yaml 沒寫)
	if cfg.Listen == "" {
		cfg.Listen = ":50051"
	}
	return cfg
}
