package main

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	grpcpool "github.com/JoeShih716/go-mem-bank/pkg/grpc"
	pb "github.com/JoeShih716/go-mem-bank/proto"
)

const (
	Target      = "localhost:50051"
	TotalCount  = 100000
	Concurrency = 100
)

func main() {
	pool := grpcpool.NewPool()
	defer pool.Close()

	conn, err := pool.GetConnection(Target)
	if err != nil {
		log.Fatalf("did not connect: %v", err)
	}
	c := pb.NewBankServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	// 1. 準備測試用的帳戶類型與兩個帳戶
	// 類型可能已由 server 的設定檔註冊，AlreadyExists 不視為失敗
	if _, err := c.AddAccountType(ctx, &pb.AddAccountTypeRequest{
		Name:         "Savings",
		InterestRate: "5",
	}); err != nil {
		log.Printf("AddAccountType: %v (continuing)", err)
	}

	fromID := openAccount(ctx, c)
	toID := openAccount(ctx, c)
	log.Printf("Opened accounts %s and %s", fromID, toID)

	// 2. 入金，讓轉帳測試有餘額可轉
	refID := uuid.New().String()
	resp, err := c.Transfer(ctx, &pb.TransferRequest{
		RefId:       refID,
		Type:        pb.TransactionType_DEPOSIT,
		ToAccountId: fromID,
		Amount:      fmt.Sprintf("%d.00", TotalCount),
	})
	if err != nil || !resp.Success {
		log.Fatalf("seed deposit failed: err=%v resp=%+v", err, resp)
	}

	// 3. 併發轉帳
	var wg sync.WaitGroup
	wg.Add(TotalCount)

	sem := make(chan struct{}, Concurrency)

	startTime := time.Now()

	for i := 0; i < TotalCount; i++ {
		sem <- struct{}{}

		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			refID := uuid.New().String()
			resp, err := c.Transfer(ctx, &pb.TransferRequest{
				RefId:         refID,
				Type:          pb.TransactionType_TRANSFER,
				FromAccountId: fromID,
				ToAccountId:   toID,
				Amount:        "1.00",
			})

			if err != nil || (resp != nil && !resp.Success) {
				if idx%10000 == 0 {
					log.Printf("Transfer %d failed: err=%v resp=%+v", idx, err, resp)
				}
			}
		}(i)
	}

	wg.Wait()

	elapsed := time.Since(startTime)
	fmt.Printf("Completed %d requests in %v\n", TotalCount, elapsed)
	fmt.Printf("TPS: %.2f\n", float64(TotalCount)/elapsed.Seconds())

	// 4. 驗證餘額
	for _, id := range []string{fromID, toID} {
		balance, err := c.GetBalance(ctx, &pb.GetBalanceRequest{AccountId: id})
		if err != nil {
			log.Fatalf("GetBalance(%s) failed: %v", id, err)
		}
		fmt.Printf("Account %s balance: %s\n", id, balance.Balance)
	}
}

func openAccount(ctx context.Context, c pb.BankServiceClient) string {
	resp, err := c.OpenAccount(ctx, &pb.OpenAccountRequest{AccountType: "Savings"})
	if err != nil {
		log.Fatalf("OpenAccount failed: %v", err)
	}
	return resp.AccountId
}
