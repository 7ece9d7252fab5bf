package usecase

import (
	"context"

	"github.com/shopspring/decimal"
)

// Ledger 是銀行帳本的介面
type Ledger interface {
	// AddAccountType 註冊帳戶類型，名稱不可重複且利率必須大於 0
	AddAccountType(ctx context.Context, name string, interestRate decimal.Decimal) error
	// OpenAccount 以指定類型開戶，回傳 10 位數帳號
	OpenAccount(ctx context.Context, accountType string) (string, error)
	// GetBalance 取得帳戶餘額
	GetBalance(ctx context.Context, accountID string) (decimal.Decimal, error)
	// GetInterestRate 取得帳戶利率
	GetInterestRate(ctx context.Context, accountID string) (decimal.Decimal, error)
	// Deposit 存款
	Deposit(ctx context.Context, accountID string, amount decimal.Decimal) error
	// Withdraw 提款
	Withdraw(ctx context.Context, accountID string, amount decimal.Decimal) error
	// Transfer 轉帳，任一檢核失敗時兩邊餘額都不會變動
	Transfer(ctx context.Context, fromID, toID string, amount decimal.Decimal) error
	// AccrueInterest 對所有帳戶計一個月的複利，回傳處理的帳戶數
	AccrueInterest(ctx context.Context) (int, error)
}
