package usecase

import (
	"context"

	"github.com/shopspring/decimal"
)

// BankUseCase 是核心業務邏輯層
type BankUseCase struct {
	ledger Ledger
}

func NewBankUseCase(ledger Ledger) *BankUseCase {
	return &BankUseCase{
		ledger: ledger,
	}
}

// AddAccountType 註冊帳戶類型
func (b *BankUseCase) AddAccountType(ctx context.Context, name string, interestRate decimal.Decimal) error {
	return b.ledger.AddAccountType(ctx, name, interestRate)
}

// OpenAccount 開戶
func (b *BankUseCase) OpenAccount(ctx context.Context, accountType string) (string, error) {
	return b.ledger.OpenAccount(ctx, accountType)
}

// GetBalance 取得帳戶餘額
func (b *BankUseCase) GetBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	return b.ledger.GetBalance(ctx, accountID)
}

// GetInterestRate 取得帳戶利率
func (b *BankUseCase) GetInterestRate(ctx context.Context, accountID string) (decimal.Decimal, error) {
	return b.ledger.GetInterestRate(ctx, accountID)
}

// Deposit 存款
func (b *BankUseCase) Deposit(ctx context.Context, accountID string, amount decimal.Decimal) error {
	return b.ledger.Deposit(ctx, accountID, amount)
}

// Withdraw 提款
func (b *BankUseCase) Withdraw(ctx context.Context, accountID string, amount decimal.Decimal) error {
	return b.ledger.Withdraw(ctx, accountID, amount)
}

// Transfer 轉帳
func (b *BankUseCase) Transfer(ctx context.Context, fromID, toID string, amount decimal.Decimal) error {
	return b.ledger.Transfer(ctx, fromID, toID, amount)
}

// AccrueInterest 對所有帳戶計息
func (b *BankUseCase) AccrueInterest(ctx context.Context) (int, error) {
	return b.ledger.AccrueInterest(ctx)
}
