package memory

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-mem-bank/internal/app/bank/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/bank/usecase"
)

// 帳號為固定 10 位數字串，亂數範圍 [1000000000, 9999999999]
// 不會出現前導零，撞號時重抽
const (
	accountIDMin  int64 = 1_000_000_000
	accountIDSpan int64 = 9_000_000_000
)

// MutexLedger 是一個使用 Mutex 實現的銀行帳本
//
// 結構:
//
//	accountTypes: 帳戶類型，依註冊順序
//	typeIndex: 類型名稱對應 accountTypes 索引
//	accounts: 帳號對應帳戶資料 Map
//	order: 帳號，依開戶順序
//	rng: 帳號亂數來源，只在持鎖時使用
//	mu: Mutex 用於保護以上所有狀態
type MutexLedger struct {
	mu           sync.RWMutex
	accountTypes []domain.AccountType
	typeIndex    map[string]int
	accounts     map[string]*domain.Account
	order        []string
	rng          *rand.Rand
}

// NewMutexLedger 建立一個新的 MutexLedger 實例
//
// 回傳:
//
//	*MutexLedger: 空的帳本，尚未註冊任何帳戶類型
func NewMutexLedger() *MutexLedger {
	return &MutexLedger{
		typeIndex: make(map[string]int),
		accounts:  make(map[string]*domain.Account),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// AddAccountType 註冊帳戶類型
//
// 參數:
//
//	ctx: 上下文
//	name: 類型名稱，不可重複
//	interestRate: 年利率，必須大於 0 (比帳戶本身的 >= 0 更嚴格)
//
// 回傳:
//
//	error: 註冊錯誤 (如類型已存在)
func (m *MutexLedger) AddAccountType(ctx context.Context, name string, interestRate decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if name == "" {
		return domain.ErrTypeNameRequired
	}
	if _, ok := m.typeIndex[name]; ok {
		return fmt.Errorf("account type %q: %w", name, domain.ErrAccountTypeExists)
	}
	if !interestRate.IsPositive() {
		return fmt.Errorf("rate %s: %w", interestRate, domain.ErrRateMustBePositive)
	}

	m.typeIndex[name] = len(m.accountTypes)
	m.accountTypes = append(m.accountTypes, domain.AccountType{
		Name:         name,
		InterestRate: interestRate,
	})
	return nil
}

// OpenAccount 以指定類型開戶
//
// 開戶時複製類型當下的利率，與類型脫鉤。
// 帳號為唯一的 10 位數字串，產生與寫入在同一臨界區內完成。
//
// 參數:
//
//	ctx: 上下文
//	accountType: 已註冊的類型名稱
//
// 回傳:
//
//	string: 新帳戶的帳號
//	error: 開戶錯誤 (如類型不存在)
func (m *MutexLedger) OpenAccount(ctx context.Context, accountType string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx, ok := m.typeIndex[accountType]
	if !ok {
		return "", fmt.Errorf("account type %q: %w", accountType, domain.ErrAccountTypeNotFound)
	}

	account, err := domain.NewAccount(m.accountTypes[idx].InterestRate)
	if err != nil {
		return "", err
	}

	id := m.newAccountID()
	m.accounts[id] = account
	m.order = append(m.order, id)
	return id, nil
}

// newAccountID 產生未使用的帳號，撞號時重抽
// 只有持有寫鎖時可呼叫
func (m *MutexLedger) newAccountID() string {
	for {
		id := fmt.Sprintf("%d", accountIDMin+m.rng.Int63n(accountIDSpan))
		if _, ok := m.accounts[id]; !ok {
			return id
		}
	}
}

// GetBalance 取得指定帳戶的當前餘額
//
// 參數:
//
//	ctx: 上下文
//	accountID: 帳號
//
// 回傳:
//
//	decimal.Decimal: 帳戶餘額 (已捨入到小數點後 2 位)
//	error: 查詢錯誤 (如帳戶不存在)
func (m *MutexLedger) GetBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	account, ok := m.accounts[accountID]
	if !ok {
		return decimal.Zero, fmt.Errorf("account %s: %w", accountID, domain.ErrAccountNotFound)
	}
	return account.Balance, nil
}

// GetInterestRate 取得指定帳戶的利率
//
// 參數:
//
//	ctx: 上下文
//	accountID: 帳號
//
// 回傳:
//
//	decimal.Decimal: 開戶時固定的年利率
//	error: 查詢錯誤 (如帳戶不存在)
func (m *MutexLedger) GetInterestRate(ctx context.Context, accountID string) (decimal.Decimal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	account, ok := m.accounts[accountID]
	if !ok {
		return decimal.Zero, fmt.Errorf("account %s: %w", accountID, domain.ErrAccountNotFound)
	}
	return account.InterestRate, nil
}

// Deposit 對指定帳戶存款
//
// 參數:
//
//	ctx: 上下文
//	accountID: 帳號
//	amount: 金額，必須為正數
//
// 回傳:
//
//	error: 處理錯誤
func (m *MutexLedger) Deposit(ctx context.Context, accountID string, amount decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	account, ok := m.accounts[accountID]
	if !ok {
		return fmt.Errorf("account %s: %w", accountID, domain.ErrAccountNotFound)
	}
	return account.Deposit(amount)
}

// Withdraw 從指定帳戶提款
//
// 參數:
//
//	ctx: 上下文
//	accountID: 帳號
//	amount: 金額，必須為正數且不可超過餘額
//
// 回傳:
//
//	error: 處理錯誤 (如餘額不足)
func (m *MutexLedger) Withdraw(ctx context.Context, accountID string, amount decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	account, ok := m.accounts[accountID]
	if !ok {
		return fmt.Errorf("account %s: %w", accountID, domain.ErrAccountNotFound)
	}
	return account.Withdraw(amount)
}

// Transfer 轉帳
//
// 所有檢核都在異動任何餘額之前完成，任一檢核失敗時
// 兩邊帳戶的餘額都維持原狀。
//
// 參數:
//
//	ctx: 上下文
//	fromID: 轉出帳號
//	toID: 轉入帳號
//	amount: 金額，必須為正數
//
// 回傳:
//
//	error: 處理錯誤 (如餘額不足)
func (m *MutexLedger) Transfer(ctx context.Context, fromID, toID string, amount decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if fromID == toID {
		return fmt.Errorf("account %s: %w", fromID, domain.ErrSameAccount)
	}

	from, ok := m.accounts[fromID]
	if !ok {
		return fmt.Errorf("account %s: %w", fromID, domain.ErrAccountNotFound)
	}
	to, ok := m.accounts[toID]
	if !ok {
		return fmt.Errorf("account %s: %w", toID, domain.ErrAccountNotFound)
	}

	if !amount.IsPositive() {
		return fmt.Errorf("amount %s: %w", amount, domain.ErrAmountMustBePositive)
	}
	if from.Balance.LessThan(amount) {
		return fmt.Errorf("account %s: %w", fromID, domain.ErrInsufficientBalance)
	}

	// 檢核全數通過，兩段異動不會再失敗
	if err := from.Withdraw(amount); err != nil {
		return err
	}
	return to.Deposit(amount)
}

// AccrueInterest 對所有帳戶計一個月的複利
//
// 依開戶順序處理，但帳戶之間互不影響，順序不具意義。
//
// 參數:
//
//	ctx: 上下文
//
// 回傳:
//
//	int: 處理的帳戶數
//	error: 處理錯誤
func (m *MutexLedger) AccrueInterest(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, id := range m.order {
		m.accounts[id].CompoundInterest()
	}
	return len(m.order), nil
}

var _ usecase.Ledger = (*MutexLedger)(nil)
