package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-mem-bank/internal/app/bank/domain"
)

// d 為小工具：把字串轉成精確的 decimal
func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// newLedgerWithType 為小工具：建立帳本並註冊一個 Savings 類型
func newLedgerWithType(t *testing.T, rate string) *MutexLedger {
	t.Helper()
	m := NewMutexLedger()
	if err := m.AddAccountType(context.Background(), "Savings", d(rate)); err != nil {
		t.Fatalf("AddAccountType err=%v", err)
	}
	return m
}

// open 為小工具：開戶，失敗立即讓測試失敗
func open(t *testing.T, m *MutexLedger, accountType string) string {
	t.Helper()
	id, err := m.OpenAccount(context.Background(), accountType)
	if err != nil {
		t.Fatalf("OpenAccount(%s) err=%v", accountType, err)
	}
	return id
}

// balance 為小工具：以兩位小數字串回傳帳戶餘額
func balance(t *testing.T, m *MutexLedger, id string) string {
	t.Helper()
	b, err := m.GetBalance(context.Background(), id)
	if err != nil {
		t.Fatalf("GetBalance(%s) err=%v", id, err)
	}
	return b.StringFixed(domain.BalanceScale)
}

// TestAddAccountType 驗證類型註冊與重複名稱檢查
func TestAddAccountType(t *testing.T) {
	ctx := context.Background()
	m := newLedgerWithType(t, "2.5")

	// 同名重複註冊必須失敗，利率不同也一樣
	for _, rate := range []string{"2.5", "3"} {
		err := m.AddAccountType(ctx, "Savings", d(rate))
		if !errors.Is(err, domain.ErrAccountTypeExists) {
			t.Fatalf("duplicate rate=%s: want ErrAccountTypeExists, got %v", rate, err)
		}
	}

	// 不同名稱可以註冊
	if err := m.AddAccountType(ctx, "Checking", d("0.5")); err != nil {
		t.Fatalf("AddAccountType(Checking) err=%v", err)
	}
}

// TestAddAccountTypeRejectsNonPositiveRate 驗證類型利率必須「大於」0
// 注意：這比帳戶本身的 >= 0 檢查更嚴格
func TestAddAccountTypeRejectsNonPositiveRate(t *testing.T) {
	ctx := context.Background()
	m := NewMutexLedger()
	for _, rate := range []string{"0", "-1"} {
		err := m.AddAccountType(ctx, "Invalid", d(rate))
		if !errors.Is(err, domain.ErrRateMustBePositive) {
			t.Fatalf("rate=%s: want ErrRateMustBePositive, got %v", rate, err)
		}
	}
}

// TestAddAccountTypeRejectsEmptyName 驗證類型名稱不可為空
func TestAddAccountTypeRejectsEmptyName(t *testing.T) {
	m := NewMutexLedger()
	err := m.AddAccountType(context.Background(), "", d("5"))
	if !errors.Is(err, domain.ErrTypeNameRequired) {
		t.Fatalf("want ErrTypeNameRequired, got %v", err)
	}
}

// TestOpenAccountUnknownType 驗證未註冊的類型不可開戶
func TestOpenAccountUnknownType(t *testing.T) {
	m := NewMutexLedger()
	_, err := m.OpenAccount(context.Background(), "Savings")
	if !errors.Is(err, domain.ErrAccountTypeNotFound) {
		t.Fatalf("want ErrAccountTypeNotFound, got %v", err)
	}
}

// TestOpenAccountIDFormat 驗證帳號固定為 10 位數字且無前導零
func TestOpenAccountIDFormat(t *testing.T) {
	m := newLedgerWithType(t, "5")
	id := open(t, m, "Savings")

	if len(id) != 10 {
		t.Fatalf("id=%q len=%d want=10", id, len(id))
	}
	for i, c := range id {
		if c < '0' || c > '9' {
			t.Fatalf("id=%q has non-digit at %d", id, i)
		}
	}
	if id[0] == '0' {
		t.Fatalf("id=%q has leading zero", id)
	}
}

// TestOpenAccountUniqueIDs 壓力測試：連開 1000 戶，帳號兩兩相異
func TestOpenAccountUniqueIDs(t *testing.T) {
	m := newLedgerWithType(t, "5")
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		id := open(t, m, "Savings")
		if seen[id] {
			t.Fatalf("duplicate id %q at open %d", id, i)
		}
		seen[id] = true
	}
}

// TestOpenAccountCopiesTypeRate 驗證開戶時複製類型利率且初始餘額為 0.00
func TestOpenAccountCopiesTypeRate(t *testing.T) {
	m := newLedgerWithType(t, "2.5")
	id := open(t, m, "Savings")

	rate, err := m.GetInterestRate(context.Background(), id)
	if err != nil {
		t.Fatal(err)
	}
	if !rate.Equal(d("2.5")) {
		t.Fatalf("rate=%s want=2.5", rate)
	}
	if got := balance(t, m, id); got != "0.00" {
		t.Fatalf("balance=%s want=0.00", got)
	}
}

// TestDepositAndWithdrawByID 驗證以帳號存提款
func TestDepositAndWithdrawByID(t *testing.T) {
	ctx := context.Background()
	m := newLedgerWithType(t, "5")
	id := open(t, m, "Savings")

	if err := m.Deposit(ctx, id, d("1500")); err != nil {
		t.Fatal(err)
	}
	if err := m.Withdraw(ctx, id, d("500")); err != nil {
		t.Fatal(err)
	}
	if got := balance(t, m, id); got != "1000.00" {
		t.Fatalf("balance=%s want=1000.00", got)
	}
}

// TestNegativeDepositLeavesBalance 驗證負數存款被拒絕且餘額不變
func TestNegativeDepositLeavesBalance(t *testing.T) {
	ctx := context.Background()
	m := newLedgerWithType(t, "5")
	id := open(t, m, "Savings")

	if err := m.Deposit(ctx, id, d("-500")); !errors.Is(err, domain.ErrAmountMustBePositive) {
		t.Fatalf("want ErrAmountMustBePositive, got %v", err)
	}
	if got := balance(t, m, id); got != "0.00" {
		t.Fatalf("balance=%s want=0.00", got)
	}
}

// TestUnknownAccountOperations 驗證所有操作對不存在的帳號回傳 ErrAccountNotFound
func TestUnknownAccountOperations(t *testing.T) {
	ctx := context.Background()
	m := newLedgerWithType(t, "5")
	const ghost = "1234567890"

	if _, err := m.GetBalance(ctx, ghost); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("GetBalance: want ErrAccountNotFound, got %v", err)
	}
	if _, err := m.GetInterestRate(ctx, ghost); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("GetInterestRate: want ErrAccountNotFound, got %v", err)
	}
	if err := m.Deposit(ctx, ghost, d("1")); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("Deposit: want ErrAccountNotFound, got %v", err)
	}
	if err := m.Withdraw(ctx, ghost, d("1")); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("Withdraw: want ErrAccountNotFound, got %v", err)
	}
}

// TestTransfer 驗證轉帳成功時等價於「轉出方提款 + 轉入方存款」
func TestTransfer(t *testing.T) {
	ctx := context.Background()
	m := newLedgerWithType(t, "5")
	from := open(t, m, "Savings")
	to := open(t, m, "Savings")

	if err := m.Deposit(ctx, from, d("1500")); err != nil {
		t.Fatal(err)
	}
	if err := m.Transfer(ctx, from, to, d("500")); err != nil {
		t.Fatal(err)
	}

	if got := balance(t, m, from); got != "1000.00" {
		t.Fatalf("from balance=%s want=1000.00", got)
	}
	if got := balance(t, m, to); got != "500.00" {
		t.Fatalf("to balance=%s want=500.00", got)
	}
}

// TestTransferInsufficientBeforeDeposit 情境測試：
// 註冊 Savings 5，開兩戶，未入金就轉帳 -> 餘額不足，雙方餘額維持 0.00
func TestTransferInsufficientBeforeDeposit(t *testing.T) {
	ctx := context.Background()
	m := newLedgerWithType(t, "5")
	from := open(t, m, "Savings")
	to := open(t, m, "Savings")

	err := m.Transfer(ctx, from, to, d("100"))
	if !errors.Is(err, domain.ErrInsufficientBalance) {
		t.Fatalf("want ErrInsufficientBalance, got %v", err)
	}
	if got := balance(t, m, from); got != "0.00" {
		t.Fatalf("from balance=%s want=0.00", got)
	}
	if got := balance(t, m, to); got != "0.00" {
		t.Fatalf("to balance=%s want=0.00", got)
	}
}

// TestTransferFailuresAreNoOps 驗證轉帳任一檢核失敗時雙方餘額不變
func TestTransferFailuresAreNoOps(t *testing.T) {
	ctx := context.Background()
	m := newLedgerWithType(t, "5")
	from := open(t, m, "Savings")
	to := open(t, m, "Savings")
	if err := m.Deposit(ctx, from, d("100")); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		from    string
		to      string
		amount  string
		wantErr error
	}{
		{"same account", from, from, "10", domain.ErrSameAccount},
		{"unknown from", "9999999999", to, "10", domain.ErrAccountNotFound},
		{"unknown to", from, "9999999999", "10", domain.ErrAccountNotFound},
		{"zero amount", from, to, "0", domain.ErrAmountMustBePositive},
		{"negative amount", from, to, "-10", domain.ErrAmountMustBePositive},
		{"insufficient", from, to, "100.01", domain.ErrInsufficientBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := m.Transfer(ctx, tt.from, tt.to, d(tt.amount)); !errors.Is(err, tt.wantErr) {
				t.Fatalf("want %v, got %v", tt.wantErr, err)
			}
			if got := balance(t, m, from); got != "100.00" {
				t.Fatalf("from balance=%s want=100.00", got)
			}
			if got := balance(t, m, to); got != "0.00" {
				t.Fatalf("to balance=%s want=0.00", got)
			}
		})
	}
}

// TestAccrueInterest 驗證對所有帳戶計一個月複利，不同類型的利率各自生效
func TestAccrueInterest(t *testing.T) {
	ctx := context.Background()
	m := newLedgerWithType(t, "12")
	if err := m.AddAccountType(ctx, "Checking", d("6")); err != nil {
		t.Fatal(err)
	}

	savings := open(t, m, "Savings")
	checking := open(t, m, "Checking")
	if err := m.Deposit(ctx, savings, d("1000")); err != nil {
		t.Fatal(err)
	}
	if err := m.Deposit(ctx, checking, d("500")); err != nil {
		t.Fatal(err)
	}

	n, err := m.AccrueInterest(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("accrued %d accounts, want 2", n)
	}

	// 1000 @12 -> +1% -> 1010.00; 500 @6 -> +0.5% -> 502.50
	if got := balance(t, m, savings); got != "1010.00" {
		t.Fatalf("savings balance=%s want=1010.00", got)
	}
	if got := balance(t, m, checking); got != "502.50" {
		t.Fatalf("checking balance=%s want=502.50", got)
	}
}

// TestAccrueInterestEmptyLedger 驗證空帳本計息不報錯
func TestAccrueInterestEmptyLedger(t *testing.T) {
	m := NewMutexLedger()
	n, err := m.AccrueInterest(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("accrued %d accounts, want 0", n)
	}
}

// TestRateCopiedNotReferenced 驗證帳戶利率在開戶時定格，
// 即使之後註冊同利率體系下的其他類型，既有帳戶也不受影響
func TestRateCopiedNotReferenced(t *testing.T) {
	ctx := context.Background()
	m := newLedgerWithType(t, "5")
	id := open(t, m, "Savings")

	// 類型註冊後不可變，這裡只能驗證帳戶端持有的是複製值
	acct := m.accounts[id]
	acct.Balance = d("1000").Round(domain.BalanceScale)

	typeRate := m.accountTypes[m.typeIndex["Savings"]].InterestRate
	accountRate, err := m.GetInterestRate(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if !accountRate.Equal(typeRate) {
		t.Fatalf("rate=%s want=%s", accountRate, typeRate)
	}

	m.AccrueInterest(ctx)
	if got := balance(t, m, id); got != "1004.17" {
		t.Fatalf("balance=%s want=1004.17", got)
	}
}
