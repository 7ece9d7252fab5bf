package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

// d 為小工具：把字串轉成精確的 decimal，格式錯誤直接 panic
func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// newAccount 為小工具：建立帳戶，失敗立即讓測試失敗
func newAccount(t *testing.T, rate string) *Account {
	t.Helper()
	a, err := NewAccount(d(rate))
	if err != nil {
		t.Fatalf("NewAccount(%s) err=%v", rate, err)
	}
	return a
}

// balance 為小工具：以兩位小數字串回傳餘額
func balance(a *Account) string {
	return a.Balance.StringFixed(BalanceScale)
}

// TestNewAccountZeroBalance 驗證新帳戶餘額一律為 0.00，與利率無關
func TestNewAccountZeroBalance(t *testing.T) {
	for _, rate := range []string{"0", "2.5", "12"} {
		a := newAccount(t, rate)
		if got := balance(a); got != "0.00" {
			t.Fatalf("rate=%s balance=%s want=0.00", rate, got)
		}
	}
}

// TestNewAccountNegativeRate 驗證帳戶利率不可為負 (0 是允許的)
func TestNewAccountNegativeRate(t *testing.T) {
	if _, err := NewAccount(d("-1")); !errors.Is(err, ErrNegativeRate) {
		t.Fatalf("want ErrNegativeRate, got %v", err)
	}
	if _, err := NewAccount(d("0")); err != nil {
		t.Fatalf("rate 0 should be allowed, got %v", err)
	}
}

// TestDeposit 驗證存款後餘額正確
func TestDeposit(t *testing.T) {
	a := newAccount(t, "10")
	if err := a.Deposit(d("1500")); err != nil {
		t.Fatal(err)
	}
	if got := balance(a); got != "1500.00" {
		t.Fatalf("balance=%s want=1500.00", got)
	}
}

// TestDepositRejectsNonPositive 驗證金額 <= 0 的存款被拒絕且餘額不變
func TestDepositRejectsNonPositive(t *testing.T) {
	a := newAccount(t, "10")
	for _, amt := range []string{"0", "-500"} {
		if err := a.Deposit(d(amt)); !errors.Is(err, ErrAmountMustBePositive) {
			t.Fatalf("Deposit(%s): want ErrAmountMustBePositive, got %v", amt, err)
		}
	}
	if got := balance(a); got != "0.00" {
		t.Fatalf("balance=%s want=0.00", got)
	}
}

// TestWithdraw 驗證提款後餘額正確
func TestWithdraw(t *testing.T) {
	a := newAccount(t, "10")
	if err := a.Deposit(d("1500")); err != nil {
		t.Fatal(err)
	}
	if err := a.Withdraw(d("500")); err != nil {
		t.Fatal(err)
	}
	if got := balance(a); got != "1000.00" {
		t.Fatalf("balance=%s want=1000.00", got)
	}
}

// TestWithdrawExactBalance 驗證剛好提領全部餘額是允許的
func TestWithdrawExactBalance(t *testing.T) {
	a := newAccount(t, "10")
	if err := a.Deposit(d("250.75")); err != nil {
		t.Fatal(err)
	}
	if err := a.Withdraw(d("250.75")); err != nil {
		t.Fatal(err)
	}
	if got := balance(a); got != "0.00" {
		t.Fatalf("balance=%s want=0.00", got)
	}
}

// TestWithdrawInsufficient 驗證超額提款被拒絕且餘額不變
func TestWithdrawInsufficient(t *testing.T) {
	a := newAccount(t, "10")
	if err := a.Deposit(d("100")); err != nil {
		t.Fatal(err)
	}
	if err := a.Withdraw(d("100.01")); !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("want ErrInsufficientBalance, got %v", err)
	}
	if got := balance(a); got != "100.00" {
		t.Fatalf("balance=%s want=100.00", got)
	}
}

// TestWithdrawRejectsNonPositive 驗證金額 <= 0 的提款被拒絕
func TestWithdrawRejectsNonPositive(t *testing.T) {
	a := newAccount(t, "10")
	for _, amt := range []string{"0", "-1"} {
		if err := a.Withdraw(d(amt)); !errors.Is(err, ErrAmountMustBePositive) {
			t.Fatalf("Withdraw(%s): want ErrAmountMustBePositive, got %v", amt, err)
		}
	}
}

// TestDepositOrderIndependent 驗證多筆存款的最終餘額與順序無關
func TestDepositOrderIndependent(t *testing.T) {
	amounts := []string{"0.10", "1500", "33.33", "0.07"}

	forward := newAccount(t, "10")
	for _, amt := range amounts {
		if err := forward.Deposit(d(amt)); err != nil {
			t.Fatal(err)
		}
	}
	backward := newAccount(t, "10")
	for i := len(amounts) - 1; i >= 0; i-- {
		if err := backward.Deposit(d(amounts[i])); err != nil {
			t.Fatal(err)
		}
	}

	if balance(forward) != balance(backward) {
		t.Fatalf("order dependent: %s vs %s", balance(forward), balance(backward))
	}
	if got := balance(forward); got != "1533.50" {
		t.Fatalf("balance=%s want=1533.50", got)
	}
}

// TestRoundingHalfUp 驗證餘額在每次異動後以四捨五入進位到兩位小數
func TestRoundingHalfUp(t *testing.T) {
	a := newAccount(t, "10")
	if err := a.Deposit(d("10.005")); err != nil {
		t.Fatal(err)
	}
	if got := balance(a); got != "10.01" {
		t.Fatalf("balance=%s want=10.01", got)
	}

	// 小於半分的尾數被捨去
	b := newAccount(t, "10")
	if err := b.Deposit(d("10.004")); err != nil {
		t.Fatal(err)
	}
	if got := balance(b); got != "10.00" {
		t.Fatalf("balance=%s want=10.00", got)
	}
}

// TestCompoundInterest 驗證單月複利: 1000.00 年利率 12 -> 月利率 1% -> 1010.00
func TestCompoundInterest(t *testing.T) {
	a := newAccount(t, "12")
	if err := a.Deposit(d("1000")); err != nil {
		t.Fatal(err)
	}
	a.CompoundInterest()
	if got := balance(a); got != "1010.00" {
		t.Fatalf("balance=%s want=1010.00", got)
	}
}

// TestCompoundInterestZeroRate 驗證利率 0 的帳戶計息後餘額不變
func TestCompoundInterestZeroRate(t *testing.T) {
	a := newAccount(t, "0")
	if err := a.Deposit(d("1000")); err != nil {
		t.Fatal(err)
	}
	a.CompoundInterest()
	if got := balance(a); got != "1000.00" {
		t.Fatalf("balance=%s want=1000.00", got)
	}
}

// TestCompoundInterestOnRoundedBalance 驗證連續計息以「捨入後」的餘額為基準
// 100.00 @ 5%: 月息 0.41666.. -> 100.42，下個月以 100.42 計息 -> 100.84
func TestCompoundInterestOnRoundedBalance(t *testing.T) {
	a := newAccount(t, "5")
	if err := a.Deposit(d("100")); err != nil {
		t.Fatal(err)
	}

	a.CompoundInterest()
	if got := balance(a); got != "100.42" {
		t.Fatalf("after 1st month balance=%s want=100.42", got)
	}

	a.CompoundInterest()
	if got := balance(a); got != "100.84" {
		t.Fatalf("after 2nd month balance=%s want=100.84", got)
	}
}
