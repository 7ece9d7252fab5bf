package domain

import "github.com/shopspring/decimal"

// 餘額一律保留到小數點後 2 位 (貨幣最小單位)
// 每次異動後立即捨入，後續計息都以捨入後的餘額為準
const BalanceScale = 2

var (
	percentBase   = decimal.NewFromInt(100)
	monthsPerYear = decimal.NewFromInt(12)
)

type Account struct {
	Balance      decimal.Decimal
	InterestRate decimal.Decimal
}

// NewAccount 建立帳戶，利率於開戶時固定，餘額從 0.00 開始
func NewAccount(interestRate decimal.Decimal) (*Account, error) {
	if interestRate.IsNegative() {
		return nil, ErrNegativeRate
	}
	return &Account{
		Balance:      decimal.Zero.Round(BalanceScale),
		InterestRate: interestRate,
	}, nil
}

// Deposit 存款
func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrAmountMustBePositive
	}

	a.Balance = a.Balance.Add(amount).Round(BalanceScale)
	return nil
}

// Withdraw 提款
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrAmountMustBePositive
	}

	if a.Balance.LessThan(amount) {
		return ErrInsufficientBalance
	}

	a.Balance = a.Balance.Sub(amount).Round(BalanceScale)
	return nil
}

// CompoundInterest 入帳單月利息: balance * rate / 100 / 12
// 年利率 12 對應月利率 1%
func (a *Account) CompoundInterest() {
	monthly := a.Balance.Mul(a.InterestRate).Div(percentBase).Div(monthsPerYear)
	a.Balance = a.Balance.Add(monthly).Round(BalanceScale)
}
