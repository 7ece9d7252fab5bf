package domain

import "errors"

var (
	// ErrNegativeRate 帳戶利率不可為負
	ErrNegativeRate = errors.New("interest rate can not be negative")

	// ErrRateMustBePositive 帳戶類型的利率必須大於 0
	ErrRateMustBePositive = errors.New("interest rate must be greater than 0")

	// ErrTypeNameRequired 帳戶類型名稱不可為空
	ErrTypeNameRequired = errors.New("account type name is required")

	// ErrAmountMustBePositive 金額必須為正數
	ErrAmountMustBePositive = errors.New("amount must be positive")

	// ErrInsufficientBalance 餘額不足
	ErrInsufficientBalance = errors.New("cannot withdraw more than available balance")

	// ErrAccountNotFound 找不到帳戶
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountTypeExists 帳戶類型已存在
	ErrAccountTypeExists = errors.New("account type already exists")

	// ErrAccountTypeNotFound 找不到帳戶類型
	ErrAccountTypeNotFound = errors.New("account type not found")

	// ErrSameAccount 轉出與轉入為同一帳戶
	ErrSameAccount = errors.New("from and to accounts are the same")
)
