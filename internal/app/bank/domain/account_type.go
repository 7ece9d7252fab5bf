package domain

import "github.com/shopspring/decimal"

// AccountType 帳戶類型：名稱對應的開戶利率，註冊後不可變
// 開戶時會把利率複製進帳戶，之後與類型脫鉤
type AccountType struct {
	Name         string
	InterestRate decimal.Decimal
}
