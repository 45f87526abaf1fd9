package model

import "github.com/shopspring/decimal"

// PurchaseRecord represents one successful expense row from an Alipay export.
// Records are values and never mutated after parsing.
type PurchaseRecord struct {
	TransactionID string
	OrderID       string
	CreateTime    string
	PayTime       string
	Source        string          // 交易来源地
	Counterparty  string          // 交易对方
	Product       string          // 商品名称
	Amount        decimal.Decimal // non-negative magnitude
	Direction     string          // 收/支
	Status        string          // 交易状态
}

// ClassifiedPurchase pairs a record with its classifier verdict.
type ClassifiedPurchase struct {
	PurchaseRecord
	Classification
}
