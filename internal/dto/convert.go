package dto

import "github.com/shopspring/decimal"

// ConvertQuery is the query surface of the conversion endpoint.
type ConvertQuery struct {
	From   string `form:"from" binding:"required,len=3"`
	To     string `form:"to" binding:"required,len=3"`
	Amount string `form:"amount" binding:"required"`
	Date   string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

// ConvertSourceCurrent is the Source value when the latest rates were used.
const ConvertSourceCurrent = "current"

// ConvertResponse reports a cross-currency conversion. RateUsed carries the
// full audit precision (9 fractional digits); ConvertedAmount is rounded to 2
// for display.
type ConvertResponse struct {
	FromCurrency    string          `json:"fromCurrency"`
	ToCurrency      string          `json:"toCurrency"`
	Amount          decimal.Decimal `json:"amount"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	RateUsed        decimal.Decimal `json:"rateUsed"`
	Source          string          `json:"source"` // "current" or the publication date used
}
