package usecase

import (
	"github.com/shopspring/decimal"
)

// Flat per-booking service charge and GST rate. GST applies to the subtotal
// plus the service charge.
var (
	serviceCharge = decimal.NewFromInt(50)
	gstRate       = decimal.NewFromFloat(0.18)
)

// Quote is a fully computed booking price breakdown.
type Quote struct {
	Subtotal      decimal.Decimal
	ServiceCharge decimal.Decimal
	GST           decimal.Decimal
	TotalAmount   decimal.Decimal
}

// ComputeQuote prices a set of selected services: subtotal of item prices,
// the flat service charge, and 18% GST. The charged total is the taxed sum
// rounded to the nearest rupee; GST is the difference between total and
// taxable base so the breakdown always adds up to the charged amount.
func ComputeQuote(prices []decimal.Decimal) Quote {
	subtotal := decimal.Zero
	for _, p := range prices {
		subtotal = subtotal.Add(p)
	}

	taxable := subtotal.Add(serviceCharge)
	total := taxable.Add(taxable.Mul(gstRate)).Round(0)

	return Quote{
		Subtotal:      subtotal,
		ServiceCharge: serviceCharge,
		GST:           total.Sub(taxable),
		TotalAmount:   total,
	}
}
