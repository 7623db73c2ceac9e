package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestComputeQuote(t *testing.T) {
	tests := []struct {
		name     string
		prices   []int64
		subtotal int64
		gst      int64
		total    int64
	}{
		// round((4000+50)*1.18) = 4779
		{"two services", []int64{2500, 1500}, 4000, 729, 4779},
		{"single service", []int64{1000}, 1000, 189, 1239},
		{"empty cart", nil, 0, 9, 59},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prices := make([]decimal.Decimal, len(tt.prices))
			for i, p := range tt.prices {
				prices[i] = decimal.NewFromInt(p)
			}

			q := ComputeQuote(prices)

			if !q.Subtotal.Equal(decimal.NewFromInt(tt.subtotal)) {
				t.Errorf("subtotal: got %s, want %d", q.Subtotal, tt.subtotal)
			}
			if !q.ServiceCharge.Equal(decimal.NewFromInt(50)) {
				t.Errorf("service charge: got %s, want 50", q.ServiceCharge)
			}
			if !q.GST.Equal(decimal.NewFromInt(tt.gst)) {
				t.Errorf("gst: got %s, want %d", q.GST, tt.gst)
			}
			if !q.TotalAmount.Equal(decimal.NewFromInt(tt.total)) {
				t.Errorf("total: got %s, want %d", q.TotalAmount, tt.total)
			}
		})
	}
}

func TestComputeQuoteFractionalPrices(t *testing.T) {
	// 2.50 + 50 = 52.50; 52.50 * 1.18 = 61.95 -> total rounds to 62, GST is
	// the remainder so the breakdown still sums to the charged amount
	q := ComputeQuote([]decimal.Decimal{decimal.NewFromFloat(2.50)})
	if !q.TotalAmount.Equal(decimal.NewFromInt(62)) {
		t.Fatalf("total: got %s, want 62", q.TotalAmount)
	}
	if !q.GST.Equal(decimal.NewFromFloat(9.5)) {
		t.Fatalf("gst: got %s, want 9.5", q.GST)
	}
	sum := q.Subtotal.Add(q.ServiceCharge).Add(q.GST)
	if !sum.Equal(q.TotalAmount) {
		t.Fatalf("breakdown sums to %s, total is %s", sum, q.TotalAmount)
	}
}

func TestComputeQuoteRoundsGSTToRupee(t *testing.T) {
	// 333 + 50 = 383; 383 * 0.18 = 68.94 -> 69
	q := ComputeQuote([]decimal.Decimal{decimal.NewFromInt(333)})
	if !q.GST.Equal(decimal.NewFromInt(69)) {
		t.Fatalf("gst: got %s, want 69", q.GST)
	}
	if !q.TotalAmount.Equal(decimal.NewFromInt(452)) {
		t.Fatalf("total: got %s, want 452", q.TotalAmount)
	}
}
