package pricing

import (
	"math"
	"testing"
)

func TestForecastCost(t *testing.T) {
	// 1M invocations x 100ms x 128MB x 1.2e-10 = 1.536, no transfer.
	got := ForecastCost(1_000_000, 100, 128, 0)
	if math.Abs(got-1.536) > 1e-9 {
		t.Errorf("ForecastCost = %v, want 1.536", got)
	}
}

func TestForecastCostTransferOnly(t *testing.T) {
	got := ForecastCost(0, 0, 0, 100)
	if math.Abs(got-9.0) > 1e-9 {
		t.Errorf("ForecastCost = %v, want 9.0", got)
	}
}

func TestGBSeconds(t *testing.T) {
	// 1M invocations x 1s x 1GB = 1M GB-seconds.
	got := GBSeconds(1_000_000, 1000, 1024)
	if got != 1_000_000 {
		t.Errorf("GBSeconds = %v, want 1000000", got)
	}
}

func TestLambdaMonthlyCost(t *testing.T) {
	// 1M invocations x 1s x 1GB: 1M GB-s x $0.0000166667 + $0.20 requests.
	got := LambdaMonthlyCost("us-east-1", 1_000_000, 1000, 1024)
	want := 1_000_000*0.0000166667 + 0.20
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("LambdaMonthlyCost = %v, want %v", got, want)
	}
}

func TestLambdaMonthlyCostUnknownRegionUsesDefault(t *testing.T) {
	known := LambdaMonthlyCost("us-east-1", 1000, 100, 512)
	unknown := LambdaMonthlyCost("xx-fake-1", 1000, 100, 512)
	if known != unknown {
		t.Errorf("unknown region cost %v differs from default %v", unknown, known)
	}
}

func TestModelConstants(t *testing.T) {
	// The report contract fixes these exactly.
	if RightSizingSavingsRate != 0.30 {
		t.Errorf("RightSizingSavingsRate = %v, want 0.30", RightSizingSavingsRate)
	}
	if ForecastComputeRate != 1.2e-10 {
		t.Errorf("ForecastComputeRate = %v, want 1.2e-10", ForecastComputeRate)
	}
	if ForecastTransferRatePerGB != 0.09 {
		t.Errorf("ForecastTransferRatePerGB = %v, want 0.09", ForecastTransferRatePerGB)
	}
}
