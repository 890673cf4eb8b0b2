package pricing

// Fixed cost-model constants. These are part of the report contract and
// must not drift: downstream consumers compare outputs across runs.
const (
	// RightSizingSavingsRate is the assumed saving from reducing an
	// over-provisioned memory allocation.
	RightSizingSavingsRate = 0.30

	// ForecastComputeRate approximates the per-invocation compute
	// charge: invocations x duration (ms) x memory (MB) x rate.
	ForecastComputeRate = 1.2e-10

	// ForecastTransferRatePerGB is the data transfer charge per GB.
	ForecastTransferRatePerGB = 0.09
)

// ForecastCost applies the linear cost model to one function's monthly
// metrics.
func ForecastCost(invocations, avgDurationMs, memoryMB, dataTransferGB float64) float64 {
	return invocations*avgDurationMs*memoryMB*ForecastComputeRate +
		dataTransferGB*ForecastTransferRatePerGB
}

// GBSeconds computes the monthly billed compute volume: memory in GB
// times total execution time in seconds.
func GBSeconds(invocations, avgDurationMs, memoryMB float64) float64 {
	return invocations * (avgDurationMs / 1000) * (memoryMB / 1024)
}

// LambdaMonthlyCost estimates a function's monthly bill from its
// invocation volume, average duration, and memory allocation. Free tier
// is ignored: an account-wide allowance cannot be attributed to a
// single function.
func LambdaMonthlyCost(region string, invocations, avgDurationMs, memoryMB float64) float64 {
	price := lookupComputePrice(region)
	compute := GBSeconds(invocations, avgDurationMs, memoryMB) * price
	requests := invocations / 1_000_000 * RequestPricePerMillion
	return compute + requests
}

func lookupComputePrice(region string) float64 {
	if price, ok := ComputePricePerGBSecond[region]; ok {
		return price
	}
	return ComputePricePerGBSecond["default"]
}
