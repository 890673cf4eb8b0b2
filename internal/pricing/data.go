package pricing

// RequestPricePerMillion is the Lambda request charge: $0.20 per 1M
// requests in every commercial region.
const RequestPricePerMillion = 0.20

// ComputePricePerGBSecond maps region to the x86 Lambda compute price.
// Most commercial regions bill $0.0000166667/GB-second; a few are
// priced higher.
var ComputePricePerGBSecond = map[string]float64{
	"us-east-1":      0.0000166667,
	"us-east-2":      0.0000166667,
	"us-west-1":      0.0000166667,
	"us-west-2":      0.0000166667,
	"eu-west-1":      0.0000166667,
	"eu-west-2":      0.0000166667,
	"eu-central-1":   0.0000166667,
	"ap-northeast-1": 0.0000166667,
	"ap-northeast-2": 0.0000166667,
	"ap-southeast-1": 0.0000166667,
	"ap-southeast-2": 0.0000166667,
	"ap-south-1":     0.0000166667,
	"sa-east-1":      0.0000166667,
	"af-south-1":     0.0000221,
	"me-south-1":     0.0000206667,
	"default":        0.0000166667,
}
