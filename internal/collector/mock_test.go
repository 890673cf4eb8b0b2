package collector

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	lambdatypes "github.com/aws/aws-sdk-go-v2/service/lambda/types"
)

// mockLambda implements LambdaAPI for tests.
type mockLambda struct {
	functions []lambdatypes.FunctionConfiguration
	pcConfigs map[string][]lambdatypes.ProvisionedConcurrencyConfigListItem
	tags      map[string]map[string]string

	listFunctionsErr error
	listTagsErr      error
	pcErr            error
}

func (m *mockLambda) ListFunctions(_ context.Context, _ *lambda.ListFunctionsInput, _ ...func(*lambda.Options)) (*lambda.ListFunctionsOutput, error) {
	if m.listFunctionsErr != nil {
		return nil, m.listFunctionsErr
	}
	return &lambda.ListFunctionsOutput{Functions: m.functions}, nil
}

func (m *mockLambda) ListProvisionedConcurrencyConfigs(_ context.Context, input *lambda.ListProvisionedConcurrencyConfigsInput, _ ...func(*lambda.Options)) (*lambda.ListProvisionedConcurrencyConfigsOutput, error) {
	if m.pcErr != nil {
		return nil, m.pcErr
	}
	return &lambda.ListProvisionedConcurrencyConfigsOutput{
		ProvisionedConcurrencyConfigs: m.pcConfigs[*input.FunctionName],
	}, nil
}

func (m *mockLambda) ListTags(_ context.Context, input *lambda.ListTagsInput, _ ...func(*lambda.Options)) (*lambda.ListTagsOutput, error) {
	if m.listTagsErr != nil {
		return nil, m.listTagsErr
	}
	return &lambda.ListTagsOutput{Tags: m.tags[*input.Resource]}, nil
}

// mockCloudWatch implements CloudWatchAPI for tests. Datapoints are
// keyed by "<function>/<metric>".
type mockCloudWatch struct {
	datapoints map[string][]cwtypes.Datapoint
	err        error
}

func (m *mockCloudWatch) GetMetricStatistics(_ context.Context, input *cloudwatch.GetMetricStatisticsInput, _ ...func(*cloudwatch.Options)) (*cloudwatch.GetMetricStatisticsOutput, error) {
	if m.err != nil {
		return nil, m.err
	}
	key := fmt.Sprintf("%s/%s", *input.Dimensions[0].Value, *input.MetricName)
	return &cloudwatch.GetMetricStatisticsOutput{Datapoints: m.datapoints[key]}, nil
}
