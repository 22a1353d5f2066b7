package metrics

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

const (
	namespace        = "SCENEPLAN/API"
	putMetricTimeout = 5 * time.Second
)

// Client publishes custom CloudWatch metrics. A nil or disabled client is
// safe to call, every Record method is then a no-op, so call sites never
// need to guard.
type Client struct {
	client      *cloudwatch.Client
	enabled     bool
	environment string
}

// NewClient builds the CloudWatch publisher. Metrics only flow in
// production; everywhere else the returned client is disabled.
func NewClient(ctx context.Context, environment string) (*Client, error) {
	if environment != "production" {
		log.Printf("📊 CloudWatch Metrics: DISABLED (environment: %s)", environment)
		return &Client{enabled: false, environment: environment}, nil
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		log.Printf("⚠️  Failed to load AWS config for CloudWatch: %v", err)
		return &Client{enabled: false}, nil
	}

	log.Printf("📊 CloudWatch Metrics: ✅ ENABLED (namespace: %s)", namespace)
	return &Client{
		client:      cloudwatch.NewFromConfig(cfg),
		enabled:     true,
		environment: environment,
	}, nil
}

// RecordAPIRequest counts a handled request and its latency per endpoint.
// Server errors land under APIErrors instead of APIRequests.
func (m *Client) RecordAPIRequest(endpoint string, statusCode int, duration time.Duration) {
	if m == nil || !m.enabled {
		return
	}

	countName := "APIRequests"
	if statusCode >= http.StatusInternalServerError {
		countName = "APIErrors"
	}

	dims := m.dims("Endpoint", endpoint)
	m.publish(
		datum(countName, 1, types.StandardUnitCount, dims),
		datum("APILatency", float64(duration.Milliseconds()), types.StandardUnitMilliseconds, dims),
	)
}

// RecordTokenUsage publishes the token breakdown of one model call.
func (m *Client) RecordTokenUsage(model string, totalTokens, inputTokens, outputTokens, reasoningTokens int) {
	if m == nil || !m.enabled {
		return
	}

	dims := m.dims("Model", model)
	data := []types.MetricDatum{
		datum("LLMTokens/Total", float64(totalTokens), types.StandardUnitCount, dims),
		datum("LLMTokens/Input", float64(inputTokens), types.StandardUnitCount, dims),
		datum("LLMTokens/Output", float64(outputTokens), types.StandardUnitCount, dims),
	}
	// Reasoning-capable models only
	if reasoningTokens > 0 {
		data = append(data, datum("LLMTokens/Reasoning", float64(reasoningTokens), types.StandardUnitCount, dims))
	}
	m.publish(data...)
}

// RecordScenePlan counts one delivered plan and how many scenes it carried.
func (m *Client) RecordScenePlan(sceneCount int, model string) {
	if m == nil || !m.enabled {
		return
	}

	dims := m.dims("Model", model)
	data := []types.MetricDatum{
		datum("ScenePlans", 1, types.StandardUnitCount, dims),
	}
	if sceneCount > 0 {
		data = append(data, datum("PlannedScenes", float64(sceneCount), types.StandardUnitCount, dims))
	}
	m.publish(data...)
}

// RecordGenerationDuration publishes how long one gateway round trip took.
func (m *Client) RecordGenerationDuration(duration time.Duration, success bool) {
	if m == nil || !m.enabled {
		return
	}

	dims := m.dims("Success", strconv.FormatBool(success))
	m.publish(datum("GenerationDuration", float64(duration.Milliseconds()), types.StandardUnitMilliseconds, dims))
}

// dims pairs the given dimension with the environment tag every metric
// carries.
func (m *Client) dims(name, value string) []types.Dimension {
	return []types.Dimension{
		{Name: aws.String(name), Value: aws.String(value)},
		{Name: aws.String("Environment"), Value: aws.String(m.environment)},
	}
}

func datum(name string, value float64, unit types.StandardUnit, dims []types.Dimension) types.MetricDatum {
	return types.MetricDatum{
		MetricName: aws.String(name),
		Value:      aws.Float64(value),
		Unit:       unit,
		Timestamp:  aws.Time(time.Now()),
		Dimensions: dims,
	}
}

// publish ships the datums in one asynchronous PutMetricData call so metric
// recording never blocks a request.
func (m *Client) publish(data ...types.MetricDatum) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), putMetricTimeout)
		defer cancel()

		_, err := m.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
			Namespace:  aws.String(namespace),
			MetricData: data,
		})
		if err != nil {
			log.Printf("Failed to publish CloudWatch metrics: %v", err)
		}
	}()
}
