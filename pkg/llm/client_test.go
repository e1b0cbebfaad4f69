package llm

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/shipdesk/shipdesk/pkg/config"
	"github.com/shipdesk/shipdesk/pkg/models"
	pb "github.com/shipdesk/shipdesk/proto"
)

const validPayload = `{
	"intent": "delivery_delay",
	"confidence": 0.9,
	"customer_response": "Your parcel ships tomorrow.",
	"summary": "Late delivery."
}`

// fakeGateway scripts the gateway responses per attempt.
type fakeGateway struct {
	responses []func() (*pb.AnalyzeResponse, error)
	calls     int
	lastReq   *pb.AnalyzeRequest
}

func (f *fakeGateway) Analyze(ctx context.Context, in *pb.AnalyzeRequest, opts ...grpc.CallOption) (*pb.AnalyzeResponse, error) {
	f.lastReq = in
	i := f.calls
	f.calls++
	if i >= len(f.responses) {
		i = len(f.responses) - 1
	}
	return f.responses[i]()
}

func ok(payload string) func() (*pb.AnalyzeResponse, error) {
	return func() (*pb.AnalyzeResponse, error) {
		return &pb.AnalyzeResponse{PayloadJson: payload}, nil
	}
}

func fail(err error) func() (*pb.AnalyzeResponse, error) {
	return func() (*pb.AnalyzeResponse, error) { return nil, err }
}

func testClient(gw *fakeGateway) *Client {
	return &Client{
		client:  gw,
		cfg:     &config.LLMConfig{Provider: "openai", Model: "gpt-4o", Timeout: time.Second},
		log:     slog.Default(),
		backoff: time.Millisecond,
	}
}

func TestAnalyzeParsesPayload(t *testing.T) {
	gw := &fakeGateway{responses: []func() (*pb.AnalyzeResponse, error){ok(validPayload)}}
	c := testClient(gw)

	result, err := c.Analyze(context.Background(), "system", "user")
	require.NoError(t, err)
	assert.Equal(t, "delivery_delay", result.Intent)
	assert.InDelta(t, 0.9, result.Confidence, 1e-9)

	require.NotNil(t, gw.lastReq)
	assert.Equal(t, "gpt-4o", gw.lastReq.Model)
	assert.Equal(t, "system", gw.lastReq.SystemPrompt)
	assert.Equal(t, "user", gw.lastReq.UserPrompt)
}

func TestAnalyzeSchemaViolationIsPermanent(t *testing.T) {
	gw := &fakeGateway{responses: []func() (*pb.AnalyzeResponse, error){ok(`{"confidence": 0.9}`)}}
	c := testClient(gw)

	_, err := c.Analyze(context.Background(), "system", "user")
	var se *models.SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "intent", se.Field)
	// Never retried: re-asking the model is not a transport concern.
	assert.Equal(t, 1, gw.calls)
}

func TestAnalyzeRetriesTransportErrors(t *testing.T) {
	gw := &fakeGateway{responses: []func() (*pb.AnalyzeResponse, error){
		fail(errors.New("connection refused")),
		fail(errors.New("connection refused")),
		ok(validPayload),
	}}
	c := testClient(gw)

	result, err := c.Analyze(context.Background(), "system", "user")
	require.NoError(t, err)
	assert.Equal(t, "delivery_delay", result.Intent)
	assert.Equal(t, 3, gw.calls)
}

func TestAnalyzeExhaustsRetries(t *testing.T) {
	gw := &fakeGateway{responses: []func() (*pb.AnalyzeResponse, error){
		fail(errors.New("connection refused")),
	}}
	c := testClient(gw)

	_, err := c.Analyze(context.Background(), "system", "user")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, maxAttempts, gw.calls)
}

func TestAnalyzeStopsOnContextCancel(t *testing.T) {
	gw := &fakeGateway{responses: []func() (*pb.AnalyzeResponse, error){
		fail(errors.New("connection refused")),
	}}
	c := testClient(gw)
	c.backoff = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := c.Analyze(ctx, "system", "user")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Less(t, time.Since(start), 5*time.Second)
}
