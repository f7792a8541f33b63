package tracefmt_test

import (
	"strings"
	"testing"
	"time"

	"github.com/snakefoot/tracefmt"
	"github.com/snakefoot/tracefmt/tracefmtfakes"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"
)

func fakeSinkSpan() *tracefmt.SpanData {
	tid, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	sid, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	return &tracefmt.SpanData{
		Context: trace.NewSpanContext(trace.SpanContextConfig{TraceID: tid, SpanID: sid}),
		Start:   time.Date(2021, 8, 25, 12, 0, 0, 0, time.UTC),
		TagItems: []tracefmt.Pair{
			{Key: "a", Value: "1"},
			{Key: "b", Value: nil},
		},
	}
}

func TestRenderAbsentSpanWritesNothing(t *testing.T) {
	sink := &tracefmtfakes.FakeSink{}
	tracefmt.Renderer().Build().Render(nil, sink)
	assert.Equal(t, 0, sink.WriteStringCallCount())
}

func TestRenderWritesIncrementally(t *testing.T) {
	sink := &tracefmtfakes.FakeSink{}
	r := tracefmt.Renderer().WithField(tracefmt.FieldTags).Build()
	r.Render(fakeSinkSpan(), sink)

	// The flat form is streamed in pieces; only the concatenation is
	// part of the contract.
	var sb strings.Builder
	for i := 0; i < sink.WriteStringCallCount(); i++ {
		sb.WriteString(sink.WriteStringArgsForCall(i))
	}
	assert.Equal(t, "a=1,b", sb.String())
}

func TestRenderIgnoresSinkErrors(t *testing.T) {
	sink := &tracefmtfakes.FakeSink{}
	sink.WriteStringReturns(0, assert.AnError)

	r := tracefmt.Renderer().WithField(tracefmt.FieldTraceID).Build()
	r.Render(fakeSinkSpan(), sink)
	assert.Equal(t, 1, sink.WriteStringCallCount())
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", sink.WriteStringArgsForCall(0))
}
