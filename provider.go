package tracefmt

import (
	"context"
	"io"
	"math/rand"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/multierr"
)

// Provider returns a new *TracerProviderBuilder instance.
func Provider() *TracerProviderBuilder {
	return &TracerProviderBuilder{}
}

// TracerProviderBuilder is an opinionated builder-pattern constructor
// for a tracesdk.TracerProvider that can export spans to stdout, the
// Jaeger HTTP API or an OpenTelemetry Collector gRPC proxy, and that
// can render fields of every ended span into log output through a
// RenderingProcessor.
type TracerProviderBuilder struct {
	exporters []tracesdk.SpanExporter
	errs      []error
	tpOpts    []tracesdk.TracerProviderOption
	attrs     []attribute.KeyValue
	sync      bool
}

// WithInsecureOTelExporter registers an exporter to an OpenTelemetry
// Collector on the given address, which defaults to "localhost:55680"
// if addr is empty. The Collector speaks gRPC, hence, don't add any
// "http(s)://" prefix to addr. Additional options can be supplied that
// can override the default behavior.
func (b *TracerProviderBuilder) WithInsecureOTelExporter(ctx context.Context, addr string, opts ...otlptracegrpc.Option) *TracerProviderBuilder {
	if len(addr) == 0 {
		addr = "localhost:55680"
	}

	defaultOpts := []otlptracegrpc.Option{
		otlptracegrpc.WithEndpoint(addr),
		otlptracegrpc.WithInsecure(),
	}
	// Make sure to order the defaultOpts first, so opts can override the default ones
	opts = append(defaultOpts, opts...)
	exp, err := otlptracegrpc.New(ctx, opts...)
	b.exporters = append(b.exporters, exp)
	b.errs = append(b.errs, err)
	return b
}

// WithInsecureJaegerExporter registers an exporter to Jaeger using
// Jaeger's own HTTP API. The default address is
// "http://localhost:14268/api/traces" if addr is left empty.
// Additional options can be supplied that can override the default
// behavior.
func (b *TracerProviderBuilder) WithInsecureJaegerExporter(addr string, opts ...jaeger.CollectorEndpointOption) *TracerProviderBuilder {
	defaultOpts := []jaeger.CollectorEndpointOption{}
	// Only override if addr is set. Default is "http://localhost:14268/api/traces"
	if len(addr) != 0 {
		defaultOpts = append(defaultOpts, jaeger.WithEndpoint(addr))
	}
	opts = append(defaultOpts, opts...)
	exp, err := jaeger.New(jaeger.WithCollectorEndpoint(opts...))
	b.exporters = append(b.exporters, exp)
	b.errs = append(b.errs, err)
	return b
}

// WithStdoutExporter exports pretty-formatted telemetry data to
// os.Stdout, or another writer if stdouttrace.WithWriter(w) is
// supplied as an option.
func (b *TracerProviderBuilder) WithStdoutExporter(opts ...stdouttrace.Option) *TracerProviderBuilder {
	defaultOpts := []stdouttrace.Option{
		stdouttrace.WithPrettyPrint(),
	}
	opts = append(defaultOpts, opts...)
	exp, err := stdouttrace.New(opts...)
	b.exporters = append(b.exporters, exp)
	b.errs = append(b.errs, err)
	return b
}

// WithRenderedFields registers a RenderingProcessor so that the given
// fields of every ended span are rendered into log output. A nil log
// falls back to GetGlobalLogger().
func (b *TracerProviderBuilder) WithRenderedFields(log Logger, fields ...NamedField) *TracerProviderBuilder {
	pb := Processor(log)
	for _, f := range fields {
		pb = pb.WithField(f.Key, f.Renderer)
	}
	return b.WithOptions(tracesdk.WithSpanProcessor(pb.Build()))
}

// WithOptions allows configuring the TracerProvider in various ways,
// for example tracesdk.WithSpanProcessor(sp) or
// tracesdk.WithIDGenerator().
func (b *TracerProviderBuilder) WithOptions(opts ...tracesdk.TracerProviderOption) *TracerProviderBuilder {
	b.tpOpts = append(b.tpOpts, opts...)
	return b
}

// WithAttributes allows registering more default attributes for traces
// created by this TracerProvider. By default semantic conventions of
// version v1.4.0 are used, with "service.name" => "tracefmt".
func (b *TracerProviderBuilder) WithAttributes(attrs ...attribute.KeyValue) *TracerProviderBuilder {
	b.attrs = append(b.attrs, attrs...)
	return b
}

// Synchronous allows configuring whether the exporters should export
// in synchronous mode, which is useful for avoiding flakes in unit
// tests. The default mode is batching. DO NOT use in production.
func (b *TracerProviderBuilder) Synchronous() *TracerProviderBuilder {
	b.sync = true
	return b
}

// DeterministicIDs enables deterministic trace and span IDs. Useful
// for unit tests. DO NOT use in production.
func (b *TracerProviderBuilder) DeterministicIDs(seed int64) *TracerProviderBuilder {
	return b.WithOptions(tracesdk.WithIDGenerator(deterministicWithSeed(seed)))
}

// Build builds the tracesdk.TracerProvider.
func (b *TracerProviderBuilder) Build() (*tracesdk.TracerProvider, error) {
	// Default to discard all trace output, if no exporter is configured
	if len(b.exporters) == 0 {
		b = b.WithStdoutExporter(stdouttrace.WithWriter(io.Discard))
	}
	// Combine and filter the errors from the exporter building
	if err := multierr.Combine(b.errs...); err != nil {
		return nil, err
	}

	// By default, set the service name to "tracefmt".
	// This can be overridden through WithAttributes
	attrs := []attribute.KeyValue{
		semconv.ServiceNameKey.String("tracefmt"),
	}
	// Make sure to order the default attrs first, so b.attrs can override the default ones
	attrs = append(attrs, b.attrs...)

	tpOpts := []tracesdk.TracerProviderOption{
		tracesdk.WithResource(resource.NewWithAttributes(semconv.SchemaURL, attrs...)),
	}

	for _, exporter := range b.exporters {
		// The non-syncing mode shall only be used in testing. The batching mode must be used in production.
		if b.sync {
			tpOpts = append(tpOpts, tracesdk.WithSyncer(exporter))
			continue
		}

		tpOpts = append(tpOpts, tracesdk.WithBatcher(exporter))
	}

	// Make sure to order the default options first, so b.tpOpts can override them
	tpOpts = append(tpOpts, b.tpOpts...)
	return tracesdk.NewTracerProvider(tpOpts...), nil
}

// InstallGlobally builds the TracerProvider and registers it globally
// using otel.SetTracerProvider(tp).
func (b *TracerProviderBuilder) InstallGlobally() error {
	tp, err := b.Build()
	if err != nil {
		return err
	}
	otel.SetTracerProvider(tp)
	return nil
}

type deterministicIDGenerator struct {
	mu  *sync.Mutex
	rnd *rand.Rand
}

func (g *deterministicIDGenerator) NewSpanID(context.Context, trace.TraceID) trace.SpanID {
	g.mu.Lock()
	defer g.mu.Unlock()
	sid := trace.SpanID{}
	_, _ = g.rnd.Read(sid[:])
	return sid
}

func (g *deterministicIDGenerator) NewIDs(context.Context) (trace.TraceID, trace.SpanID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	tid := trace.TraceID{}
	_, _ = g.rnd.Read(tid[:])
	sid := trace.SpanID{}
	_, _ = g.rnd.Read(sid[:])
	return tid, sid
}

func deterministicWithSeed(seed int64) tracesdk.IDGenerator {
	return &deterministicIDGenerator{
		mu: &sync.Mutex{},
		// Use the "weak" random number generator math/rand, not the more secure
		// crypto/rand because we specifically don't want secure randomness but
		// deterministicness for unit tests.
		//nolint:gosec
		rnd: rand.New(rand.NewSource(seed)),
	}
}
