package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/workwatchhq/agent/internal/domain"
)

const (
	serviceName    = "workwatch-agent"
	serviceVersion = "1.0.0"
)

// Exporter exports tracking telemetry to an OTEL Collector.
type Exporter struct {
	provider      *sdkmetric.MeterProvider
	meter         metric.Meter
	sessionsTotal metric.Int64Counter
	sessionDur    metric.Float64Histogram
	inputScore    metric.Int64Histogram
	alertsTotal   metric.Int64Counter
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	sessionsTotal, err := meter.Int64Counter(
		"workwatch_app_sessions_total",
		metric.WithDescription("Closed app sessions"),
		metric.WithUnit("{session}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sessions counter: %w", err)
	}

	sessionDur, err := meter.Float64Histogram(
		"workwatch_app_session_duration_seconds",
		metric.WithDescription("App session duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration histogram: %w", err)
	}

	inputScore, err := meter.Int64Histogram(
		"workwatch_activity_score",
		metric.WithDescription("Weighted input score per flush interval"),
		metric.WithUnit("{input}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating activity histogram: %w", err)
	}

	alertsTotal, err := meter.Int64Counter(
		"workwatch_alerts_total",
		metric.WithDescription("Alerts emitted"),
		metric.WithUnit("{alert}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating alerts counter: %w", err)
	}

	return &Exporter{
		provider:      provider,
		meter:         meter,
		sessionsTotal: sessionsTotal,
		sessionDur:    sessionDur,
		inputScore:    inputScore,
		alertsTotal:   alertsTotal,
	}, nil
}

// ExportMetric exports one flushed activity metric.
func (e *Exporter) ExportMetric(ctx context.Context, m *domain.ActivityMetric) error {
	opt := metric.WithAttributes(
		attribute.String("user_id", m.UserID),
		attribute.String("activity_level", string(m.ActivityLevel)),
	)
	e.inputScore.Record(ctx, int64(m.KeysPerMinute+2*m.ClicksPerMinute), opt)
	return nil
}

// ExportAppSession exports a closed app session.
func (e *Exporter) ExportAppSession(ctx context.Context, s *domain.AppSession) error {
	opt := metric.WithAttributes(
		attribute.String("user_id", s.UserID),
		attribute.String("category", string(s.Category)),
	)
	e.sessionsTotal.Add(ctx, 1, opt)
	e.sessionDur.Record(ctx, float64(s.DurationMs)/1000.0, opt)
	return nil
}

// ExportAlert exports an emitted alert.
func (e *Exporter) ExportAlert(ctx context.Context, a *domain.Alert) error {
	e.alertsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("user_id", a.UserID),
		attribute.String("type", string(a.Type)),
		attribute.String("severity", string(a.Severity)),
	))
	return nil
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
