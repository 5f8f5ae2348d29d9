package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/de-tools/order-reports/pkg/adapters"
	"github.com/de-tools/order-reports/pkg/models/api"
)

var (
	ErrUnknownKind  = errors.New("unknown report kind")
	ErrInvalidInput = errors.New("invalid report input")
)

// RunFunc decodes a JSON record from body and exports it.
type RunFunc func(ctx context.Context, e *Exporter, body io.Reader) (Result, error)

// Kind is a named report type that can be exported from a JSON document
type Kind struct {
	Name        string
	Description string
	Run         RunFunc
}

// Registry manages the report kinds exposed to the CLI and the web API
type Registry interface {
	// Register adds a new report kind
	Register(kind Kind) error
	// Get returns the kind registered under name
	Get(name string) (Kind, error)
	// ListKinds returns the registered kinds sorted by name
	ListKinds() []Kind
}

type registry struct {
	mu    sync.RWMutex
	kinds map[string]Kind
}

func NewRegistry() Registry {
	return &registry{
		kinds: make(map[string]Kind),
	}
}

func (r *registry) Register(kind Kind) error {
	if kind.Name == "" {
		return fmt.Errorf("kind name cannot be empty")
	}
	if kind.Run == nil {
		return fmt.Errorf("run func cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.kinds[kind.Name]; exists {
		return fmt.Errorf("kind %q is already registered", kind.Name)
	}

	r.kinds[kind.Name] = kind
	return nil
}

func (r *registry) Get(name string) (Kind, error) {
	r.mu.RLock()
	kind, exists := r.kinds[name]
	r.mu.RUnlock()

	if !exists {
		return Kind{}, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return kind, nil
}

func (r *registry) ListKinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]Kind, 0, len(r.kinds))
	for _, k := range r.kinds {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i].Name < kinds[j].Name })
	return kinds
}

// MustRegister is like Register but panics if the kind cannot be registered.
func MustRegister(r Registry, kind Kind) {
	if err := r.Register(kind); err != nil {
		panic(fmt.Sprintf("export: register %q: %v", kind.Name, err))
	}
}

const (
	KindOrder   = "order"
	KindDaily   = "daily"
	KindWeekly  = "weekly"
	KindMonthly = "monthly"
	KindAll     = "all"
)

// DefaultRegistry registers one kind per Exporter operation.
func DefaultRegistry() Registry {
	r := NewRegistry()
	for _, k := range []Kind{
		{
			Name:        KindOrder,
			Description: "Single order with its line items",
			Run: func(ctx context.Context, e *Exporter, body io.Reader) (Result, error) {
				in, err := decode[api.OrderExport](body)
				if err != nil {
					return Result{}, err
				}
				return e.ExportOrder(ctx, adapters.MapOrderExportApiToDomain(in))
			},
		},
		{
			Name:        KindDaily,
			Description: "Daily sales report",
			Run: func(ctx context.Context, e *Exporter, body io.Reader) (Result, error) {
				in, err := decode[api.DailyReport](body)
				if err != nil {
					return Result{}, err
				}
				report, err := adapters.MapDailyReportApiToDomain(in, e.location())
				if err != nil {
					return Result{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
				}
				return e.ExportDailyReport(ctx, report)
			},
		},
		{
			Name:        KindWeekly,
			Description: "Weekly sales report",
			Run: func(ctx context.Context, e *Exporter, body io.Reader) (Result, error) {
				in, err := decode[api.WeeklyReport](body)
				if err != nil {
					return Result{}, err
				}
				report, err := adapters.MapWeeklyReportApiToDomain(in, e.location())
				if err != nil {
					return Result{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
				}
				return e.ExportWeeklyReport(ctx, report)
			},
		},
		{
			Name:        KindMonthly,
			Description: "Monthly sales report",
			Run: func(ctx context.Context, e *Exporter, body io.Reader) (Result, error) {
				in, err := decode[api.MonthlyReport](body)
				if err != nil {
					return Result{}, err
				}
				return e.ExportMonthlyReport(ctx, adapters.MapMonthlyReportApiToDomain(in))
			},
		},
		{
			Name:        KindAll,
			Description: "Every order with a status breakdown",
			Run: func(ctx context.Context, e *Exporter, body io.Reader) (Result, error) {
				in, err := decode[api.OrderList](body)
				if err != nil {
					return Result{}, err
				}
				return e.ExportAllOrders(ctx, adapters.MapOrderListApiToDomain(in))
			},
		},
	} {
		MustRegister(r, k)
	}
	return r
}

func decode[T any](body io.Reader) (T, error) {
	var v T
	if err := json.NewDecoder(body).Decode(&v); err != nil {
		return v, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := api.Validate(v); err != nil {
		return v, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return v, nil
}
