package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/de-tools/order-reports/pkg/adapters"
	"github.com/de-tools/order-reports/pkg/format"
	"github.com/de-tools/order-reports/pkg/models/api"
	"github.com/de-tools/order-reports/pkg/models/domain"
	exportsvc "github.com/de-tools/order-reports/pkg/services/export"
	"github.com/de-tools/order-reports/pkg/workbook/destination"
	"github.com/de-tools/order-reports/pkg/workbook/excel"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 8 << 20

type Handler struct {
	registry  exportsvc.Registry
	formatter *format.Formatter
	store     destination.Destination
}

// NewHandler serves exports as downloads; store, when not nil, is where
// stored exports are delivered.
func NewHandler(registry exportsvc.Registry, formatter *format.Formatter, store destination.Destination) *Handler {
	return &Handler{
		registry:  registry,
		formatter: formatter,
		store:     store,
	}
}

func (h *Handler) ListKinds(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	response := []api.ReportKind{}
	for _, k := range h.registry.ListKinds() {
		response = append(response, adapters.MapReportKindDomainToApi(k.Name, k.Description))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode report kinds")
	}
}

// Download streams the workbook back as an attachment.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	name := chi.URLParam(r, "kind")

	kind, err := h.registry.Get(name)
	if err != nil {
		writeError(w, err)
		return
	}

	policy, err := reconcilePolicy(r)
	if err != nil {
		writeError(w, err)
		return
	}

	dest := destination.NewHTTP(w)
	exporter := h.newExporter(dest, policy)

	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	result, err := kind.Run(ctx, exporter, body)
	if err != nil {
		if dest.Written() {
			logger.Error().Err(err).Str("kind", name).Msg("export failed after response started")
			return
		}
		logger.Warn().Err(err).Str("kind", name).Msg("export failed")
		writeError(w, err)
		return
	}

	logger.Info().Str("kind", name).Str("file", result.FileName).Msg("export downloaded")
}

// Store delivers the workbook to the configured destination and describes
// the result.
func (h *Handler) Store(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	name := chi.URLParam(r, "kind")

	if h.store == nil {
		http.Error(w, "no export destination configured", http.StatusNotImplemented)
		return
	}

	kind, err := h.registry.Get(name)
	if err != nil {
		writeError(w, err)
		return
	}

	policy, err := reconcilePolicy(r)
	if err != nil {
		writeError(w, err)
		return
	}

	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	result, err := kind.Run(ctx, h.newExporter(h.store, policy), body)
	if err != nil {
		logger.Warn().Err(err).Str("kind", name).Msg("export failed")
		writeError(w, err)
		return
	}

	response := api.ExportResult{
		FileName:    result.FileName,
		Destination: h.store.String(),
		Sheets:      []api.SheetSummary{},
	}
	for _, s := range result.Sheets {
		response.Sheets = append(response.Sheets, api.SheetSummary{Name: s.Name, Rows: s.Rows})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().
			Err(err).
			Str("kind", name).
			Msg("failed to encode export result")
	}
}

func (h *Handler) newExporter(dest destination.Destination, policy exportsvc.ReconcilePolicy) *exportsvc.Exporter {
	return exportsvc.NewExporter(h.formatter, excel.NewWriter(dest)).
		WithReconcilePolicy(policy)
}

// reconcilePolicy reads the strict query parameter. Strict requests reject
// orders whose total does not reconcile; others only log the mismatch.
func reconcilePolicy(r *http.Request) (exportsvc.ReconcilePolicy, error) {
	raw := r.URL.Query().Get("strict")
	if raw == "" {
		return exportsvc.ReconcileWarn, nil
	}
	strict, err := strconv.ParseBool(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: strict must be a boolean: %q", exportsvc.ErrInvalidInput, raw)
	}
	if strict {
		return exportsvc.ReconcileReject, nil
	}
	return exportsvc.ReconcileWarn, nil
}

func writeError(w http.ResponseWriter, err error) {
	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.Is(err, exportsvc.ErrUnknownKind):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &maxBytesErr):
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
	case errors.Is(err, exportsvc.ErrInvalidInput), errors.Is(err, domain.ErrTotalMismatch):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "failed to export report", http.StatusInternalServerError)
	}
}
