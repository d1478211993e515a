// Package server exposes the loan book and the schedule calculator over HTTP.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/iwvelando/loan-schedule/internal/book"
	"github.com/iwvelando/loan-schedule/internal/i18n"
	"github.com/iwvelando/loan-schedule/internal/metrics"
	"github.com/iwvelando/loan-schedule/pkg/constants"
	"github.com/iwvelando/loan-schedule/pkg/datetime"
	"github.com/iwvelando/loan-schedule/pkg/loans"
	"github.com/iwvelando/loan-schedule/pkg/mathutil"
	"github.com/iwvelando/loan-schedule/pkg/output"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Options tunes the handler. Zero values select defaults.
type Options struct {
	MaxRequestSize int64
	Version        string
	Locale         string
	// Now is the clock used when a request does not pin "now" itself.
	Now func() time.Time
}

type handler struct {
	logger         *zap.Logger
	book           *book.Book
	maxRequestSize int64
	version        string
	locale         string
	now            func() time.Time
}

// NewHandler constructs the HTTP handler that serves the loan API.
func NewHandler(logger *zap.Logger, loanBook *book.Book, opts Options) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loanBook == nil {
		loanBook = book.New(logger)
	}

	h := &handler{
		logger:         logger,
		book:           loanBook,
		maxRequestSize: opts.MaxRequestSize,
		version:        strings.TrimSpace(opts.Version),
		locale:         strings.TrimSpace(opts.Locale),
		now:            opts.Now,
	}
	if h.maxRequestSize <= 0 {
		h.maxRequestSize = constants.DefaultMaxRequestSizeBytes
	}
	if h.version == "" {
		h.version = "dev"
	}
	if h.locale == "" {
		h.locale = constants.DefaultLocale
	}
	if h.now == nil {
		h.now = time.Now
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(h.instrument)
	r.Use(h.limitBody)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/version", h.handleVersion)
		r.Get("/i18n", h.handleI18n)
		r.Post("/schedule", h.handleSchedule)
		r.Get("/comparison", h.handleComparison)

		r.Route("/loans", func(r chi.Router) {
			r.Get("/", h.handleListLoans)
			r.Post("/", h.handleAddLoan)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGetLoan)
				r.Put("/", h.handleUpdateLoan)
				r.Delete("/", h.handleRemoveLoan)
				r.Get("/schedule", h.handleLoanSchedule)
				r.Get("/export.csv", h.handleExport(constants.OutputFormatCSV))
				r.Get("/export.xlsx", h.handleExport(constants.OutputFormatXLSX))
			})
		})
	})

	return r
}

type scheduleRequest struct {
	loans.Loan
	Now string `json:"now,omitempty"`
}

type scheduleResponse struct {
	ID       string                `json:"id,omitempty"`
	Name     string                `json:"name,omitempty"`
	Schedule loans.Schedule        `json:"schedule"`
	Summary  loans.ProgressSummary `json:"summary"`
	CSV      string                `json:"csv"`
}

type loansResponse struct {
	Loans []book.View `json:"loans"`
}

type comparisonResponse struct {
	Loans         []book.ComparisonPoint `json:"loans"`
	TotalInterest float64                `json:"totalInterest"`
}

type i18nResponse struct {
	Lang      string            `json:"lang"`
	Direction string            `json:"direction"`
	Languages []string          `json:"languages"`
	Labels    map[string]string `json:"labels"`
	Actions   []i18n.Action     `json:"actions"`
	Methods   []methodOption    `json:"methods"`
}

// methodOption is one entry of the amortization method picker.
type methodOption struct {
	Value loans.Method `json:"value"`
	Label string       `json:"label"`
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleI18n(w http.ResponseWriter, r *http.Request) {
	lang := strings.TrimSpace(r.URL.Query().Get("lang"))
	if lang == "" {
		lang = r.Header.Get("Accept-Language")
	}
	if strings.TrimSpace(lang) == "" {
		lang = h.locale
	}

	t := i18n.New(i18n.Match(lang))
	methods := make([]methodOption, 0, len(loans.Methods()))
	for _, method := range loans.Methods() {
		methods = append(methods, methodOption{Value: method, Label: t.T(output.MethodLabelKey(method))})
	}
	h.writeJSON(w, http.StatusOK, i18nResponse{
		Lang:      t.Lang(),
		Direction: t.Direction(),
		Languages: i18n.Languages(),
		Labels:    t.Labels(),
		Actions:   t.Actions(),
		Methods:   methods,
	})
}

// handleSchedule computes a schedule for a loan that is not in the book.
func (h *handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSchedule"

	var req scheduleRequest
	if !h.decodeJSON(w, r, &req, op) {
		return
	}

	now := h.now()
	if strings.TrimSpace(req.Now) != "" {
		parsed, ok := datetime.ParseDate(req.Now)
		if !ok {
			h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("invalid now %q: expected YYYY-MM-DD", req.Now), op)
			return
		}
		now = parsed
	}

	schedule := book.Compute(req.Loan)
	h.writeJSON(w, http.StatusOK, scheduleResponse{
		Schedule: schedule,
		Summary:  loans.Summarize(req.Loan, schedule, now),
		CSV:      output.CsvString(schedule),
	})
}

func (h *handler) handleComparison(w http.ResponseWriter, r *http.Request) {
	now, ok := h.requestNow(w, r, "server.handleComparison")
	if !ok {
		return
	}
	points := h.book.Comparison(now)
	total := 0.0
	for _, point := range points {
		total += point.TotalInterest
	}
	h.writeJSON(w, http.StatusOK, comparisonResponse{Loans: points, TotalInterest: mathutil.Round(total)})
}

func (h *handler) handleListLoans(w http.ResponseWriter, r *http.Request) {
	now, ok := h.requestNow(w, r, "server.handleListLoans")
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, loansResponse{Loans: h.book.Views(now)})
}

func (h *handler) handleAddLoan(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleAddLoan"

	now, ok := h.requestNow(w, r, op)
	if !ok {
		return
	}
	var in book.Input
	if !h.decodeJSON(w, r, &in, op) {
		return
	}
	record := h.book.Add(in)
	h.logger.Info("loan added",
		zap.String("op", op),
		zap.String("id", record.ID),
		zap.String("name", record.Name),
	)
	h.writeJSON(w, http.StatusCreated, book.Derive(record, now))
}

func (h *handler) handleGetLoan(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleGetLoan"

	now, ok := h.requestNow(w, r, op)
	if !ok {
		return
	}
	view, err := h.book.View(chi.URLParam(r, "id"), now)
	if err != nil {
		h.respondBookError(w, err, op)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

func (h *handler) handleUpdateLoan(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleUpdateLoan"

	now, ok := h.requestNow(w, r, op)
	if !ok {
		return
	}
	var in book.Input
	if !h.decodeJSON(w, r, &in, op) {
		return
	}
	record, err := h.book.Update(chi.URLParam(r, "id"), in)
	if err != nil {
		h.respondBookError(w, err, op)
		return
	}
	h.writeJSON(w, http.StatusOK, book.Derive(record, now))
}

func (h *handler) handleRemoveLoan(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleRemoveLoan"

	id := chi.URLParam(r, "id")
	if err := h.book.Remove(id); err != nil {
		h.respondBookError(w, err, op)
		return
	}
	h.logger.Info("loan removed", zap.String("op", op), zap.String("id", id))
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) handleLoanSchedule(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleLoanSchedule"

	now, ok := h.requestNow(w, r, op)
	if !ok {
		return
	}
	view, err := h.book.View(chi.URLParam(r, "id"), now)
	if err != nil {
		h.respondBookError(w, err, op)
		return
	}
	h.writeJSON(w, http.StatusOK, scheduleResponse{
		ID:       view.ID,
		Name:     view.Name,
		Schedule: view.Schedule,
		Summary:  view.Summary,
		CSV:      output.CsvString(view.Schedule),
	})
}

func (h *handler) handleExport(format string) http.HandlerFunc {
	op := "server.handleExport." + format
	return func(w http.ResponseWriter, r *http.Request) {
		record, err := h.book.Get(chi.URLParam(r, "id"))
		if err != nil {
			h.respondBookError(w, err, op)
			return
		}

		var buf bytes.Buffer
		if err := output.Write(&buf, format, book.Compute(record.Loan)); err != nil {
			h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to export schedule: %v", err), op)
			return
		}
		metrics.Exports.WithLabelValues(format).Inc()

		w.Header().Set("Content-Type", output.ContentType(format))
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", output.FileName(record.Name, format)))
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		w.WriteHeader(http.StatusOK)
		if _, err := buf.WriteTo(w); err != nil {
			h.logger.Warn("failed to write export",
				zap.String("op", op),
				zap.String("id", record.ID),
				zap.Error(err),
			)
		}
	}
}

// requestNow resolves the ?now= query parameter, defaulting to the clock.
func (h *handler) requestNow(w http.ResponseWriter, r *http.Request, op string) (time.Time, bool) {
	value := strings.TrimSpace(r.URL.Query().Get("now"))
	if value == "" {
		return h.now(), true
	}
	parsed, ok := datetime.ParseDate(value)
	if !ok {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("invalid now %q: expected YYYY-MM-DD", value), op)
		return time.Time{}, false
	}
	return parsed, true
}

func (h *handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize), op)
			return false
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return false
	}
	return true
}

func (h *handler) respondBookError(w http.ResponseWriter, err error, op string) {
	if errors.Is(err, book.ErrLoanNotFound) {
		h.respondErrorWithOp(w, http.StatusNotFound, err.Error(), op)
		return
	}
	h.respondErrorWithOp(w, http.StatusInternalServerError, err.Error(), op)
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	if h.logger != nil {
		h.logger.Error("request failed",
			zap.String("op", op),
			zap.Int("status", status),
			zap.String("error", msg),
		)
	}
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Warn("failed to encode response", zap.String("op", "server.writeJSON"), zap.Error(err))
	}
}

func (h *handler) limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
		}
		next.ServeHTTP(w, r)
	})
}

// instrument records request counts and latency by route pattern.
func (h *handler) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		elapsed := time.Since(start)

		metrics.HTTPRequests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
		metrics.HTTPDuration.WithLabelValues(route).Observe(elapsed.Seconds())

		h.logger.Debug("request served",
			zap.String("op", "server.instrument"),
			zap.String("method", r.Method),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Duration("duration", elapsed),
			zap.String("requestId", middleware.GetReqID(r.Context())),
		)
	})
}
