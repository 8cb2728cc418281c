package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/architeacher/svc-ticket-aggregator/internal/adapters/http/mappers"
	custommw "github.com/architeacher/svc-ticket-aggregator/internal/adapters/middleware"
	"github.com/architeacher/svc-ticket-aggregator/internal/domain"
	"github.com/architeacher/svc-ticket-aggregator/internal/infrastructure"
	"github.com/architeacher/svc-ticket-aggregator/internal/ports"
	"github.com/architeacher/svc-ticket-aggregator/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

type RequestHandler struct {
	catalog *service.CatalogService
	tickets *service.TicketService
	sync    *service.SyncService
	health  ports.HealthChecker
	logger  infrastructure.Logger
}

func NewRequestHandler(
	catalog *service.CatalogService,
	tickets *service.TicketService,
	sync *service.SyncService,
	health ports.HealthChecker,
	logger infrastructure.Logger,
) *RequestHandler {
	return &RequestHandler{
		catalog: catalog,
		tickets: tickets,
		sync:    sync,
		health:  health,
		logger:  logger,
	}
}

// NewRouter wires the full HTTP surface, middleware included.
func NewRouter(h *RequestHandler, logger infrastructure.Logger, metrics infrastructure.Metrics) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(custommw.NewAccessLogger(logger.Logger).Middleware)
	router.Use(custommw.NewMetricsMiddleware(metrics).Middleware)

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", h.HealthCheck)

		r.Route("/sync", func(r chi.Router) {
			r.Post("/trigger", h.TriggerSync)
			r.Post("/reset", h.ResetSync)
			r.Get("/status", h.SyncStatus)
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", h.ListEvents)
			r.Get("/{event_id}", h.GetEventDetails)
			r.Get("/{event_id}/seats", h.GetEventSeats)
		})

		r.Route("/tickets", func(r chi.Router) {
			r.Post("/", h.CreateTicket)
			r.Delete("/{ticket_id}", h.CancelTicket)
		})
	})

	router.Method(http.MethodGet, "/metrics", metrics.Handler())

	return router
}

// ListEvents serves the catalogue with date filtering and pagination.
func (h *RequestHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r)
	if err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "bad_request", "Invalid query parameters", err.Error())
		return
	}

	events, total, err := h.catalog.ListEvents(r.Context(), filter)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	results := make([]EventOut, 0, len(events))
	for _, event := range events {
		results = append(results, convertEventToOut(event))
	}

	resp := EventListResponse{
		Count:   total,
		Results: results,
	}

	if filter.Page*filter.PageSize < total {
		resp.Next = pageURL(r.URL, filter.Page+1)
	}

	if filter.Page > 1 {
		resp.Previous = pageURL(r.URL, filter.Page-1)
	}

	h.writeJSONResponse(w, http.StatusOK, resp)
}

func (h *RequestHandler) GetEventDetails(w http.ResponseWriter, r *http.Request) {
	eventID, ok := h.parseUUIDParam(w, r, "event_id")
	if !ok {
		return
	}

	event, err := h.catalog.GetEvent(r.Context(), eventID)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, convertEventToDetailOut(*event))
}

func (h *RequestHandler) GetEventSeats(w http.ResponseWriter, r *http.Request) {
	eventID, ok := h.parseUUIDParam(w, r, "event_id")
	if !ok {
		return
	}

	seats, err := h.catalog.FreeSeats(r.Context(), eventID)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, SeatsResponse{
		EventID:        eventID.String(),
		AvailableSeats: seats,
	})
}

// CreateTicket registers a visitor for an event.
func (h *RequestHandler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	var req CreateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "bad_request", "Invalid request body", err.Error())
		return
	}

	if headerKey := r.Header.Get("x-idempotency-key"); headerKey != "" {
		req.IdempotencyKey = headerKey
	}

	input, err := req.Validate()
	if err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "bad_request", "Invalid request", err.Error())
		return
	}

	ticketID, err := h.tickets.Create(r.Context(), input)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.writeJSONResponse(w, http.StatusCreated, CreateTicketResponse{TicketID: ticketID.String()})
}

func (h *RequestHandler) CancelTicket(w http.ResponseWriter, r *http.Request) {
	ticketID, ok := h.parseUUIDParam(w, r, "ticket_id")
	if !ok {
		return
	}

	if err := h.tickets.Cancel(r.Context(), ticketID); err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, CancelTicketResponse{Success: true})
}

// TriggerSync starts a catalogue pull in the background. A run already in
// flight is reported, not restarted. The optional changed_after query
// parameter forces the provider filter date for this run.
func (h *RequestHandler) TriggerSync(w http.ResponseWriter, r *http.Request) {
	forcedChangedAt := r.URL.Query().Get("changed_after")
	if forcedChangedAt != "" {
		if _, err := time.Parse("2006-01-02", forcedChangedAt); err != nil {
			h.writeErrorResponse(w, http.StatusBadRequest, "bad_request", "Invalid query parameters", "changed_after must be an ISO date (YYYY-MM-DD)")
			return
		}
	}

	meta, err := h.sync.Status(r.Context())
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	if meta != nil && meta.SyncStatus == domain.SyncStatusInProgress {
		h.writeJSONResponse(w, http.StatusOK, map[string]string{"status": "in progress"})
		return
	}

	go func() {
		if _, err := h.sync.Sync(context.WithoutCancel(r.Context()), forcedChangedAt); err != nil && !errors.Is(err, domain.ErrSyncInProgress) {
			h.logger.Error().Err(err).Msg("triggered sync failed")
		}
	}()

	h.writeJSONResponse(w, http.StatusOK, map[string]string{"status": "sync_started"})
}

// ResetSync force-clears a stuck sync lock.
func (h *RequestHandler) ResetSync(w http.ResponseWriter, r *http.Request) {
	if err := h.sync.Reset(r.Context()); err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, map[string]string{"status": "reset"})
}

func (h *RequestHandler) SyncStatus(w http.ResponseWriter, r *http.Request) {
	meta, err := h.sync.Status(r.Context())
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	resp := SyncStatusResponse{Status: string(domain.SyncStatusPending)}
	if meta != nil {
		resp.Status = string(meta.SyncStatus)
		resp.LastSyncAt = meta.LastSyncAt
		resp.LastChangedAt = meta.LastChangedAt
	}

	h.writeJSONResponse(w, http.StatusOK, resp)
}

func (h *RequestHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := h.health.CheckHealth(r.Context())

	statusCode := http.StatusOK
	if status.Status == domain.ProviderStatusFault {
		statusCode = http.StatusServiceUnavailable
	}

	h.writeJSONResponse(w, statusCode, status)
}

func (h *RequestHandler) parseUUIDParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	parsed, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "bad_request", "Invalid identifier", name+" must be a valid UUID")
		return uuid.Nil, false
	}

	return parsed, true
}

func (h *RequestHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode response body")
	}
}

func (h *RequestHandler) writeDomainError(w http.ResponseWriter, err error) {
	statusCode, code := mappers.MapDomainError(err)

	if statusCode >= http.StatusInternalServerError {
		h.logger.Error().Err(err).Msg("request failed")
	}

	h.writeErrorResponse(w, statusCode, code, err.Error(), "")
}

func (h *RequestHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, code, message, details string) {
	h.writeJSONResponse(w, statusCode, ErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// pageURL rebuilds the request URL with a different page number, keeping the
// other filters intact.
func pageURL(u *url.URL, page int) *string {
	clone := *u
	query := clone.Query()
	query.Set("page", strconv.Itoa(page))
	clone.RawQuery = query.Encode()

	s := clone.String()

	return &s
}
