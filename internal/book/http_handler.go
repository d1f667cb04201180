package book

import (
	"errors"
	"net/http"
	"strconv"

	"bookstore/internal/httpx"

	"github.com/rs/zerolog"
)

type HTTPHandler struct {
	service *Service
	log     zerolog.Logger
}

func NewHTTPHandler(service *Service, log zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, log: log}
}

// Create handles POST /api/v1/books.
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	fields, violations := DecodePayload(r.Body)
	if violations != nil {
		httpx.JSON(w, http.StatusUnprocessableEntity, "Validation Error", violations)
		return
	}
	p, violations := ValidatePayload(fields, false)
	if violations != nil {
		httpx.JSON(w, http.StatusUnprocessableEntity, "Validation Error", violations)
		return
	}

	created, err := h.service.Create(r.Context(), p)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, "Data Book Created Successfully", created)
}

// List handles GET /api/v1/books with optional search, page and limit
// query parameters. Absent or non-numeric page/limit fall back to the
// service defaults.
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	result, err := h.service.List(r.Context(), query.Get("search"), page, limit)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, "Data Book Fetched Successfully", result)
}

// GetByID handles GET /api/v1/books/{id}.
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(r)
	if !ok {
		httpx.JSON(w, http.StatusNotFound, "Data not found", nil)
		return
	}

	b, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSON(w, http.StatusNotFound, "Data not found", nil)
			return
		}
		h.serverError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, "Data Book Fetched Successfully", b)
}

// Update handles PUT /api/v1/books/{id}. Only fields present in the
// body are validated and applied; the rest keep their stored values.
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(r)
	if !ok {
		httpx.JSON(w, http.StatusNotFound, "Data not found", nil)
		return
	}

	fields, violations := DecodePayload(r.Body)
	if violations != nil {
		httpx.JSON(w, http.StatusUnprocessableEntity, "Validation Error", violations)
		return
	}
	p, violations := ValidatePayload(fields, true)
	if violations != nil {
		httpx.JSON(w, http.StatusUnprocessableEntity, "Validation Error", violations)
		return
	}

	updated, err := h.service.Update(r.Context(), id, p)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSON(w, http.StatusNotFound, "Data not found", nil)
			return
		}
		h.serverError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, "Data book updated successfully", updated)
}

// Delete handles DELETE /api/v1/books/{id}. Deleting an absent id
// answers 404; a repeated delete of the same id therefore reports
// "Data not found". Success answers 201 per the external contract.
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(r)
	if !ok {
		httpx.JSON(w, http.StatusNotFound, "Data not found", nil)
		return
	}

	deleted, err := h.service.Delete(r.Context(), id)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	if !deleted {
		httpx.JSON(w, http.StatusNotFound, "Data not found", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, "Book deleted successfully", nil)
}

// bookID parses the {id} path segment. A non-numeric id behaves like a
// lookup for an id that cannot exist and ends up as 404, not 400.
func bookID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (h *HTTPHandler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.Error().
		Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Str("request_id", httpx.RequestIDFrom(r)).
		Msg("unexpected error")
	httpx.JSON(w, http.StatusInternalServerError, "Internal Server Error", nil)
}
