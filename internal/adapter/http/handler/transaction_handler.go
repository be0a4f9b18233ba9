package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iho/paisa/internal/adapter/http/dto"
	"github.com/iho/paisa/internal/domain"
)

// TransactionStore defines the record store operations used by TransactionHandler.
type TransactionStore interface {
	Add(ctx context.Context, draft domain.TransactionDraft) (domain.Transaction, error)
	Update(ctx context.Context, tx domain.Transaction) (domain.Transaction, bool, error)
	Remove(ctx context.Context, id string) bool
	Get(id string) (domain.Transaction, error)
	Snapshot() []domain.Transaction
}

// ConfirmParam must be "true" on destructive requests.
const ConfirmParam = "confirm"

// TransactionHandler handles transaction CRUD requests.
type TransactionHandler struct {
	store TransactionStore
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(store TransactionStore) *TransactionHandler {
	return &TransactionHandler{store: store}
}

// List returns every record in store order, newest first.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.TransactionsFromDomain(h.store.Snapshot()))
}

// Create adds a record.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.TransactionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	draft, err := req.ToDraft()
	if err != nil {
		writeDomainError(w, "invalid transaction", err)
		return
	}

	tx, err := h.store.Add(r.Context(), draft)
	if err != nil {
		writeDomainError(w, "failed to add transaction", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(tx))
}

// Get returns one record.
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	tx, err := h.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, "failed to get transaction", err)
		return
	}
	writeJSON(w, http.StatusOK, dto.TransactionFromDomain(tx))
}

// Update replaces the editable fields of a record.
func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.TransactionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	draft, err := req.ToDraft()
	if err != nil {
		writeDomainError(w, "invalid transaction", err)
		return
	}

	// The store keeps the original creation time.
	updated, found, err := h.store.Update(r.Context(), domain.NewTransaction(id, time.Time{}, draft))
	if err != nil {
		writeDomainError(w, "failed to update transaction", err)
		return
	}
	if !found {
		writeDomainError(w, "failed to update transaction", domain.ErrTransactionNotFound)
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionFromDomain(updated))
}

// Delete removes a record. The request must carry confirm=true.
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get(ConfirmParam) != "true" {
		writeError(w, http.StatusPreconditionRequired, "confirmation required", "repeat the request with ?confirm=true")
		return
	}

	if !h.store.Remove(r.Context(), chi.URLParam(r, "id")) {
		writeDomainError(w, "failed to delete transaction", domain.ErrTransactionNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
