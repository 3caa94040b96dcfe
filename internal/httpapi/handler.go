package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"printaro-be/internal/cart"
	"printaro-be/internal/catalog"
	"printaro-be/internal/configurator"
	"printaro-be/internal/filecheck"
	"printaro-be/internal/logger"
	"printaro-be/internal/pricing"
	"printaro-be/internal/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler exposes the configurator, pricing, file validation and cart
// operations over JSON.
type Handler struct {
	catalog catalog.Service
	cart    *cart.Store
}

func NewHandler(catalogSvc catalog.Service, cartStore *cart.Store) *Handler {
	return &Handler{catalog: catalogSvc, cart: cartStore}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListProducts(r.Context())
	if err != nil {
		logger.FromCtx(r.Context()).Error("failed to list products", zap.Error(err))
		utils.WriteJSONError(w, "failed to list products", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, products, http.StatusOK)
}

// configuratorView is the full payload the storefront needs to render the
// configurator in one round trip.
type configuratorView struct {
	Product      *catalog.Product                     `json:"product"`
	Selections   configurator.Selections              `json:"selections"`
	Materials    configurator.MaterialFilterResult    `json:"materials"`
	PrintMethods configurator.PrintMethodFilterResult `json:"printMethods"`
	Finishing    configurator.FinishingFilterResult   `json:"finishing"`
	Summary      pricing.Summary                      `json:"priceSummary"`
	Issues       []string                             `json:"issues"`
	Suggestions  []configurator.QuantitySuggestion    `json:"quantitySuggestions"`
}

func (h *Handler) GetConfigurator(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	product, err := h.catalog.GetConfiguratorProduct(r.Context(), slug)
	if err != nil {
		h.writeCatalogError(w, r, err)
		return
	}

	session := configurator.NewSession(product)
	utils.WriteJSON(w, viewFromSession(product, session), http.StatusOK)
}

func (h *Handler) PriceConfiguration(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	var selections configurator.Selections
	if err := json.NewDecoder(r.Body).Decode(&selections); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	product, err := h.catalog.GetConfiguratorProduct(r.Context(), slug)
	if err != nil {
		h.writeCatalogError(w, r, err)
		return
	}

	session := configurator.Resume(product, selections)
	utils.WriteJSON(w, viewFromSession(product, session), http.StatusOK)
}

func viewFromSession(product *catalog.Product, session *configurator.Session) configuratorView {
	return configuratorView{
		Product:      product,
		Selections:   session.Selections(),
		Materials:    session.Materials(),
		PrintMethods: session.PrintMethods(),
		Finishing:    session.Finishing(),
		Summary:      session.Summary(),
		Issues:       session.Validate(),
		Suggestions:  session.QuantitySuggestions(),
	}
}

type fileValidationRequest struct {
	ProductSlug string             `json:"productSlug"`
	Metadata    filecheck.Metadata `json:"metadata"`
}

type fileValidationResponse struct {
	Checks  filecheck.Result `json:"checks"`
	Overall filecheck.Status `json:"overall"`
}

func (h *Handler) ValidateFile(w http.ResponseWriter, r *http.Request) {
	var req fileValidationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	specs, err := h.catalog.GetFileSpecs(r.Context(), req.ProductSlug)
	if err != nil {
		h.writeCatalogError(w, r, err)
		return
	}

	result := filecheck.Validate(*specs, req.Metadata)
	utils.WriteJSON(w, fileValidationResponse{Checks: result, Overall: result.Overall()}, http.StatusOK)
}

func (h *Handler) ListCartItems(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.cart.Items(), http.StatusOK)
}

func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var params cart.AddParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	item, err := h.cart.Add(r.Context(), params)
	if err != nil {
		h.writeCartError(w, r, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusCreated)
}

func (h *Handler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var params cart.UpdateParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	item, err := h.cart.Update(r.Context(), chi.URLParam(r, "id"), params)
	if err != nil {
		h.writeCartError(w, r, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	if err := h.cart.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeCartError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DuplicateCartItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.cart.Duplicate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeCartError(w, r, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusCreated)
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.cart.Clear(r.Context()); err != nil {
		h.writeCartError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type cartTotalsResponse struct {
	cart.Totals
	Issues []string `json:"issues"`
}

func (h *Handler) CartTotals(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, cartTotalsResponse{
		Totals: h.cart.Totals(),
		Issues: cart.ValidateItems(h.cart.Items()),
	}, http.StatusOK)
}

func (h *Handler) writeCatalogError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, catalog.ErrProductNotFound) {
		utils.WriteJSONError(w, "product not found", http.StatusNotFound)
		return
	}

	logger.FromCtx(r.Context()).Error("catalog lookup failed", zap.Error(err))
	utils.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
}

func (h *Handler) writeCartError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, cart.ErrItemNotFound):
		utils.WriteJSONError(w, "cart item not found", http.StatusNotFound)
	case errors.Is(err, cart.ErrInvalidQuantity):
		utils.WriteJSONError(w, "quantity must be at least 1", http.StatusBadRequest)
	case errors.Is(err, catalog.ErrProductNotFound):
		utils.WriteJSONError(w, "product not found", http.StatusNotFound)
	default:
		logger.FromCtx(r.Context()).Error("cart operation failed", zap.Error(err))
		utils.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
	}
}
