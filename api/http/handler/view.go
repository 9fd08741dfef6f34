package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-http-utils/headers"

	"bitbucket.org/novatechnologies/chartview/chart"
	"bitbucket.org/novatechnologies/chartview/domain"
)

const contentTypeJSON = "application/json"

// SeriesSource supplies candle snapshots and tracks the current selection.
type SeriesSource interface {
	SetSelection(symbol string, resolution domain.Resolution)
	Selection() (string, domain.Resolution)
	Load(ctx context.Context, symbol string, resolution domain.Resolution) ([]domain.Candle, error)
}

type ViewHandler struct {
	controller *chart.Controller
	source     SeriesSource
}

func NewViewHandler(controller *chart.Controller, source SeriesSource) *ViewHandler {
	return &ViewHandler{controller: controller, source: source}
}

func (h *ViewHandler) GetViewState(res http.ResponseWriter, req *http.Request) {
	writeJSON(res, h.controller.ViewState())
}

// ResetView is the manual fit-and-autoscale command.
func (h *ViewHandler) ResetView(res http.ResponseWriter, req *http.Request) {
	h.controller.ResetView()
	res.WriteHeader(http.StatusNoContent)
}

type setSymbolRequest struct {
	Symbol     string `json:"symbol"`
	Resolution string `json:"resolution"`
}

// SetSymbol switches the chart to another instrument: loads a fresh
// snapshot and reconciles it, which triggers the automatic view reset on
// the symbol transition.
func (h *ViewHandler) SetSymbol(res http.ResponseWriter, req *http.Request) {
	var body setSymbolRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		http.Error(res, "malformed request body", http.StatusBadRequest)
		return
	}
	if body.Symbol == "" {
		http.Error(res, "symbol is required", http.StatusBadRequest)
		return
	}
	resolution := domain.Resolution(body.Resolution)
	if resolution.IsNotExist() {
		http.Error(res, "unsupported resolution", http.StatusBadRequest)
		return
	}

	h.source.SetSelection(body.Symbol, resolution)

	candles, err := h.source.Load(req.Context(), body.Symbol, resolution)
	if err != nil {
		http.Error(res, "can't load candles: "+err.Error(), http.StatusBadGateway)
		return
	}

	h.controller.SetCandles(body.Symbol, candles)

	writeJSON(res, h.controller.ViewState())
}

func writeJSON(res http.ResponseWriter, payload interface{}) {
	res.Header().Set(headers.ContentType, contentTypeJSON)
	if err := json.NewEncoder(res).Encode(payload); err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
	}
}
