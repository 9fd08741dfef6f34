package handler

import (
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"bitbucket.org/novatechnologies/chartview/domain"
)

type CandleHandler struct {
	source SeriesSource
}

func NewCandleHandler(source SeriesSource) *CandleHandler {
	return &CandleHandler{source: source}
}

// chartResponse is the parallel-array wire format with decimal string
// prices, the same shape the upstream feed serves.
type chartResponse struct {
	O []string `json:"o"`
	H []string `json:"h"`
	L []string `json:"l"`
	C []string `json:"c"`
	T []int64  `json:"t"`
}

func (h *CandleHandler) GetCandleChart(
	res http.ResponseWriter,
	req *http.Request,
) {
	market := req.URL.Query().Get("market")
	if len(market) == 0 {
		http.Error(res, "market is required", http.StatusBadRequest)
		return
	}
	market = strings.Replace(market, "%2F", "-", -1)
	market = strings.Replace(market, "/", "-", -1)

	resolution := domain.Resolution(req.URL.Query().Get("resolution"))
	if resolution.IsNotExist() {
		resolution = domain.Candle1HResolution
	}

	candles, err := h.source.Load(req.Context(), market, resolution)
	if err != nil {
		http.Error(res, "can't load candles: "+err.Error(), http.StatusBadGateway)
		return
	}

	chart := chartResponse{
		O: make([]string, 0, len(candles)),
		H: make([]string, 0, len(candles)),
		L: make([]string, 0, len(candles)),
		C: make([]string, 0, len(candles)),
		T: make([]int64, 0, len(candles)),
	}
	for _, candle := range candles {
		chart.O = append(chart.O, decimal.NewFromFloat(candle.Open).String())
		chart.H = append(chart.H, decimal.NewFromFloat(candle.High).String())
		chart.L = append(chart.L, decimal.NewFromFloat(candle.Low).String())
		chart.C = append(chart.C, decimal.NewFromFloat(candle.Close).String())
		chart.T = append(chart.T, candle.Timestamp)
	}

	writeJSON(res, chart)
}
