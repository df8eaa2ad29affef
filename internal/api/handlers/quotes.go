package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"order-quote-service/internal/api/dto"
	"order-quote-service/internal/domain"
	"order-quote-service/internal/ports"
	"order-quote-service/internal/services"
	"strings"
)

// QuoteHandler prices delivery orders against the catalog snapshot.
type QuoteHandler struct {
	Catalog   *domain.Catalog
	Distances ports.DistanceIndex

	// Cache is optional; nil disables response caching.
	Cache ports.QuoteCache
}

// Calculate runs the allocation and aggregation engine for one order
// and returns the priced, timed summary.
func (h *QuoteHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.QuoteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	destination := strings.TrimSpace(req.DestinationCity)
	if destination == "" {
		writeError(w, r, http.StatusBadRequest, "destinationCity is required")
		return
	}

	lines := make([]domain.RequestedLine, 0, len(req.OrderItems))
	for _, it := range req.OrderItems {
		lines = append(lines, domain.RequestedLine{ItemID: it.ItemID, Quantity: it.Quantity})
	}

	if h.Cache != nil {
		if body, ok, err := h.Cache.Get(r.Context(), destination, lines); err != nil {
			log.Printf("quote cache get failed: %v", err)
		} else if ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			if _, err := w.Write(body); err != nil {
				log.Printf("write cached quote failed: %v", err)
			}
			return
		}
	}

	summary := services.Summarize(lines, destination, h.Catalog, h.Distances)
	res := quoteResponse(summary)

	if h.Cache != nil {
		if body, err := json.Marshal(res); err == nil {
			if err := h.Cache.Put(r.Context(), destination, lines, body); err != nil {
				log.Printf("quote cache put failed: %v", err)
			}
		}
	}

	writeJSON(w, r, http.StatusOK, res)
}

func quoteResponse(s domain.OrderSummary) dto.QuoteResponse {
	details := make([]dto.FulfillmentDetailResponse, 0, len(s.Details))
	for _, d := range s.Details {
		row := dto.FulfillmentDetailResponse{
			ItemID:      d.ItemID,
			ProductName: d.ProductName,
			Quantity:    d.Portion.Quantity,
			UnitPrice:   d.Portion.UnitPrice,
			DistanceKm:  d.Portion.DistanceKm,
			Status:      d.Portion.Status,
		}
		if !d.Portion.OutOfStock() {
			city := d.Portion.SourceCity
			row.SourceCity = &city
			fallback := d.Portion.DistanceKm > 0
			row.IsFallback = &fallback
		}
		details = append(details, row)
	}

	return dto.QuoteResponse{
		ItemsCost:          s.ItemsCost,
		DeliveryCharge:     s.DeliveryCharge,
		TotalCost:          s.TotalCost,
		TotalQuantity:      s.TotalQuantity,
		ArrivalMinutes:     s.ArrivalMinutes,
		DistanceKm:         s.MaxDistanceKm,
		FulfillmentDetails: details,
	}
}
