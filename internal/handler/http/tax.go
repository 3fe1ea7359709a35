package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mindgarden/counseling-backend-go/internal/domain/tax"
	"github.com/mindgarden/counseling-backend-go/internal/handler/http/response"
)

type TaxHandler interface {
	GetLineItems(w http.ResponseWriter, r *http.Request)
	DeactivateLineItem(w http.ResponseWriter, r *http.Request)
	GetPeriodStatistics(w http.ResponseWriter, r *http.Request)
}

type taxHandlerImpl struct {
	taxService tax.Service
}

func NewTaxHandler(taxService tax.Service) TaxHandler {
	return &taxHandlerImpl{taxService: taxService}
}

func (h *taxHandlerImpl) GetLineItems(w http.ResponseWriter, r *http.Request) {
	result, err := h.taxService.GetLineItems(r.Context(), chi.URLParam(r, "calculationId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *taxHandlerImpl) DeactivateLineItem(w http.ResponseWriter, r *http.Request) {
	if err := h.taxService.DeactivateLineItem(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Tax line item deactivated", nil)
}

func (h *taxHandlerImpl) GetPeriodStatistics(w http.ResponseWriter, r *http.Request) {
	result, err := h.taxService.GetPeriodStatistics(r.Context(), r.URL.Query().Get("period"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
