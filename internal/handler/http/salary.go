package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mindgarden/counseling-backend-go/internal/domain/salary"
	"github.com/mindgarden/counseling-backend-go/internal/handler/http/response"
)

type SalaryHandler interface {
	// Profiles
	CreateProfile(w http.ResponseWriter, r *http.Request)
	GetActiveProfile(w http.ResponseWriter, r *http.Request)
	DeactivateProfile(w http.ResponseWriter, r *http.Request)
	ListActiveProfiles(w http.ResponseWriter, r *http.Request)

	// Options
	AddOption(w http.ResponseWriter, r *http.Request)
	ListOptions(w http.ResponseWriter, r *http.Request)
	UpdateOption(w http.ResponseWriter, r *http.Request)
	RemoveOption(w http.ResponseWriter, r *http.Request)

	// Calculation
	CalculateFreelance(w http.ResponseWriter, r *http.Request)
	CalculateRegular(w http.ResponseWriter, r *http.Request)
	CleanupDuplicates(w http.ResponseWriter, r *http.Request)

	// Lifecycle
	ApproveCalculation(w http.ResponseWriter, r *http.Request)
	MarkCalculationPaid(w http.ResponseWriter, r *http.Request)
	GetCalculations(w http.ResponseWriter, r *http.Request)
	GetCalculationByPeriod(w http.ResponseWriter, r *http.Request)
	ListPendingApproval(w http.ResponseWriter, r *http.Request)
	ListPendingPayment(w http.ResponseWriter, r *http.Request)

	// Statistics
	GetMonthlyStatistics(w http.ResponseWriter, r *http.Request)
	GetProfileTypeStatistics(w http.ResponseWriter, r *http.Request)
	GetTotalPaid(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	salaryService salary.Service
}

func NewSalaryHandler(salaryService salary.Service) SalaryHandler {
	return &salaryHandlerImpl{salaryService: salaryService}
}

// ========== PROFILES ==========

func (h *salaryHandlerImpl) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var req salary.CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ConsultantID = chi.URLParam(r, "consultantId")

	result, err := h.salaryService.CreateProfile(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Compensation profile created", result)
}

func (h *salaryHandlerImpl) GetActiveProfile(w http.ResponseWriter, r *http.Request) {
	result, err := h.salaryService.GetActiveProfile(r.Context(), chi.URLParam(r, "consultantId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salaryHandlerImpl) DeactivateProfile(w http.ResponseWriter, r *http.Request) {
	deactivated, err := h.salaryService.DeactivateProfile(r.Context(), chi.URLParam(r, "consultantId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if !deactivated {
		response.HandleError(w, salary.ErrProfileNotFound)
		return
	}

	response.SuccessWithMessage(w, "Compensation profile deactivated", nil)
}

func (h *salaryHandlerImpl) ListActiveProfiles(w http.ResponseWriter, r *http.Request) {
	result, err := h.salaryService.ListActiveProfiles(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== OPTIONS ==========

func (h *salaryHandlerImpl) AddOption(w http.ResponseWriter, r *http.Request) {
	var req salary.AddOptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ProfileID = chi.URLParam(r, "profileId")

	result, err := h.salaryService.AddOption(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Compensation option added", result)
}

func (h *salaryHandlerImpl) ListOptions(w http.ResponseWriter, r *http.Request) {
	result, err := h.salaryService.ListOptions(r.Context(), chi.URLParam(r, "profileId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salaryHandlerImpl) UpdateOption(w http.ResponseWriter, r *http.Request) {
	var req salary.UpdateOptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.salaryService.UpdateOption(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salaryHandlerImpl) RemoveOption(w http.ResponseWriter, r *http.Request) {
	if err := h.salaryService.RemoveOption(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Compensation option removed", nil)
}

// ========== CALCULATION ==========

func (h *salaryHandlerImpl) CalculateFreelance(w http.ResponseWriter, r *http.Request) {
	var req salary.CalculateFreelanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ConsultantID = chi.URLParam(r, "consultantId")

	result, err := h.salaryService.CalculateFreelanceSalary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Freelance salary calculated", result)
}

func (h *salaryHandlerImpl) CalculateRegular(w http.ResponseWriter, r *http.Request) {
	var req salary.CalculateRegularRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ConsultantID = chi.URLParam(r, "consultantId")

	result, err := h.salaryService.CalculateRegularSalary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Regular salary calculated", result)
}

func (h *salaryHandlerImpl) CleanupDuplicates(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.salaryService.CleanupDuplicateCalculations(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Duplicate calculations cleaned up", map[string]int{"deleted": deleted})
}

// ========== LIFECYCLE ==========

func (h *salaryHandlerImpl) ApproveCalculation(w http.ResponseWriter, r *http.Request) {
	if err := h.salaryService.ApproveCalculation(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Calculation approved", nil)
}

func (h *salaryHandlerImpl) MarkCalculationPaid(w http.ResponseWriter, r *http.Request) {
	if err := h.salaryService.MarkCalculationPaid(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Calculation marked as paid", nil)
}

func (h *salaryHandlerImpl) GetCalculations(w http.ResponseWriter, r *http.Request) {
	result, err := h.salaryService.GetCalculations(r.Context(), chi.URLParam(r, "consultantId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salaryHandlerImpl) GetCalculationByPeriod(w http.ResponseWriter, r *http.Request) {
	consultantID := chi.URLParam(r, "consultantId")
	period := r.URL.Query().Get("period")

	result, err := h.salaryService.GetCalculationByPeriod(r.Context(), consultantID, period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salaryHandlerImpl) ListPendingApproval(w http.ResponseWriter, r *http.Request) {
	result, err := h.salaryService.ListPendingApproval(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salaryHandlerImpl) ListPendingPayment(w http.ResponseWriter, r *http.Request) {
	result, err := h.salaryService.ListPendingPayment(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== STATISTICS ==========

func (h *salaryHandlerImpl) GetMonthlyStatistics(w http.ResponseWriter, r *http.Request) {
	result, err := h.salaryService.GetMonthlyStatistics(r.Context(), r.URL.Query().Get("period"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salaryHandlerImpl) GetProfileTypeStatistics(w http.ResponseWriter, r *http.Request) {
	result, err := h.salaryService.GetProfileTypeStatistics(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salaryHandlerImpl) GetTotalPaid(w http.ResponseWriter, r *http.Request) {
	total, err := h.salaryService.GetTotalPaidByConsultant(r.Context(), chi.URLParam(r, "consultantId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{"total_paid": total})
}
