package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/paydesk/payroll-backend-go/internal/domain/salarystructure"
	"github.com/paydesk/payroll-backend-go/internal/handler/http/response"
)

type SalaryStructureHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type salaryStructureHandlerImpl struct {
	structureService salarystructure.SalaryStructureService
}

func NewSalaryStructureHandler(structureService salarystructure.SalaryStructureService) SalaryStructureHandler {
	return &salaryStructureHandlerImpl{structureService: structureService}
}

func (h *salaryStructureHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req salarystructure.CreateSalaryStructureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.structureService.Create(r.Context(), req, actorFrom(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary structure created", result)
}

func (h *salaryStructureHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.structureService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListByEmployee serves both the version history and, with active=true, the
// single structure currently in effect.
func (h *salaryStructureHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		response.BadRequest(w, "employee_id query parameter is required", nil)
		return
	}

	if r.URL.Query().Get("active") == "true" {
		result, err := h.structureService.GetActiveByEmployee(r.Context(), employeeID)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
		return
	}

	result, err := h.structureService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result.Data)
}

func (h *salaryStructureHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.structureService.Deactivate(r.Context(), id, actorFrom(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary structure deactivated", result)
}
