package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/leave-manager-api/internal/domain"
	"github.com/leave-manager-api/internal/dto"
	"github.com/leave-manager-api/internal/render"
	"github.com/leave-manager-api/internal/service"
)

// LeaveHandler обслуживает все операции сервиса.
// Каждая операция отвечает готовым текстом, включая ошибки.
type LeaveHandler struct {
	leaveService service.LeaveService
	empService   service.EmployeeService
	validator    *validator.Validate
	logger       *slog.Logger
}

func NewLeaveHandler(
	leaveService service.LeaveService,
	empService service.EmployeeService,
	logger *slog.Logger,
) *LeaveHandler {
	return &LeaveHandler{
		leaveService: leaveService,
		empService:   empService,
		validator:    validator.New(),
		logger:       logger,
	}
}

// ListEmployees выводит справочник сотрудников
func (h *LeaveHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.empService.GetAll(r.Context())
	if err != nil {
		h.internalError(w, err)
		return
	}

	h.respondText(w, http.StatusOK, render.EmployeeDirectory(employees))
}

// GetEmployee выводит карточку сотрудника
func (h *LeaveHandler) GetEmployee(w http.ResponseWriter, r *http.Request, employeeID string) {
	emp, err := h.empService.GetByID(r.Context(), employeeID)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			h.respondText(w, http.StatusNotFound, fmt.Sprintf("Employee %s not found", employeeID))
			return
		}
		h.internalError(w, err)
		return
	}

	h.respondText(w, http.StatusOK, render.EmployeeInfo(emp))
}

// CheckBalance выводит остатки отпусков сотрудника
func (h *LeaveHandler) CheckBalance(w http.ResponseWriter, r *http.Request, employeeID string) {
	emp, err := h.empService.GetByID(r.Context(), employeeID)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			h.respondText(w, http.StatusNotFound, fmt.Sprintf("Error: Employee %s not found", employeeID))
			return
		}
		h.internalError(w, err)
		return
	}

	h.respondText(w, http.StatusOK, render.LeaveBalance(emp))
}

// AddEmployee создаёт сотрудника с проверкой дубликатов
func (h *LeaveHandler) AddEmployee(w http.ResponseWriter, r *http.Request) {
	var req dto.AddEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondText(w, http.StatusBadRequest, "Error: invalid request body: "+err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.respondText(w, http.StatusBadRequest, "Error: validation error: "+err.Error())
		return
	}

	result, err := h.empService.Add(r.Context(), &req)
	if err != nil {
		h.internalError(w, err)
		return
	}

	switch {
	case result.Duplicate != nil:
		h.respondText(w, http.StatusOK, render.DuplicateEmployee(req.Name, result.Duplicate))
	case len(result.Similar) > 0:
		h.respondText(w, http.StatusOK, render.SimilarEmployees(req.Name, result.Similar))
	default:
		h.respondText(w, http.StatusCreated, render.EmployeeCreated(result.Created))
	}
}

// ListLeaveRequests выводит все заявки
func (h *LeaveHandler) ListLeaveRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.leaveService.GetAll(r.Context())
	if err != nil {
		h.internalError(w, err)
		return
	}

	h.respondText(w, http.StatusOK, render.AllLeaveRequests(requests))
}

// ListEmployeeLeaveRequests выводит заявки одного сотрудника
func (h *LeaveHandler) ListEmployeeLeaveRequests(w http.ResponseWriter, r *http.Request, employeeID string) {
	requests, err := h.leaveService.GetByEmployeeID(r.Context(), employeeID)
	if err != nil {
		h.internalError(w, err)
		return
	}

	if len(requests) == 0 {
		h.respondText(w, http.StatusOK, fmt.Sprintf("No leave requests found for employee %s", employeeID))
		return
	}

	h.respondText(w, http.StatusOK, render.EmployeeLeaveRequests(employeeID, requests))
}

// ListLeaveRequestsByStatus выводит заявки с заданным статусом,
// статус сравнивается без учёта регистра
func (h *LeaveHandler) ListLeaveRequestsByStatus(w http.ResponseWriter, r *http.Request, status string) {
	requests, err := h.leaveService.GetByStatus(r.Context(), status)
	if err != nil {
		h.internalError(w, err)
		return
	}

	if len(requests) == 0 {
		h.respondText(w, http.StatusOK, fmt.Sprintf("No %s leave requests found", status))
		return
	}

	h.respondText(w, http.StatusOK, render.LeaveRequestsByStatus(status, requests))
}

// ListPendingApprovals выводит заявки, ожидающие одобрения
func (h *LeaveHandler) ListPendingApprovals(w http.ResponseWriter, r *http.Request) {
	requests, err := h.leaveService.GetPending(r.Context())
	if err != nil {
		h.internalError(w, err)
		return
	}

	if len(requests) == 0 {
		h.respondText(w, http.StatusOK, "No pending leave requests requiring approval")
		return
	}

	h.respondText(w, http.StatusOK, render.PendingApprovals(requests))
}

// SubmitLeaveRequest регистрирует новую заявку
func (h *LeaveHandler) SubmitLeaveRequest(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondText(w, http.StatusBadRequest, "Error: invalid request body: "+err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.respondText(w, http.StatusBadRequest, "Error: validation error: "+err.Error())
		return
	}

	request, err := h.leaveService.Submit(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmployeeNotFound):
			h.respondText(w, http.StatusNotFound, fmt.Sprintf("Error: Employee %s not found", req.EmployeeID))
		case errors.Is(err, domain.ErrInvalidLeaveType):
			h.respondText(w, http.StatusBadRequest,
				"Error: Invalid leave type. Must be one of: annual, sick, personal, emergency")
		default:
			h.internalError(w, err)
		}
		return
	}

	h.respondText(w, http.StatusCreated,
		fmt.Sprintf("Leave request (%s) submitted successfully for %s", request.RequestID, request.EmployeeName))
}

// ApproveLeaveRequest одобряет заявку и списывает дни из баланса
func (h *LeaveHandler) ApproveLeaveRequest(w http.ResponseWriter, r *http.Request, requestID string) {
	var req dto.ApproveLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondText(w, http.StatusBadRequest, "Error: invalid request body: "+err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.respondText(w, http.StatusBadRequest, "Error: validation error: "+err.Error())
		return
	}

	request, err := h.leaveService.Approve(r.Context(), requestID, req.ApproverName)
	if err != nil {
		var stateErr *domain.RequestStateError
		switch {
		case errors.Is(err, domain.ErrRequestNotFound):
			h.respondText(w, http.StatusNotFound, fmt.Sprintf("Error: Leave request %s not found", requestID))
		case errors.As(err, &stateErr):
			h.respondText(w, http.StatusConflict,
				fmt.Sprintf("Error: Leave request %s is already %s", stateErr.RequestID, stateErr.Status))
		default:
			h.internalError(w, err)
		}
		return
	}

	h.respondText(w, http.StatusOK,
		fmt.Sprintf("Leave request %s approved by %s", request.RequestID, req.ApproverName))
}

// GetStats выводит счётчики по базе
func (h *LeaveHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.leaveService.GetStats(r.Context())
	if err != nil {
		h.internalError(w, err)
		return
	}

	h.respondText(w, http.StatusOK, render.Stats(stats))
}

func (h *LeaveHandler) internalError(w http.ResponseWriter, err error) {
	h.logger.Error("internal error", slog.Any("error", err))
	h.respondText(w, http.StatusInternalServerError, "Error: internal server error")
}

func (h *LeaveHandler) respondText(w http.ResponseWriter, status int, body string) {
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		h.logger.Error("failed to write response", slog.Any("error", err))
	}
}
