package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/leave-manager-api/internal/middleware"
)

// Router настраивает маршруты API
type Router struct {
	mux          *http.ServeMux
	logger       *slog.Logger
	leaveHandler *LeaveHandler
}

// NewRouter создаёт новый роутер
func NewRouter(leaveHandler *LeaveHandler, logger *slog.Logger) *Router {
	return &Router{
		mux:          http.NewServeMux(),
		logger:       logger,
		leaveHandler: leaveHandler,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	// Регистрируем обработчики
	r.mux.HandleFunc("/employees", r.employeesRouter)
	r.mux.HandleFunc("/employees/", r.employeesRouter)
	r.mux.HandleFunc("/leave-requests", r.leaveRequestsRouter)
	r.mux.HandleFunc("/leave-requests/", r.leaveRequestsRouter)

	r.mux.HandleFunc("/stats", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		r.leaveHandler.GetStats(w, req)
	})

	// Health check
	r.mux.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Применяем middleware
	handler := middleware.ContentType(r.mux)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.Recoverer(r.logger)(handler)

	return handler
}

// employeesRouter обрабатывает все запросы к /employees/
func (r *Router) employeesRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/employees")
	path = strings.Trim(path, "/")

	// GET /employees - справочник, POST /employees - создание
	if path == "" {
		switch req.Method {
		case http.MethodGet:
			r.leaveHandler.ListEmployees(w, req)
		case http.MethodPost:
			r.leaveHandler.AddEmployee(w, req)
		default:
			methodNotAllowed(w)
		}
		return
	}

	parts := strings.Split(path, "/")

	// /employees/{id}
	if len(parts) == 1 {
		if req.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		r.leaveHandler.GetEmployee(w, req, parts[0])
		return
	}

	// /employees/{id}/balance
	if len(parts) == 2 && parts[1] == "balance" {
		if req.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		r.leaveHandler.CheckBalance(w, req, parts[0])
		return
	}

	notFound(w)
}

// leaveRequestsRouter обрабатывает все запросы к /leave-requests/
func (r *Router) leaveRequestsRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/leave-requests")
	path = strings.Trim(path, "/")

	// GET /leave-requests - все заявки, POST /leave-requests - подача
	if path == "" {
		switch req.Method {
		case http.MethodGet:
			r.leaveHandler.ListLeaveRequests(w, req)
		case http.MethodPost:
			r.leaveHandler.SubmitLeaveRequest(w, req)
		default:
			methodNotAllowed(w)
		}
		return
	}

	parts := strings.Split(path, "/")

	// /leave-requests/pending
	if len(parts) == 1 && parts[0] == "pending" {
		if req.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		r.leaveHandler.ListPendingApprovals(w, req)
		return
	}

	if len(parts) == 2 {
		switch {
		// /leave-requests/employee/{id}
		case parts[0] == "employee":
			if req.Method != http.MethodGet {
				methodNotAllowed(w)
				return
			}
			r.leaveHandler.ListEmployeeLeaveRequests(w, req, parts[1])
			return
		// /leave-requests/status/{status}
		case parts[0] == "status":
			if req.Method != http.MethodGet {
				methodNotAllowed(w)
				return
			}
			r.leaveHandler.ListLeaveRequestsByStatus(w, req, parts[1])
			return
		// /leave-requests/{id}/approve
		case parts[1] == "approve":
			if req.Method != http.MethodPost {
				methodNotAllowed(w)
				return
			}
			r.leaveHandler.ApproveLeaveRequest(w, req, parts[0])
			return
		}
	}

	notFound(w)
}

func methodNotAllowed(w http.ResponseWriter) {
	http.Error(w, "Error: method not allowed", http.StatusMethodNotAllowed)
}

func notFound(w http.ResponseWriter) {
	http.Error(w, "Error: not found", http.StatusNotFound)
}
