package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/Agency-Synapse/workflows-project/internal/infra/http/middleware"
	"github.com/Agency-Synapse/workflows-project/internal/usecase"
)

type LeadHandler struct {
	CaptureUC   *usecase.CaptureLeadUseCase
	rateLimiter *RateLimiter
}

func NewLeadHandler(uc *usecase.CaptureLeadUseCase) *LeadHandler {
	return &LeadHandler{
		CaptureUC:   uc,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min per IP
	}
}

type CaptureLeadResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (h *LeadHandler) HandleCapture(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeJSON(w, http.StatusTooManyRequests, CaptureLeadResponse{
			Success: false,
			Error:   "Too many requests. Please try again later.",
		})
		return
	}

	var input usecase.CaptureLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, CaptureLeadResponse{
			Success: false,
			Error:   "Invalid JSON",
		})
		return
	}

	output, err := h.CaptureUC.Execute(ctx, input)
	if err != nil {
		if usecase.IsDomainError(err) {
			middleware.RecordLeadCaptured("rejected")
			writeJSON(w, http.StatusBadRequest, CaptureLeadResponse{
				Success: false,
				Error:   err.Error(),
			})
			return
		}

		writeJSON(w, http.StatusInternalServerError, CaptureLeadResponse{
			Success: false,
			Error:   "Erreur lors de l'inscription. Réessaie dans quelques secondes.",
		})
		return
	}

	status := http.StatusCreated
	outcome := "created"
	if output.Existing {
		status = http.StatusOK
		outcome = "existing"
	}
	middleware.RecordLeadCaptured(outcome)

	if input.InteresseSaaS == usecase.EarlyAccessAnswer {
		middleware.RecordEarlyAccessLead()
	}

	writeJSON(w, status, CaptureLeadResponse{
		Success: true,
		Token:   output.Token,
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
