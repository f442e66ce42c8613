package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	recoveryapp "heatrecovery-cloud/internal/recovery/application"
	recovery "heatrecovery-cloud/internal/recovery/domain"
	telemetry "heatrecovery-cloud/internal/telemetry/domain"
)

const (
	msgMissingParameters = "all parameters are required"
	msgInvalidJSON       = "invalid json"
	msgNoData            = "failed to fetch data from store"
	msgServerError       = "internal server error"
	msgOutOfRange        = "calculation out of range"
	msgBodyTooLarge      = "request body too large"

	maxCalculateBody = 64 << 10
)

// Handler provides the realtime and calculate endpoints.
type Handler struct {
	service *recoveryapp.Service
	logger  *logrus.Logger
}

// NewHandler constructs a handler.
func NewHandler(service *recoveryapp.Service, logger *logrus.Logger) (*Handler, error) {
	if service == nil {
		return nil, errors.New("recovery handler: nil service")
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Handler{service: service, logger: logger}, nil
}

type realtimeResponse struct {
	Temperature recovery.Temperatures `json:"temperature"`
}

// Realtime handles GET /api/realtime.
func (h *Handler) Realtime(w http.ResponseWriter, r *http.Request) {
	temps, err := h.service.Realtime(r.Context())
	if err != nil {
		h.writeFetchError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, realtimeResponse{Temperature: temps})
}

type calculateRequest struct {
	Flow           number  `json:"flow"`
	CostType       *string `json:"costType"`
	CostUnit       number  `json:"costUnit"`
	OperatingHours number  `json:"operatingHours"`
	OperatingDays  number  `json:"operatingDays"`
}

func (req calculateRequest) toInput() (recovery.CalculationInput, error) {
	if !req.Flow.set || req.CostType == nil || strings.TrimSpace(*req.CostType) == "" ||
		!req.CostUnit.set || !req.OperatingHours.set || !req.OperatingDays.set {
		return recovery.CalculationInput{}, recovery.ErrMissingParameter
	}
	fields := []struct {
		name string
		n    number
	}{
		{"flow", req.Flow},
		{"costUnit", req.CostUnit},
		{"operatingHours", req.OperatingHours},
		{"operatingDays", req.OperatingDays},
	}
	for _, f := range fields {
		if f.n.invalid {
			return recovery.CalculationInput{}, fieldError{field: f.name, err: recovery.ErrInvalidNumber}
		}
	}
	return recovery.CalculationInput{
		Flow:           req.Flow.value,
		CostType:       strings.TrimSpace(*req.CostType),
		CostUnit:       req.CostUnit.value,
		OperatingHours: req.OperatingHours.value,
		OperatingDays:  req.OperatingDays.value,
	}, nil
}

type fieldError struct {
	field string
	err   error
}

func (e fieldError) Error() string { return fmt.Sprintf("%v: %s", e.err, e.field) }

func (e fieldError) Unwrap() error { return e.err }

type calculateResponse struct {
	CurrentCost           string `json:"currentCost"`
	YearlyCost            string `json:"yearlyCost"`
	RecoveryBenefit       string `json:"recoveryBenefit"`
	YearlyRecoveryBenefit string `json:"yearlyRecoveryBenefit"`
}

// Calculate handles POST /api/calculate.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxCalculateBody))
	if err != nil {
		h.logger.WithError(err).Warn("calculate: read body error")
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
			return
		}
		writeError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	h.logger.WithField("request_id", RequestIDFrom(r.Context())).Infof("calculate: received %s", body)

	var req calculateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	in, err := req.toInput()
	if err != nil {
		var fe fieldError
		if errors.As(err, &fe) {
			writeError(w, http.StatusBadRequest, "invalid number: "+fe.field)
			return
		}
		writeError(w, http.StatusBadRequest, msgMissingParameters)
		return
	}

	result, err := h.service.Calculate(r.Context(), in)
	if errors.Is(err, recovery.ErrNonFiniteResult) {
		writeError(w, http.StatusBadRequest, msgOutOfRange)
		return
	}
	if err != nil {
		h.writeFetchError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, calculateResponse{
		CurrentCost:           recovery.FormatCost(result.CurrentCost),
		YearlyCost:            recovery.FormatCost(result.YearlyCost),
		RecoveryBenefit:       recovery.FormatCost(result.RecoveryBenefit),
		YearlyRecoveryBenefit: recovery.FormatCost(result.YearlyRecoveryBenefit),
	})
}

func (h *Handler) writeFetchError(w http.ResponseWriter, r *http.Request, err error) {
	entry := h.logger.WithFields(logrus.Fields{
		"device":     h.service.DeviceID(),
		"request_id": RequestIDFrom(r.Context()),
	})
	if errors.Is(err, telemetry.ErrNoData) {
		entry.Warn("no reading available")
		writeError(w, http.StatusInternalServerError, msgNoData)
		return
	}
	entry.WithError(err).Error("fetch latest reading failed")
	writeError(w, http.StatusInternalServerError, msgServerError)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
