package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/cwalinapj/Sitebuilder1.0-sub001/application/recommendation"
	"github.com/cwalinapj/Sitebuilder1.0-sub001/domain/personalization"
	"github.com/cwalinapj/Sitebuilder1.0-sub001/pkg/common"
	apperrors "github.com/cwalinapj/Sitebuilder1.0-sub001/pkg/errors"
	"github.com/cwalinapj/Sitebuilder1.0-sub001/pkg/utils"
)

// maxBodySize limits request bodies to 1MB
const maxBodySize = 1 << 20

// PersonalizationHandler serves the three personalization endpoints
type PersonalizationHandler struct {
	service *recommendation.Service
	errors  *apperrors.ErrorHandler
	logger  *zap.Logger
}

// NewPersonalizationHandler creates a new handler instance
func NewPersonalizationHandler(service *recommendation.Service, logger *zap.Logger) *PersonalizationHandler {
	return &PersonalizationHandler{
		service: service,
		errors:  apperrors.NewErrorHandler(logger, false),
		logger:  logger,
	}
}

// EventRequest is the transport shape of POST /event
type EventRequest struct {
	UserID       string                 `json:"user_id" validate:"required"`
	SessionID    string                 `json:"session_id,omitempty"`
	EventType    string                 `json:"event_type" validate:"required"`
	Payload      map[string]interface{} `json:"payload,omitempty"`
	BusinessType string                 `json:"business_type,omitempty"`
	Device       string                 `json:"device,omitempty"`
}

// RecommendRequest is the transport shape of POST /recommend. Filters are
// forwarded verbatim to the catalog index.
type RecommendRequest struct {
	UserID  string                 `json:"user_id" validate:"required"`
	Prompt  string                 `json:"prompt,omitempty"`
	Filters map[string]interface{} `json:"filters,omitempty"`
}

// IngestDesignSample handles POST /design-sample. The body is decoded as a
// raw map; the domain validator owns field rules and error wording.
func (h *PersonalizationHandler) IngestDesignSample(w http.ResponseWriter, r *http.Request) {
	var raw map[string]interface{}
	if err := common.ParseJSONBody(r, &raw, maxBodySize); err != nil {
		h.errors.HandleStatus(w, r, http.StatusBadRequest, "Invalid JSON")
		return
	}

	sampleID, err := h.service.IngestDesignSample(r.Context(), raw)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondOK(w, http.StatusOK, map[string]interface{}{
		"design_sample_id": sampleID,
	})
}

// IngestEvent handles POST /event
func (h *PersonalizationHandler) IngestEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if err := common.ParseJSONBody(r, &req, maxBodySize); err != nil {
		h.errors.HandleStatus(w, r, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		h.errors.HandleStatus(w, r, http.StatusBadRequest, err.Error())
		return
	}

	eventID, err := h.service.IngestEvent(r.Context(), personalization.InteractionEvent{
		UserID:       req.UserID,
		SessionID:    req.SessionID,
		EventType:    req.EventType,
		Payload:      personalization.Payload(req.Payload),
		BusinessType: req.BusinessType,
		Device:       req.Device,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondOK(w, http.StatusOK, map[string]interface{}{
		"event_id": eventID,
	})
}

// Recommend handles POST /recommend
func (h *PersonalizationHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := common.ParseJSONBody(r, &req, maxBodySize); err != nil {
		h.errors.HandleStatus(w, r, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		h.errors.HandleStatus(w, r, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.Recommend(r.Context(), recommendation.RecommendRequest{
		UserID:  req.UserID,
		Prompt:  req.Prompt,
		Filters: req.Filters,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	// upsell serializes as null when the heuristic did not trigger
	var upsell interface{}
	if result.Upsell != nil {
		upsell = result.Upsell
	}

	common.RespondOK(w, http.StatusOK, map[string]interface{}{
		"next":      result.Next,
		"questions": result.Questions,
		"upsell":    upsell,
	})
}
