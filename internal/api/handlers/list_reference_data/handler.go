package list_reference_data

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CustomerPortal/internal/api/handlers"
	"github.com/m04kA/SMC-CustomerPortal/internal/api/middleware"
	"github.com/m04kA/SMC-CustomerPortal/internal/service/refdata"
)

const (
	msgUnauthorized     = "требуется авторизация"
	msgInvalidAreaID    = "некорректный ID района"
	msgInvalidDistrict  = "некорректный ID микрорайона"
	msgInvalidParentID  = "некорректный ID родительской услуги"
	msgInvalidPricingID = "некорректные параметры прайса"
	msgNotFound         = "справочник не найден"
	msgUnavailable      = "справочные данные временно недоступны"
)

type Handler struct {
	service RefDataService
	logger  Logger
}

func NewHandler(service RefDataService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleAreas GET /api/v1/reference/areas
func (h *Handler) HandleAreas(w http.ResponseWriter, r *http.Request) {
	token, ok := h.token(w, r)
	if !ok {
		return
	}

	areas, err := h.service.Areas(r.Context(), token)
	if err != nil {
		h.respondRefError(w, "areas", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromOptions(areas))
}

// HandleDistricts GET /api/v1/reference/areas/{areaId}/districts
func (h *Handler) HandleDistricts(w http.ResponseWriter, r *http.Request) {
	token, ok := h.token(w, r)
	if !ok {
		return
	}

	areaID, err := strconv.ParseInt(mux.Vars(r)["areaId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidAreaID)
		return
	}

	districts, err := h.service.Districts(r.Context(), token, areaID)
	if err != nil {
		h.respondRefError(w, "districts", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromOptions(districts))
}

// HandleProperties GET /api/v1/reference/districts/{districtId}/properties
func (h *Handler) HandleProperties(w http.ResponseWriter, r *http.Request) {
	token, ok := h.token(w, r)
	if !ok {
		return
	}

	districtID, err := strconv.ParseInt(mux.Vars(r)["districtId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDistrict)
		return
	}

	properties, err := h.service.Properties(r.Context(), token, districtID)
	if err != nil {
		h.respondRefError(w, "properties", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromProperties(properties))
}

// HandleResidenceTypes GET /api/v1/reference/residence-types
func (h *Handler) HandleResidenceTypes(w http.ResponseWriter, r *http.Request) {
	token, ok := h.token(w, r)
	if !ok {
		return
	}

	residenceTypes, err := h.service.ResidenceTypes(r.Context(), token)
	if err != nil {
		h.respondRefError(w, "residence-types", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromResidenceTypes(residenceTypes))
}

// HandleServices GET /api/v1/reference/services?parentId=N
func (h *Handler) HandleServices(w http.ResponseWriter, r *http.Request) {
	token, ok := h.token(w, r)
	if !ok {
		return
	}

	var parentID *int64
	if raw := r.URL.Query().Get("parentId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidParentID)
			return
		}
		parentID = &id
	}

	services, err := h.service.Services(r.Context(), token, parentID)
	if err != nil {
		h.respondRefError(w, "services", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromServices(services))
}

// HandleFrequencies GET /api/v1/reference/frequencies
func (h *Handler) HandleFrequencies(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, fromFrequencies(h.service.Frequencies()))
}

// HandlePricing GET /api/v1/reference/pricing?serviceId=N&residenceTypeId=M
func (h *Handler) HandlePricing(w http.ResponseWriter, r *http.Request) {
	token, ok := h.token(w, r)
	if !ok {
		return
	}

	serviceID, err1 := strconv.ParseInt(r.URL.Query().Get("serviceId"), 10, 64)
	residenceTypeID, err2 := strconv.ParseInt(r.URL.Query().Get("residenceTypeId"), 10, 64)
	if err1 != nil || err2 != nil {
		handlers.RespondBadRequest(w, msgInvalidPricingID)
		return
	}

	prices, err := h.service.Pricing(r.Context(), token, serviceID, residenceTypeID)
	if err != nil {
		h.respondRefError(w, "pricing", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromPrices(prices))
}

// token извлекает токен авторизации, отвечая 401 при его отсутствии
func (h *Handler) token(w http.ResponseWriter, r *http.Request) (string, bool) {
	if _, ok := middleware.GetUserID(r.Context()); !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return "", false
	}
	return middleware.GetAuthToken(r.Context()), true
}

// respondRefError единая раскладка ошибок справочников
func (h *Handler) respondRefError(w http.ResponseWriter, collection string, err error) {
	switch {
	case errors.Is(err, refdata.ErrUnauthorized):
		handlers.RespondUnauthorized(w, msgUnauthorized)

	case errors.Is(err, refdata.ErrNotFound):
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, refdata.ErrUnavailable):
		h.logger.Warn("GET /reference/%s - Backend unavailable: %v", collection, err)
		handlers.RespondError(w, http.StatusBadGateway, msgUnavailable)

	default:
		h.logger.Error("GET /reference/%s - Failed: %v", collection, err)
		handlers.RespondInternalError(w)
	}
}
