package handler

import (
	"net/http"
	"strconv"

	"ombaro-backend/internal/usecase"
	"ombaro-backend/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type VendorHandler struct {
	vendorUsecase usecase.VendorUsecase
}

func NewVendorHandler(vendorUsecase usecase.VendorUsecase) *VendorHandler {
	return &VendorHandler{vendorUsecase: vendorUsecase}
}

// GetVendors lists active vendors
// @Summary List vendors
// @Description List active vendors ordered by rating
// @Tags Vendors
// @Produce json
// @Success 200 {object} response.Response
// @Router /vendors [get]
func (h *VendorHandler) GetVendors(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.vendorUsecase.GetVendors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get vendors")
		return
	}

	response.Success(w, http.StatusOK, "Vendors retrieved successfully", vendors)
}

// GetNearbyVendors searches vendors around a point
// @Summary Nearby vendors
// @Description Search active vendors within a radius of a lat/lng point
// @Tags Vendors
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius_km query number false "Radius in km (default 10)"
// @Success 200 {object} response.Response
// @Router /vendors/nearby [get]
func (h *VendorHandler) GetNearbyVendors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		response.Error(w, http.StatusBadRequest, "Invalid latitude", nil)
		return
	}

	lng, err := strconv.ParseFloat(q.Get("lng"), 64)
	if err != nil || lng < -180 || lng > 180 {
		response.Error(w, http.StatusBadRequest, "Invalid longitude", nil)
		return
	}

	radiusKm := 10.0
	if raw := q.Get("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil || radiusKm <= 0 || radiusKm > 100 {
			response.Error(w, http.StatusBadRequest, "Invalid radius", nil)
			return
		}
	}

	vendors, err := h.vendorUsecase.GetNearbyVendors(r.Context(), lat, lng, radiusKm)
	if err != nil {
		response.InternalServerError(w, "Failed to search vendors")
		return
	}

	response.Success(w, http.StatusOK, "Vendors retrieved successfully", vendors)
}

// GetVendor returns one vendor
// @Summary Get vendor
// @Description Get a vendor by ID
// @Tags Vendors
// @Produce json
// @Param id path string true "Vendor ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /vendors/{id} [get]
func (h *VendorHandler) GetVendor(w http.ResponseWriter, r *http.Request) {
	vendorID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid vendor ID", nil)
		return
	}

	vendor, err := h.vendorUsecase.GetVendor(r.Context(), vendorID)
	if err != nil {
		switch err {
		case usecase.ErrVendorNotFound:
			response.NotFound(w, "Vendor not found")
		default:
			response.InternalServerError(w, "Failed to get vendor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Vendor retrieved successfully", vendor)
}

// GetVendorServices lists a vendor's active services
// @Summary Vendor services
// @Description List a vendor's active services
// @Tags Vendors
// @Produce json
// @Param id path string true "Vendor ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /vendors/{id}/services [get]
func (h *VendorHandler) GetVendorServices(w http.ResponseWriter, r *http.Request) {
	vendorID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid vendor ID", nil)
		return
	}

	services, err := h.vendorUsecase.GetVendorServices(r.Context(), vendorID)
	if err != nil {
		switch err {
		case usecase.ErrVendorNotFound:
			response.NotFound(w, "Vendor not found")
		default:
			response.InternalServerError(w, "Failed to get services")
		}
		return
	}

	response.Success(w, http.StatusOK, "Services retrieved successfully", services)
}
