package hotel

import (
	"net/http"
	"stay/infras/otel"
	availabilityDto "stay/internal/domains/availability/model/dto"
	availabilityService "stay/internal/domains/availability/service"
	"stay/internal/domains/hotel/service"
	"stay/shared/constant"
	"stay/shared/validator"
	"stay/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service      service.Hotel
	availability availabilityService.Availability
	otel         otel.Otel
}

func New(service service.Hotel, availability availabilityService.Availability, otel otel.Otel) Handler {
	return Handler{
		service:      service,
		availability: availability,
		otel:         otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/hotels", func(routerGroup chi.Router) {
		routerGroup.Post("/availability", handler.CheckAvailability)
		routerGroup.Post("/summary", handler.BookingSummary)
		routerGroup.Get("/{id}/info", handler.GetInfo)
	})
}

// CheckAvailability reports whether every requested category has capacity.
// @Summary Check room availability
// @Description Check whether every requested room category has capacity on every night of the range.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param request body dto.CheckRequest true "Availability Check Request"
// @Success 200 {object} dto.CheckResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/availability [post]
func (handler *Handler) CheckAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	req := availabilityDto.CheckRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate availability check request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.availability.Check(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check availability")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// BookingSummary prices a stay without touching inventory.
// @Summary Preview booking cost
// @Description Price a prospective stay without reserving capacity.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param request body dto.SummaryRequest true "Booking Summary Request"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/summary [post]
func (handler *Handler) BookingSummary(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookingSummary")
	defer scope.End()

	req := availabilityDto.SummaryRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate booking summary request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.availability.Summary(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build booking summary")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetInfo returns display data for one hotel.
// @Summary Get hotel info
// @Description Retrieve hotel display data by id.
// @Tags Hotel
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} dto.HotelSummary
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id}/info [get]
func (handler *Handler) GetInfo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInfo")
	defer scope.End()

	hotelID := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.GetSummary(ctx, hotelID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("hotelID", hotelID).Msg("failed to get hotel info")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
