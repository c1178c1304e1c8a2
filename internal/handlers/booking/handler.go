package booking

import (
	"net/http"
	"stay/infras/otel"
	"stay/internal/domains/booking/model/dto"
	"stay/internal/domains/booking/service"
	"stay/shared/constant"
	"stay/shared/failure"
	"stay/shared/validator"
	"stay/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/reserve", handler.Reserve)
		routerGroup.Get("/ref/{reference}", handler.GetByReference)
		routerGroup.Get("/user/{user_id}", handler.ListByUser)
	})
}

// Reserve creates a booking for a date range.
// @Summary Reserve rooms
// @Description Reserve rooms for a date range. Resubmitting the same Idempotency-Key returns the prior booking.
// @Tags Booking
// @Accept json
// @Produce json
// @Param Idempotency-Key header string true "Idempotency key (max 64 characters)"
// @Param request body dto.ReservationRequest true "Reservation Request"
// @Success 201 {object} dto.ReservationResponse "Booking created"
// @Success 200 {object} dto.ReservationResponse "Duplicate submission, prior booking returned"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/reserve [post]
func (handler *Handler) Reserve(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Reserve")
	defer scope.End()

	idempotencyKey := request.Header.Get(constant.RequestHeaderIdempotencyKey)
	if idempotencyKey == constant.Empty {
		err := failure.BadRequestFromString("Idempotency-Key header is required")
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	if len(idempotencyKey) > constant.MaxIdempotencyKeyLength {
		err := failure.BadRequestFromString("Idempotency-Key must be at most 64 characters")
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	req := dto.ReservationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate reservation request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Reserve(ctx, req, idempotencyKey)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reserve rooms")

		response.WithError(writer, err)

		return
	}

	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated

		scope.AddEvent("Booking created with reference " + res.Reference)
	}

	response.WithJSON(writer, status, res)
}

// GetByReference returns one booking with hotel details.
// @Summary Get booking by reference
// @Description Retrieve a booking by its reference, enriched with hotel details.
// @Tags Booking
// @Produce json
// @Param reference path string true "Booking reference"
// @Success 200 {object} dto.BookingDetailsResponse
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/bookings/ref/{reference} [get]
func (handler *Handler) GetByReference(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetByReference")
	defer scope.End()

	reference := chi.URLParam(request, constant.RequestParamReference)

	res, err := handler.service.GetByReference(ctx, reference)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("reference", reference).Msg("failed to get booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// ListByUser returns a user's bookings, newest first.
// @Summary List bookings by user
// @Description Retrieve all bookings of a user, newest first. Unresolvable hotels degrade to a placeholder.
// @Tags Booking
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {array} dto.BookingDetailsResponse
// @Failure 500 {object} response.Error
// @Router /v1/bookings/user/{user_id} [get]
func (handler *Handler) ListByUser(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListByUser")
	defer scope.End()

	userID := chi.URLParam(request, constant.RequestParamUserID)

	res, err := handler.service.ListByUser(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("userID", userID).Msg("failed to list bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
