package photo

import (
	"net/http"
	"seastay/infras/otel"
	"seastay/internal/domains/photo/model/dto"
	"seastay/internal/domains/photo/service"
	"seastay/shared/constant"
	"seastay/shared/validator"
	"seastay/transport/http/response"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Photo
	otel    otel.Otel
}

func New(service service.Photo, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/properties/{propertyId}/photos", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.ListPhotos)
		routerGroup.Post("/", handler.UploadPhoto)
		routerGroup.Delete("/{id}", handler.DeletePhoto)
	})
}

func (handler *Handler) ListPhotos(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListPhotos")
	defer scope.End()

	propertyID := chi.URLParam(request, constant.RequestParamPropertyID)

	res, err := handler.service.List(ctx, propertyID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("propertyID", propertyID).Msg("failed to list photos")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) UploadPhoto(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadPhoto")
	defer scope.End()

	propertyID := chi.URLParam(request, constant.RequestParamPropertyID)

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(writer, err)

		return
	}

	_, fileHeader, err := request.FormFile(constant.FormFieldImage)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(writer, err)

		return
	}

	position, _ := strconv.Atoi(request.FormValue(constant.FormFieldPosition))

	req := dto.UploadPhotoRequest{
		Image:    fileHeader,
		Caption:  request.FormValue(constant.FormFieldCaption),
		Position: position,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Upload(ctx, propertyID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload photo")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

func (handler *Handler) DeletePhoto(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePhoto")
	defer scope.End()

	propertyID := chi.URLParam(request, constant.RequestParamPropertyID)
	photoID := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Delete(ctx, propertyID, photoID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("photoID", photoID).Msg("failed to delete photo")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Photo deleted successfully")
}
