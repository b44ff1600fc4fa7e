package layout

import (
	"net/http"
	"strconv"

	"pureheart/infras/otel"
	"pureheart/internal/domains/layout/model/dto"
	"pureheart/internal/domains/layout/service"
	"pureheart/shared/constant"
	"pureheart/shared/failure"
	"pureheart/shared/validator"
	"pureheart/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Layout
	otel    otel.Otel
}

func New(service service.Layout, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/layout", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetLayout)
		routerGroup.Get("/preview", handler.GetPreview)
		routerGroup.Post("/tables", handler.CreateTable)
		routerGroup.Post("/static-items", handler.CreateStaticItem)
		routerGroup.Post("/walls", handler.CreateWall)
		routerGroup.Post("/walls/draw", handler.DrawWall)
		routerGroup.Patch("/items/{id}/move", handler.MoveItem)
		routerGroup.Patch("/items/{id}/rotate", handler.RotateItem)
		routerGroup.Delete("/items/{id}", handler.DeleteItem)
		routerGroup.Post("/save", handler.SaveLayout)
		routerGroup.Post("/clear", handler.ClearLayout)
	})
}

// GetLayout returns every placed item of a room.
// @Summary Get a room layout
// @Tags Layout
// @Produce json
// @Param room_id query string false "Room ID, defaults to the default room"
// @Success 200 {object} response.Data[dto.LayoutResponse] "Room layout"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/layout [get]
func (handler *Handler) GetLayout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLayout")
	defer scope.End()

	layout, err := handler.service.Get(ctx, r.URL.Query().Get(constant.RequestParamRoomID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get layout")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, layout)
}

// GetPreview renders the layout as a scaled-down text grid.
// @Summary Get a layout preview
// @Tags Layout
// @Produce json
// @Param room_id query string false "Room ID"
// @Param scale query int false "Scale divisor"
// @Success 200 {object} response.Data[dto.PreviewResponse] "Layout preview"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/layout/preview [get]
func (handler *Handler) GetPreview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPreview")
	defer scope.End()

	query := r.URL.Query()

	scale := 0

	if value := query.Get(constant.RequestParamScale); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			err = failure.BadRequestFromString("scale must be a number")
			scope.TraceError(err)

			response.WithError(w, err)

			return
		}

		scale = parsed
	}

	preview, err := handler.service.Preview(ctx, query.Get(constant.RequestParamRoomID), scale)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to render layout preview")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, preview)
}

// CreateTable places a new table.
// @Summary Place a table
// @Description Unset position and size fall back to the table kind defaults.
// @Tags Layout
// @Accept json
// @Produce json
// @Param request body dto.CreateTableRequest true "Create Table Request"
// @Success 201 {object} response.Data[dto.TableResponse] "Table placed"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/layout/tables [post]
// @Security ApiKeyAuth
func (handler *Handler) CreateTable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTable")
	defer scope.End()

	req := dto.CreateTableRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	table, err := handler.service.CreateTable(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create table")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Table placed by user " + user)

	response.WithJSON(w, http.StatusCreated, table)
}

// CreateStaticItem places decor such as a plant or a bar counter.
// @Summary Place a static item
// @Tags Layout
// @Accept json
// @Produce json
// @Param request body dto.CreateStaticItemRequest true "Create Static Item Request"
// @Success 201 {object} response.Data[dto.StaticItemResponse] "Static item placed"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/layout/static-items [post]
// @Security ApiKeyAuth
func (handler *Handler) CreateStaticItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateStaticItem")
	defer scope.End()

	req := dto.CreateStaticItemRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	item, err := handler.service.CreateStaticItem(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create static item")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, item)
}

// CreateWall places a wall segment with explicit coordinates.
// @Summary Place a wall
// @Tags Layout
// @Accept json
// @Produce json
// @Param request body dto.CreateWallRequest true "Create Wall Request"
// @Success 201 {object} response.Data[dto.WallResponse] "Wall placed"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/layout/walls [post]
// @Security ApiKeyAuth
func (handler *Handler) CreateWall(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateWall")
	defer scope.End()

	req := dto.CreateWallRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	wall, err := handler.service.CreateWall(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create wall")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, wall)
}

// DrawWall turns one pointer drag into a snapped wall.
// @Summary Draw a wall
// @Description Drags shorter than the minimum length are discarded with 400.
// @Tags Layout
// @Accept json
// @Produce json
// @Param request body dto.DrawWallRequest true "Draw Wall Request"
// @Success 201 {object} response.Data[dto.WallResponse] "Wall drawn"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/layout/walls/draw [post]
// @Security ApiKeyAuth
func (handler *Handler) DrawWall(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DrawWall")
	defer scope.End()

	req := dto.DrawWallRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	wall, err := handler.service.DrawWall(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to draw wall")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, wall)
}

// MoveItem drags an item by a pointer delta.
// @Summary Move an item
// @Tags Layout
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body dto.MoveItemRequest true "Move Item Request"
// @Success 200 {object} response.Data[dto.ItemResponse] "Moved item"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/layout/items/{id}/move [patch]
// @Security ApiKeyAuth
func (handler *Handler) MoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MoveItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.MoveItemRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	item, err := handler.service.MoveItem(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to move item")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, item)
}

// RotateItem turns an item a quarter turn clockwise.
// @Summary Rotate an item
// @Tags Layout
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} response.Data[dto.ItemResponse] "Rotated item"
// @Failure 404 {object} response.Error
// @Router /v1/layout/items/{id}/rotate [patch]
// @Security ApiKeyAuth
func (handler *Handler) RotateItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RotateItem")
	defer scope.End()

	item, err := handler.service.RotateItem(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to rotate item")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, item)
}

// DeleteItem removes an item from the layout.
// @Summary Delete an item
// @Description Tables are deactivated so their reservations stay intact.
// @Tags Layout
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} response.Message "Item deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/layout/items/{id} [delete]
// @Security ApiKeyAuth
func (handler *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteItem")
	defer scope.End()

	if err := handler.service.DeleteItem(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete item")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Item deleted by user " + user)

	response.WithMessage(w, http.StatusOK, "Item deleted successfully")
}

// SaveLayout replaces the whole layout of a room.
// @Summary Save a layout
// @Description Reservations on removed tables move to a free table of the same type or are cancelled.
// @Tags Layout
// @Accept json
// @Produce json
// @Param request body dto.SaveLayoutRequest true "Save Layout Request"
// @Success 200 {object} response.Data[dto.LayoutResponse] "Saved layout"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/layout/save [post]
// @Security ApiKeyAuth
func (handler *Handler) SaveLayout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveLayout")
	defer scope.End()

	req := dto.SaveLayoutRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	layout, err := handler.service.Save(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save layout")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Layout saved by user " + user)

	response.WithJSON(w, http.StatusOK, layout)
}

// ClearLayout removes every item of a room.
// @Summary Clear a layout
// @Description Requires confirm=true, otherwise answers 428.
// @Tags Layout
// @Produce json
// @Param room_id query string false "Room ID"
// @Param confirm query bool true "Confirm the clear"
// @Success 200 {object} response.Data[dto.LayoutResponse] "Empty layout"
// @Failure 404 {object} response.Error
// @Failure 428 {object} response.Error
// @Router /v1/layout/clear [post]
// @Security ApiKeyAuth
func (handler *Handler) ClearLayout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ClearLayout")
	defer scope.End()

	query := r.URL.Query()
	confirm, _ := strconv.ParseBool(query.Get(constant.RequestParamConfirm))

	layout, err := handler.service.Clear(ctx, query.Get(constant.RequestParamRoomID), confirm)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to clear layout")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, layout)
}
