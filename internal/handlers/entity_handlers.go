package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"mainthub/internal/common"
	"mainthub/internal/importer"
	"mainthub/internal/listview"
	"mainthub/internal/logging"
	"mainthub/internal/models"
	"mainthub/internal/repositories"
	"mainthub/internal/services"

	"github.com/labstack/echo/v4"
)

// maxImportSize bounds the payload accepted by the import endpoint
const maxImportSize = 10 << 20

// EntityHandlers serves the CRUD, search and import endpoints of one entity kind
type EntityHandlers[T any] struct {
	service services.EntityService[T]
}

// NewEntityHandlers creates a new entity handlers instance
func NewEntityHandlers[T any](service services.EntityService[T]) *EntityHandlers[T] {
	return &EntityHandlers[T]{service: service}
}

// ListResponse is the body of list and search responses
type ListResponse[T any] struct {
	Data  []*T            `json:"data"`
	Count int             `json:"count"`
	Sort  *listview.State `json:"sort,omitempty"`
}

// ListRequest represents query parameters for listing entities
type ListRequest struct {
	Sort  string `query:"sort"`
	Order string `query:"order"`
}

// Register mounts the kind's routes on g
func (h *EntityHandlers[T]) Register(g *echo.Group) {
	g.GET("", h.List)
	g.GET("/search", h.Search)
	g.POST("/import", h.Import)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PATCH("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// RegisterReadOnly mounts only the listing, search and lookup routes
func (h *EntityHandlers[T]) RegisterReadOnly(g *echo.Group) {
	g.GET("", h.List)
	g.GET("/search", h.Search)
	g.GET("/:id", h.Get)
}

// List handles getting every entity, optionally sorted by ?sort=<field>&order=asc|desc
func (h *EntityHandlers[T]) List(c echo.Context) error {
	ctx := c.Request().Context()

	var req ListRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return common.SendClientError(c, "Invalid query parameters")
	}

	var dir listview.Direction
	if req.Sort != "" {
		var err error
		if dir, err = listview.ParseDirection(req.Order); err != nil {
			return common.SendValidationError(c, "order", err.Error())
		}
	}

	items, err := h.service.GetAll(ctx)
	if err != nil {
		return h.respondError(c, err)
	}

	resp := ListResponse[T]{Data: items, Count: len(items)}
	if req.Sort != "" {
		view := listview.New(items)
		sorted, err := view.SortBy(req.Sort, dir)
		if err != nil {
			return common.SendValidationError(c, "sort", err.Error())
		}
		state := view.State()
		resp.Data = sorted
		resp.Sort = &state
	}

	return c.JSON(http.StatusOK, resp)
}

// Search handles case-insensitive substring search over the kind's text columns
func (h *EntityHandlers[T]) Search(c echo.Context) error {
	items, err := h.service.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, ListResponse[T]{Data: items, Count: len(items)})
}

// Get handles getting one entity by ID
func (h *EntityHandlers[T]) Get(c echo.Context) error {
	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	entity, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return h.respondError(c, err)
	}
	if entity == nil {
		return common.SendNotFoundError(c, h.service.Kind().Name)
	}
	return c.JSON(http.StatusOK, entity)
}

// Create handles creating an entity from a JSON object of column values
func (h *EntityHandlers[T]) Create(c echo.Context) error {
	fields, err := h.bindFields(c)
	if err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	entity, err := h.service.Create(c.Request().Context(), fields)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusCreated, entity)
}

// Update handles patching an entity; omitted columns are left unchanged and null clears a column
func (h *EntityHandlers[T]) Update(c echo.Context) error {
	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	fields, err := h.bindFields(c)
	if err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	entity, err := h.service.Update(c.Request().Context(), id, fields)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, entity)
}

// Delete handles removing an entity
func (h *EntityHandlers[T]) Delete(c echo.Context) error {
	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return h.respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Import handles a delimited text upload, either as multipart field "file" or as the raw body
func (h *EntityHandlers[T]) Import(c echo.Context) error {
	var payload io.Reader
	if file, err := c.FormFile("file"); err == nil {
		src, err := file.Open()
		if err != nil {
			return common.SendClientError(c, "Unable to read uploaded file")
		}
		defer src.Close()
		payload = src
	} else {
		payload = c.Request().Body
	}

	data, err := io.ReadAll(io.LimitReader(payload, maxImportSize+1))
	if err != nil {
		return common.SendClientError(c, "Unable to read import payload")
	}
	if int64(len(data)) > maxImportSize {
		return common.SendPayloadTooLargeError(c, maxImportSize)
	}

	result, err := h.service.Import(c.Request().Context(), bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, importer.ErrEmptyHeader) {
			return common.SendValidationError(c, "header", err.Error())
		}
		logging.FromContext(c.Request().Context()).Error("import failed", "kind", h.service.Kind().Name, "error", err)
		return common.SendServerError(c, "Import failed")
	}
	return c.JSON(http.StatusOK, result)
}

func (h *EntityHandlers[T]) bindFields(c echo.Context) (models.Fields, error) {
	var fields models.Fields
	if err := c.Echo().JSONSerializer.Deserialize(c, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, errors.New("request body must be a JSON object")
	}
	return fields, nil
}

// respondError maps repository errors onto the standard error envelope
func (h *EntityHandlers[T]) respondError(c echo.Context, err error) error {
	kind := h.service.Kind().Name

	var validationErr *repositories.ValidationError
	if errors.As(err, &validationErr) {
		return common.SendValidationError(c, validationErr.Field, validationErr.Message)
	}

	var persistErr *repositories.PersistError
	if errors.As(err, &persistErr) {
		switch {
		case persistErr.NotFound():
			return common.SendNotFoundError(c, kind)
		case persistErr.Conflict():
			return common.SendConflictError(c, persistErr.Message)
		}
		logging.FromContext(c.Request().Context()).Error("write rejected", "kind", kind, "op", persistErr.Op, "code", persistErr.Code, "error", persistErr.Err)
		return common.SendServerError(c, persistErr.Message)
	}

	logging.FromContext(c.Request().Context()).Error("request failed", "kind", kind, "error", err)
	return common.SendServerError(c, "Failed to load "+kind)
}
