package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"pereval/internal/middleware"
	"pereval/internal/repositories"
	"pereval/internal/services"
)

const (
	msgBadRequest     = "Bad Request: missing or invalid fields"
	msgInternal       = "Internal server error"
	msgNotFound       = "Pereval not found"
	msgEditForbidden  = "editing forbidden"
	msgUpdateNotFound = "not found"
)

type PerevalHandler struct {
	service services.PerevalService
}

func NewPerevalHandler(service services.PerevalService) *PerevalHandler {
	return &PerevalHandler{service: service}
}

// Submit
// @Summary      Добавить перевал
// @Description  Сохраняет перевал вместе с автором, координатами и фото. Статус новой записи: new.
// @Tags         Pereval
// @Accept       json
// @Produce      json
// @Param        pereval  body      PerevalRequest  true  "Данные перевала"
// @Success      200      {object}  SubmitResponse
// @Failure      400      {object}  SubmitResponse
// @Failure      500      {object}  SubmitResponse
// @Router       /submitData [post]
func (h *PerevalHandler) Submit(c *gin.Context) {
	log := middleware.GetLogger(c)

	var req PerevalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logValidation(log, err, "submit")
		c.JSON(http.StatusBadRequest, submitFailed(http.StatusBadRequest, msgBadRequest))
		return
	}
	p, err := req.toModel()
	if err != nil {
		logValidation(log, err, "submit")
		c.JSON(http.StatusBadRequest, submitFailed(http.StatusBadRequest, msgBadRequest))
		return
	}

	id, err := h.service.Submit(c.Request.Context(), p)
	if err != nil {
		logDBError(log, err, "submit pereval failed")
		c.JSON(http.StatusInternalServerError, submitFailed(http.StatusInternalServerError, msgInternal))
		return
	}
	log.Info().Int64("pereval_id", id).Int("images", len(p.Images)).Msg("pereval submitted")
	c.JSON(http.StatusOK, SubmitResponse{Status: http.StatusOK, ID: &id})
}

// GetByID
// @Summary      Перевал по id
// @Description  Полная запись: автор, координаты, уровни, статус модерации и фото в base64.
// @Tags         Pereval
// @Produce      json
// @Param        id   path      int  true  "ID перевала"
// @Success      200  {object}  PerevalResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /submitData/{id} [get]
func (h *PerevalHandler) GetByID(c *gin.Context) {
	log := middleware.GetLogger(c)

	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid id"})
		return
	}
	p, err := h.service.GetByID(c.Request.Context(), id)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Detail: msgNotFound})
		return
	case err != nil:
		logDBError(log, err, "get pereval failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: msgInternal})
		return
	}
	c.JSON(http.StatusOK, newPerevalResponse(p))
}

// ListByEmail
// @Summary      Перевалы пользователя
// @Description  Список перевалов автора по email, по времени добавления. Без email возвращается пустой список.
// @Tags         Pereval
// @Produce      json
// @Param        user__email  query     string  false  "Email автора"
// @Success      200          {array}   models.PerevalSummary
// @Failure      500          {object}  ErrorResponse
// @Router       /submitData/ [get]
func (h *PerevalHandler) ListByEmail(c *gin.Context) {
	log := middleware.GetLogger(c)

	list, err := h.service.ListByUserEmail(c.Request.Context(), c.Query("user__email"))
	if err != nil {
		logDBError(log, err, "list perevals failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: msgInternal})
		return
	}
	c.JSON(http.StatusOK, list)
}

// Update
// @Summary      Редактировать перевал
// @Description  Заменяет поля, уровни и фото, пока статус записи new. Координаты и автор не меняются.
// @Tags         Pereval
// @Accept       json
// @Produce      json
// @Param        id       path      int             true  "ID перевала"
// @Param        pereval  body      PerevalRequest  true  "Новые данные"
// @Success      200      {object}  UpdateResponse
// @Failure      400      {object}  UpdateResponse
// @Failure      404      {object}  UpdateResponse
// @Failure      409      {object}  UpdateResponse
// @Failure      500      {object}  UpdateResponse
// @Router       /submitData/{id} [patch]
func (h *PerevalHandler) Update(c *gin.Context) {
	log := middleware.GetLogger(c)

	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, UpdateResponse{Message: msgBadRequest})
		return
	}
	var req PerevalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logValidation(log, err, "update")
		c.JSON(http.StatusBadRequest, UpdateResponse{Message: msgBadRequest})
		return
	}
	p, err := req.toModel()
	if err != nil {
		logValidation(log, err, "update")
		c.JSON(http.StatusBadRequest, UpdateResponse{Message: msgBadRequest})
		return
	}

	err = h.service.Update(c.Request.Context(), id, p)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, UpdateResponse{Message: msgUpdateNotFound})
	case errors.Is(err, services.ErrEditForbidden):
		log.Info().Int64("pereval_id", id).Msg("update rejected: status is not new")
		c.JSON(http.StatusConflict, UpdateResponse{Message: msgEditForbidden})
	case err != nil:
		logDBError(log, err, "update pereval failed")
		c.JSON(http.StatusInternalServerError, UpdateResponse{Message: msgInternal})
	default:
		log.Info().Int64("pereval_id", id).Msg("pereval updated")
		c.JSON(http.StatusOK, UpdateResponse{State: 1, Message: "ok"})
	}
}

// Card
// @Summary      PDF-карточка перевала
// @Tags         Pereval
// @Produce      application/pdf
// @Param        id   path      int  true  "ID перевала"
// @Success      200  {file}    binary
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      503  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /submitData/{id}/card [get]
func (h *PerevalHandler) Card(c *gin.Context) {
	log := middleware.GetLogger(c)

	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid id"})
		return
	}
	out, err := h.service.RenderCard(c.Request.Context(), id)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Detail: msgNotFound})
		return
	case errors.Is(err, services.ErrCardUnavailable):
		log.Warn().Err(err).Msg("pass card unavailable")
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Detail: "pass card is not available"})
		return
	case err != nil:
		logDBError(log, err, "render pass card failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: msgInternal})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="pereval_%d.pdf"`, id))
	c.Data(http.StatusOK, "application/pdf", out)
}

func submitFailed(status int, msg string) SubmitResponse {
	return SubmitResponse{Status: status, Message: &msg}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	return id, err == nil
}

func logValidation(log *zerolog.Logger, err error, op string) {
	e := log.Warn().Err(err).Str("op", op)
	if fields := validationFields(err); len(fields) > 0 {
		e = e.Strs("fields", fields)
	}
	e.Msg("invalid request body")
}

func logDBError(log *zerolog.Logger, err error, msg string) {
	e := log.Error().Err(err)
	if code := repositories.SQLState(err); code != "" {
		e = e.Str("sqlstate", code)
	}
	e.Msg(msg)
}
