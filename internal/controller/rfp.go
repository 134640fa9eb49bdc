package controller

import (
	"errors"
	"net/http"

	"procurement-authoring-api/internal/entity"
	"procurement-authoring-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type rfpRoutesHandler struct {
	lifecycleService service.Lifecycle
	validate         *validator.Validate
}

func newRfpRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *rfpRoutesHandler {
	h := &rfpRoutesHandler{lifecycleService: services.Lifecycle, validate: v}

	outer.GET("/rfps", h.GetRfps)
	outer.POST("/rfps/new", h.PostRfp)
	outer.PATCH("/rfps/:rfpId/edit", h.EditRfp)
	outer.POST("/rfps/drafts/new", h.PostDraft)
	outer.PATCH("/rfps/drafts/:draftId/edit", h.EditDraft)
	outer.POST("/rfps/drafts/:draftId/publish", h.PublishDraft)

	return h
}

type getRfpsInput struct {
	Limit  int32 `query:"limit" validate:"gte=0,lte=100"`
	Offset int32 `query:"offset" validate:"gte=0"`
}

// /rfps
func (h *rfpRoutesHandler) GetRfps(c echo.Context) error {
	input := getRfpsInput{Limit: defaultLimit, Offset: defaultOffset}
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	pg := entity.NewPaginationInput(int(input.Limit), int(input.Offset))
	collections, err := h.lifecycleService.List(c.Request().Context(), pg)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{err.Error()}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, collections); e != nil {
		return e
	}

	return nil
}

type postRfpInput struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=1000"`
	RfpText     string `json:"rfpText" validate:""`
}

// /rfps/new
func (h *rfpRoutesHandler) PostRfp(c echo.Context) error {
	var input postRfpInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	model := &entity.CreateRfpInput{
		Title: input.Title, Description: input.Description, RfpText: input.RfpText,
	}
	rfp, err := h.lifecycleService.AddRfp(c.Request().Context(), model)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, rfp); e != nil {
		return e
	}

	return nil
}

type postDraftInput struct {
	Title        string `json:"title" validate:"required,max=200"`
	Description  string `json:"description" validate:"max=1000"`
	RfpText      string `json:"rfpText" validate:""`
	Completeness int    `json:"completeness" validate:"gte=0,lte=100"`
}

// /rfps/drafts/new
func (h *rfpRoutesHandler) PostDraft(c echo.Context) error {
	var input postDraftInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	model := &entity.CreateDraftInput{
		Title: input.Title, Description: input.Description,
		RfpText: input.RfpText, Completeness: input.Completeness,
	}
	draft, err := h.lifecycleService.AddDraft(c.Request().Context(), model)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, draft); e != nil {
		return e
	}

	return nil
}

type editRfpInput struct {
	Title        *string `json:"title" validate:"omitempty,max=200"`
	Description  *string `json:"description" validate:"omitempty,max=1000"`
	DueDate      *string `json:"dueDate" validate:"omitempty,max=40"`
	Responses    *int    `json:"responses" validate:"omitempty,gte=0"`
	Completeness *int    `json:"completeness" validate:"omitempty,gte=0,lte=100"`
	RfpText      *string `json:"rfpText"`
}

func (input *editRfpInput) toPatch() *entity.RfpPatch {
	return &entity.RfpPatch{
		Title:        input.Title,
		Description:  input.Description,
		DueDate:      input.DueDate,
		Responses:    input.Responses,
		Completeness: input.Completeness,
		RfpText:      input.RfpText,
	}
}

// /rfps/:rfpId/edit
func (h *rfpRoutesHandler) EditRfp(c echo.Context) error {
	var input editRfpInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	rfp, err := h.lifecycleService.UpdateRfp(c.Request().Context(), c.Param("rfpId"), input.toPatch())
	if err == nil {
		if e := c.JSON(http.StatusOK, rfp); e != nil {
			return e
		}

		return nil
	}

	switch {
	case errors.Is(err, service.ErrRfpNotFound):
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no rfp with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

// /rfps/drafts/:draftId/edit
func (h *rfpRoutesHandler) EditDraft(c echo.Context) error {
	var input editRfpInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	draft, err := h.lifecycleService.UpdateDraft(c.Request().Context(), c.Param("draftId"), input.toPatch())
	if err == nil {
		if e := c.JSON(http.StatusOK, draft); e != nil {
			return e
		}

		return nil
	}

	switch {
	case errors.Is(err, service.ErrDraftNotFound):
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no draft with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

// /rfps/drafts/:draftId/publish
// An unknown draft id publishes nothing and answers 204.
func (h *rfpRoutesHandler) PublishDraft(c echo.Context) error {
	published, err := h.lifecycleService.PublishDraft(c.Request().Context(), c.Param("draftId"))
	if err == nil {
		if published == nil {
			return c.NoContent(http.StatusNoContent)
		}
		if e := c.JSON(http.StatusOK, published); e != nil {
			return e
		}

		return nil
	}

	switch {
	case errors.Is(err, service.ErrDraftNotComplete):
		if e := c.JSON(http.StatusConflict, errorResponse{"Draft must reach 100% completeness before publishing"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}
