package controller

import (
	"errors"
	"net/http"

	"procurement-authoring-api/internal/entity"
	"procurement-authoring-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type rfiRoutesHandler struct {
	rfiService service.RfiResponses
	validate   *validator.Validate
}

func newRfiRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *rfiRoutesHandler {
	h := &rfiRoutesHandler{rfiService: services.RfiResponses, validate: v}

	outer.GET("/rfi/responses", h.GetResponses)
	outer.POST("/rfi/responses/new", h.PostResponse)
	outer.PUT("/rfi/responses/:responseId/approve", h.ApproveResponse)
	outer.PUT("/rfi/responses/:responseId/reject", h.RejectResponse)
	outer.PUT("/rfi/responses/:responseId/grade", h.GradeResponse)

	return h
}

type getResponsesInput struct {
	Limit  int32 `query:"limit" validate:"gte=0,lte=100"`
	Offset int32 `query:"offset" validate:"gte=0"`
}

// /rfi/responses
func (h *rfiRoutesHandler) GetResponses(c echo.Context) error {
	input := getResponsesInput{Limit: defaultLimit, Offset: defaultOffset}
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
	responses, err := h.rfiService.List(c.Request().Context(), pg)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{err.Error()}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, responses); e != nil {
		return e
	}

	return nil
}

type postResponseInput struct {
	VendorName   string `json:"vendorName" validate:"required,max=200"`
	Email        string `json:"email" validate:"required,email,max=200"`
	ContactEmail string `json:"contactEmail" validate:"omitempty,email,max=200"`
	Subject      string `json:"subject" validate:"required,max=300"`
	Category     string `json:"category" validate:"max=100"`
	CompanyId    string `json:"companyId" validate:"max=100"`
}

// /rfi/responses/new
func (h *rfiRoutesHandler) PostResponse(c echo.Context) error {
	var input postResponseInput
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

	model := &entity.CreateRfiResponseInput{
		VendorName: input.VendorName, Email: input.Email, ContactEmail: input.ContactEmail,
		Subject: input.Subject, Category: input.Category, CompanyId: input.CompanyId,
	}
	response, err := h.rfiService.AddResponse(c.Request().Context(), model)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, response); e != nil {
		return e
	}

	return nil
}

// /rfi/responses/:responseId/approve
func (h *rfiRoutesHandler) ApproveResponse(c echo.Context) error {
	response, err := h.rfiService.ApproveResponse(c.Request().Context(), c.Param("responseId"))

	return h.respond(c, response, err)
}

// /rfi/responses/:responseId/reject
func (h *rfiRoutesHandler) RejectResponse(c echo.Context) error {
	response, err := h.rfiService.RejectResponse(c.Request().Context(), c.Param("responseId"))

	return h.respond(c, response, err)
}

type gradeResponseInput struct {
	LlmScore  *int `json:"llmScore" validate:"omitempty,gte=0,lte=100"`
	UserScore *int `json:"userScore" validate:"omitempty,gte=0,lte=100"`
}

// /rfi/responses/:responseId/grade
func (h *rfiRoutesHandler) GradeResponse(c echo.Context) error {
	var input gradeResponseInput
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

	response, err := h.rfiService.GradeResponse(c.Request().Context(), c.Param("responseId"),
		input.LlmScore, input.UserScore)

	return h.respond(c, response, err)
}

func (h *rfiRoutesHandler) respond(c echo.Context, response *entity.RfiResponseOutputModel, err error) error {
	if err == nil {
		if e := c.JSON(http.StatusOK, response); e != nil {
			return e
		}

		return nil
	}

	switch {
	case errors.Is(err, service.ErrResponseNotFound):
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no rfi response with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}
