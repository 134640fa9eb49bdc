package controller

import (
	"errors"
	"io"
	"net/http"
	"time"

	"procurement-authoring-api/internal/entity"
	"procurement-authoring-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type wizardRoutesHandler struct {
	wizardService    service.Wizard
	draftService     service.Draft
	lifecycleService service.Lifecycle
	validate         *validator.Validate
}

func newWizardRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *wizardRoutesHandler {
	h := &wizardRoutesHandler{
		wizardService:    services.Wizard,
		draftService:     services.Draft,
		lifecycleService: services.Lifecycle,
		validate:         v,
	}

	outer.POST("/wizard/sessions", h.CreateSession)
	outer.GET("/wizard/sessions/:sessionId", h.GetSession)
	outer.GET("/wizard/sessions/:sessionId/state", h.GetState)
	outer.GET("/wizard/sessions/:sessionId/snapshot", h.GetSnapshot)
	outer.POST("/wizard/sessions/:sessionId/next", h.Next)
	outer.POST("/wizard/sessions/:sessionId/previous", h.Previous)
	outer.PUT("/wizard/sessions/:sessionId/title", h.SetTitle)
	outer.PUT("/wizard/sessions/:sessionId/category", h.SelectCategory)
	outer.POST("/wizard/sessions/:sessionId/subcategories/:subcategoryId/toggle", h.ToggleSubcategory)
	outer.POST("/wizard/sessions/:sessionId/attributes/:attributeId/toggle", h.ToggleAttribute)
	outer.PUT("/wizard/sessions/:sessionId/custom-attributes", h.SetCustomAttributes)
	outer.POST("/wizard/sessions/:sessionId/distribution/:optionId/toggle", h.ToggleDistribution)
	outer.POST("/wizard/sessions/:sessionId/info-options/:optionId/toggle", h.ToggleInfoOption)
	outer.POST("/wizard/sessions/:sessionId/contacts", h.AddContact)
	outer.DELETE("/wizard/sessions/:sessionId/contacts/:contactId", h.RemoveContact)
	outer.POST("/wizard/sessions/:sessionId/contacts/import", h.ImportContacts)
	outer.PUT("/wizard/sessions/:sessionId/timeline/:label", h.EditTimeline)
	outer.POST("/wizard/sessions/:sessionId/generate", h.Generate)
	outer.POST("/wizard/sessions/:sessionId/save-draft", h.SaveDraft)

	return h
}

// /wizard/sessions
func (h *wizardRoutesHandler) CreateSession(c echo.Context) error {
	sess, err := h.wizardService.CreateSession(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	if e := c.JSON(http.StatusOK, sess); e != nil {
		return e
	}

	return nil
}

// /wizard/sessions/:sessionId
func (h *wizardRoutesHandler) GetSession(c echo.Context) error {
	sess, err := h.wizardService.GetSession(c.Request().Context(), c.Param("sessionId"))
	if err != nil {
		return h.fail(c, err)
	}
	if e := c.JSON(http.StatusOK, sess); e != nil {
		return e
	}

	return nil
}

// /wizard/sessions/:sessionId/state
func (h *wizardRoutesHandler) GetState(c echo.Context) error {
	state, err := h.wizardService.GetState(c.Request().Context(), c.Param("sessionId"))
	if err != nil {
		return h.fail(c, err)
	}
	if e := c.JSON(http.StatusOK, state); e != nil {
		return e
	}

	return nil
}

// /wizard/sessions/:sessionId/snapshot
func (h *wizardRoutesHandler) GetSnapshot(c echo.Context) error {
	snapshot, err := h.wizardService.Snapshot(c.Request().Context(), c.Param("sessionId"))
	if err != nil {
		return h.fail(c, err)
	}
	if e := c.JSON(http.StatusOK, snapshot); e != nil {
		return e
	}

	return nil
}

// /wizard/sessions/:sessionId/next
func (h *wizardRoutesHandler) Next(c echo.Context) error {
	state, err := h.wizardService.Next(c.Request().Context(), c.Param("sessionId"))
	if err != nil {
		return h.fail(c, err)
	}
	if e := c.JSON(http.StatusOK, state); e != nil {
		return e
	}

	return nil
}

// /wizard/sessions/:sessionId/previous
func (h *wizardRoutesHandler) Previous(c echo.Context) error {
	state, err := h.wizardService.Previous(c.Request().Context(), c.Param("sessionId"))
	if err != nil {
		return h.fail(c, err)
	}
	if e := c.JSON(http.StatusOK, state); e != nil {
		return e
	}

	return nil
}

type setTitleInput struct {
	Title string `json:"title" validate:"max=200"`
}

// /wizard/sessions/:sessionId/title
func (h *wizardRoutesHandler) SetTitle(c echo.Context) error {
	var input setTitleInput
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

	if err := h.wizardService.SetTitle(c.Request().Context(), c.Param("sessionId"), input.Title); err != nil {
		return h.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

type selectCategoryInput struct {
	CategoryId string `json:"categoryId" validate:"required,max=100"`
}

// /wizard/sessions/:sessionId/category
func (h *wizardRoutesHandler) SelectCategory(c echo.Context) error {
	var input selectCategoryInput
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

	if err := h.wizardService.SelectCategory(c.Request().Context(), c.Param("sessionId"), input.CategoryId); err != nil {
		return h.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// /wizard/sessions/:sessionId/subcategories/:subcategoryId/toggle
func (h *wizardRoutesHandler) ToggleSubcategory(c echo.Context) error {
	err := h.wizardService.ToggleSubcategory(c.Request().Context(), c.Param("sessionId"), c.Param("subcategoryId"))
	if err != nil {
		return h.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// /wizard/sessions/:sessionId/attributes/:attributeId/toggle
func (h *wizardRoutesHandler) ToggleAttribute(c echo.Context) error {
	err := h.wizardService.ToggleAttribute(c.Request().Context(), c.Param("sessionId"), c.Param("attributeId"))
	if err != nil {
		return h.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

type setCustomAttributesInput struct {
	CustomAttributes    string `json:"customAttributes" validate:"max=2000"`
	AdditionalQuestions string `json:"additionalQuestions" validate:"max=2000"`
}

// /wizard/sessions/:sessionId/custom-attributes
func (h *wizardRoutesHandler) SetCustomAttributes(c echo.Context) error {
	var input setCustomAttributesInput
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

	err := h.wizardService.SetCustomAttributes(c.Request().Context(), c.Param("sessionId"),
		input.CustomAttributes, input.AdditionalQuestions)
	if err != nil {
		return h.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// /wizard/sessions/:sessionId/distribution/:optionId/toggle
func (h *wizardRoutesHandler) ToggleDistribution(c echo.Context) error {
	err := h.wizardService.ToggleDistribution(c.Request().Context(), c.Param("sessionId"), c.Param("optionId"))
	if err != nil {
		return h.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// /wizard/sessions/:sessionId/info-options/:optionId/toggle
func (h *wizardRoutesHandler) ToggleInfoOption(c echo.Context) error {
	err := h.wizardService.ToggleInfoOption(c.Request().Context(), c.Param("sessionId"), c.Param("optionId"))
	if err != nil {
		return h.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

type addContactInput struct {
	Name         string `json:"name" validate:"required,max=200"`
	BusinessName string `json:"businessName" validate:"required,max=200"`
	Email        string `json:"email" validate:"required,email,max=200"`
}

// /wizard/sessions/:sessionId/contacts
func (h *wizardRoutesHandler) AddContact(c echo.Context) error {
	var input addContactInput
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

	contact, err := h.wizardService.AddContact(c.Request().Context(), c.Param("sessionId"),
		input.Name, input.BusinessName, input.Email)
	if err != nil {
		return h.fail(c, err)
	}
	if e := c.JSON(http.StatusOK, contact); e != nil {
		return e
	}

	return nil
}

// /wizard/sessions/:sessionId/contacts/:contactId
func (h *wizardRoutesHandler) RemoveContact(c echo.Context) error {
	err := h.wizardService.RemoveContact(c.Request().Context(), c.Param("sessionId"), c.Param("contactId"))
	if err != nil {
		return h.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// /wizard/sessions/:sessionId/contacts/import
// The body is the raw delimited-text payload; the upstream file picker is
// responsible for verifying the file extension before sending it here.
func (h *wizardRoutesHandler) ImportContacts(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Could not read contact file"}); e != nil {
			return e
		}

		return err
	}

	contacts, err := h.wizardService.ImportContacts(c.Request().Context(), c.Param("sessionId"), string(payload))
	if err != nil {
		return h.fail(c, err)
	}
	if e := c.JSON(http.StatusOK, contacts); e != nil {
		return e
	}

	return nil
}

type editTimelineInput struct {
	Date        *time.Time `json:"date"`
	Description string     `json:"description" validate:"max=500"`
	Enabled     bool       `json:"enabled"`
}

// /wizard/sessions/:sessionId/timeline/:label
func (h *wizardRoutesHandler) EditTimeline(c echo.Context) error {
	var input editTimelineInput
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

	entry := &entity.TimelineDate{
		Date:        input.Date,
		Description: input.Description,
		Enabled:     input.Enabled,
	}
	err := h.wizardService.EditTimeline(c.Request().Context(), c.Param("sessionId"), c.Param("label"), entry)
	if err != nil {
		return h.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

type generateInput struct {
	DocumentType string `query:"type" validate:"omitempty,oneof=rfp rfi"`
}

// /wizard/sessions/:sessionId/generate
func (h *wizardRoutesHandler) Generate(c echo.Context) error {
	input := generateInput{DocumentType: c.QueryParam("type")}
	if input.DocumentType == "" {
		input.DocumentType = "rfp"
	}
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	var text string
	var err error
	if input.DocumentType == "rfi" {
		text, err = h.draftService.GenerateRfi(c.Request().Context(), c.Param("sessionId"))
	} else {
		text, err = h.draftService.GenerateRfp(c.Request().Context(), c.Param("sessionId"))
	}
	if err != nil {
		return h.fail(c, err)
	}
	if e := c.JSON(http.StatusOK, map[string]string{"text": text}); e != nil {
		return e
	}

	return nil
}

// /wizard/sessions/:sessionId/save-draft
func (h *wizardRoutesHandler) SaveDraft(c echo.Context) error {
	draft, err := h.lifecycleService.SaveDraftFromSession(c.Request().Context(), c.Param("sessionId"))
	if err != nil {
		return h.fail(c, err)
	}
	if e := c.JSON(http.StatusOK, draft); e != nil {
		return e
	}

	return nil
}

func (h *wizardRoutesHandler) fail(c echo.Context, err error) error {
	var code int
	var reason string

	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		code, reason = http.StatusNotFound, "There is no wizard session with given id"
	case errors.Is(err, service.ErrContactNotFound):
		code, reason = http.StatusNotFound, "There is no contact with given id"
	case errors.Is(err, service.ErrTimelineEntryNotFound):
		code, reason = http.StatusNotFound, "There is no timeline milestone with given label"
	case errors.Is(err, service.ErrEmptyImportPayload),
		errors.Is(err, service.ErrMalformedHeader),
		errors.Is(err, service.ErrNoValidContacts):
		code, reason = http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrGenerationInFlight):
		code, reason = http.StatusConflict, err.Error()
	case errors.Is(err, service.ErrDraftGeneration):
		code, reason = http.StatusInternalServerError, "Draft generation failed"
	case errors.Is(err, service.ErrCannotSaveDraft):
		code, reason = http.StatusConflict, err.Error()
	default:
		code, reason = http.StatusBadRequest, "Error"
	}

	if e := c.JSON(code, errorResponse{reason}); e != nil {
		return e
	}

	return err
}
