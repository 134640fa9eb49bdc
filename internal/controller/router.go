package controller

import (
	"procurement-authoring-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

func SetupRoutesHandlers(handler *echo.Echo, services *service.Services) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	api := handler.Group("/api")
	newDiagnosticRoutesHandler(api, services)
	newWizardRoutesHandler(api, services, validate)
	newRfpRoutesHandler(api, services, validate)
	newRfiRoutesHandler(api, services, validate)
}
