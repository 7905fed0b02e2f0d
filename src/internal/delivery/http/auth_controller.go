package http

import (
	"ticketing-service/src/internal/delivery/http/middleware"
	"ticketing-service/src/internal/model"
	"ticketing-service/src/internal/usecase"
	"ticketing-service/src/pkg/log"
	"ticketing-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	Log     log.Log
	UseCase *usecase.AuthUseCase
}

func NewAuthController(useCase *usecase.AuthUseCase, logger log.Log) *AuthController {
	return &AuthController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *AuthController) Register(ctx *fiber.Ctx) error {
	request := new(model.RegisterUserRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("AuthController.Register", "failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.Register(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Register", fiber.StatusCreated, ctx)
}

func (c *AuthController) Login(ctx *fiber.Ctx) error {
	request := new(model.LoginUserRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("AuthController.Login", "failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.Login(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Login", fiber.StatusOK, ctx)
}

func (c *AuthController) GetProfile(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.GetUserRequest{ID: auth.UserID}
	result := c.UseCase.GetProfile(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "GetProfile", fiber.StatusOK, ctx)
}

func (c *AuthController) UpdateProfile(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.UpdateProfileRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("AuthController.UpdateProfile", "failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = auth.UserID

	result := c.UseCase.UpdateProfile(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "UpdateProfile", fiber.StatusOK, ctx)
}
