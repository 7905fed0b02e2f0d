package usecase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"time"

	"ticketing-service/src/internal/entity"
	"ticketing-service/src/internal/model"
	"ticketing-service/src/internal/model/converter"
	"ticketing-service/src/internal/repository"
	httpError "ticketing-service/src/pkg/http-error"
	"ticketing-service/src/pkg/log"
	"ticketing-service/src/pkg/token"
	"ticketing-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._]+$`)
	hasLetter       = regexp.MustCompile(`[a-zA-Z]`)
	hasDigit        = regexp.MustCompile(`\d`)
)

type AuthUseCase struct {
	Log            log.Log
	Validate       *validator.Validate
	UserRepository repository.UserStore
	Config         *viper.Viper
}

func NewAuthUseCase(
	logger log.Log,
	validate *validator.Validate,
	userRepository repository.UserStore,
	cfg *viper.Viper,
) *AuthUseCase {
	return &AuthUseCase{
		Log:            logger,
		Validate:       validate,
		UserRepository: userRepository,
		Config:         cfg,
	}
}

// Register creates the account and its three zero-balance wallets in one
// store transaction and returns a signed bearer token.
func (c *AuthUseCase) Register(ctx context.Context, request *model.RegisterUserRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("auth-usecase", errObj.Message, "Register", "")
		return result
	}

	if !usernamePattern.MatchString(request.Username) {
		errObj := httpError.NewBadRequest()
		errObj.Message = "username may only contain letters, digits, underscores and dots"
		result.Error = errObj
		return result
	}

	if !hasLetter.MatchString(request.Password) || !hasDigit.MatchString(request.Password) {
		errObj := httpError.NewBadRequest()
		errObj.Message = "password must contain at least one letter and one digit"
		result.Error = errObj
		return result
	}

	existing, err := c.UserRepository.FindByUsernameOrEmail(ctx, request.Username, request.Email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to check existing accounts"
		result.Error = errObj
		c.Log.Error("auth-usecase", errObj.Message, "Register", utils.ConvertString(err))
		return result
	}
	if existing != nil {
		errObj := httpError.NewConflict()
		if existing.Username == request.Username {
			errObj.Message = "username is already taken"
		} else {
			errObj.Message = "email is already registered"
		}
		result.Error = errObj
		c.Log.Error("auth-usecase", errObj.Message, "Register", "")
		return result
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to hash password"
		result.Error = errObj
		c.Log.Error("auth-usecase", errObj.Message, "Register", utils.ConvertString(err))
		return result
	}

	user := &entity.User{
		Username: request.Username,
		Email:    request.Email,
		Password: string(hashed),
		FullName: request.FullName,
	}

	created, err := c.UserRepository.CreateWithWallets(ctx, user, entity.AllWalletTypes())
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to create account"
		result.Error = errObj
		c.Log.Error("auth-usecase", errObj.Message, "Register", utils.ConvertString(err))
		return result
	}

	signed, err := c.issueToken(created)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to issue token"
		result.Error = errObj
		c.Log.Error("auth-usecase", errObj.Message, "Register", utils.ConvertString(err))
		return result
	}

	c.Log.Info("auth-usecase", "account registered", "Register", created.Username)
	result.Data = model.AuthResponse{Token: signed, User: converter.UserToResponse(created)}
	return result
}

func (c *AuthUseCase) Login(ctx context.Context, request *model.LoginUserRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("auth-usecase", errObj.Message, "Login", "")
		return result
	}

	user, err := c.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		errObj := httpError.NewUnauthorized()
		errObj.Message = "invalid username or password"
		result.Error = errObj
		c.Log.Error("auth-usecase", errObj.Message, "Login", request.Username)
		return result
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		errObj := httpError.NewUnauthorized()
		errObj.Message = "invalid username or password"
		result.Error = errObj
		c.Log.Error("auth-usecase", errObj.Message, "Login", request.Username)
		return result
	}

	signed, err := c.issueToken(user)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to issue token"
		result.Error = errObj
		c.Log.Error("auth-usecase", errObj.Message, "Login", utils.ConvertString(err))
		return result
	}

	c.Log.Info("auth-usecase", "login successful", "Login", user.Username)
	result.Data = model.AuthResponse{Token: signed, User: converter.UserToResponse(user)}
	return result
}

func (c *AuthUseCase) GetProfile(ctx context.Context, request *model.GetUserRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	user, err := c.UserRepository.FindByID(ctx, request.ID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("user with id %d not found", request.ID)
		result.Error = errObj
		c.Log.Error("auth-usecase", errObj.Message, "GetProfile", utils.ConvertString(err))
		return result
	}

	result.Data = converter.UserToResponse(user)
	return result
}

func (c *AuthUseCase) UpdateProfile(ctx context.Context, request *model.UpdateProfileRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	user, err := c.UserRepository.FindByID(ctx, request.UserID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("user with id %d not found", request.UserID)
		result.Error = errObj
		c.Log.Error("auth-usecase", errObj.Message, "UpdateProfile", utils.ConvertString(err))
		return result
	}

	if request.FullName != "" {
		user.FullName = request.FullName
	}
	if request.Phone != "" {
		user.Phone = sql.NullString{String: request.Phone, Valid: true}
	}
	if request.Address != "" {
		user.Address = sql.NullString{String: request.Address, Valid: true}
	}
	if request.BirthDate != "" {
		birthDate, err := time.Parse("2006-01-02", request.BirthDate)
		if err != nil {
			errObj := httpError.NewBadRequest()
			errObj.Message = "birth date must be in YYYY-MM-DD format"
			result.Error = errObj
			return result
		}
		user.BirthDate = sql.NullTime{Time: birthDate, Valid: true}
	}

	if err := c.UserRepository.UpdateProfile(ctx, user); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to update profile"
		result.Error = errObj
		c.Log.Error("auth-usecase", errObj.Message, "UpdateProfile", utils.ConvertString(err))
		return result
	}

	result.Data = converter.UserToResponse(user)
	return result
}

func (c *AuthUseCase) issueToken(user *entity.User) (string, error) {
	expire := time.Duration(c.Config.GetInt("jwt.expire.hours")) * time.Hour
	if expire <= 0 {
		expire = 7 * 24 * time.Hour
	}
	return token.Generate(
		token.Metadata{UserID: user.ID, Username: user.Username},
		c.Config.GetString("jwt.secret"),
		expire,
	)
}
