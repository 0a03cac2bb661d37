package handler

import (
	"context"
	"time"

	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/model"
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/validation"
	"github.com/labstack/echo/v4"
)

// UserService is the user behaviour the handlers call.
type UserService interface {
	GetAllUsers(ctx context.Context) ([]model.User, error)
	GetUserByID(ctx context.Context, id int64) (model.User, error)
	GetUserByUniqueKey(ctx context.Context, query map[string]string) (model.User, error)
	AuthenticateUser(ctx context.Context, username, password string) (model.User, error)
	AddNewUser(ctx context.Context, user model.User) (model.User, error)
	UpdateUser(ctx context.Context, user model.User) (bool, error)
	DeleteByID(ctx context.Context, payload map[string]any) (bool, error)
}

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Generate(user model.User) (string, time.Time, error)
}

type UserHandler struct {
	Handler
	users  UserService
	tokens TokenIssuer
}

func NewUserHandler(h Handler, users UserService, tokens TokenIssuer) *UserHandler {
	return &UserHandler{
		Handler: h,
		users:   users,
		tokens:  tokens,
	}
}

type UserRequest struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Nickname  string `json:"nickname"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

func (r *UserRequest) Validate() error {
	return nil
}

func (r *UserRequest) toModel() model.User {
	return model.User{
		ID:        r.ID,
		Username:  r.Username,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Nickname:  r.Nickname,
		Email:     r.Email,
		Role:      r.Role,
	}
}

type CredentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *CredentialsRequest) Validate() error {
	return validation.Struct(r)
}

type AuthResponse struct {
	User      model.User `json:"user"`
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expiresAt"`
}

// SearchRequest carries no fields; the query string is read as a whole.
type SearchRequest struct{}

func (r *SearchRequest) Validate() error {
	return nil
}

func (h *UserHandler) GetAllUsers(c echo.Context, _ *ListRequest) ([]model.User, error) {
	return h.users.GetAllUsers(c.Request().Context())
}

func (h *UserHandler) GetUserByID(c echo.Context, req *IDRequest) (model.User, error) {
	return h.users.GetUserByID(c.Request().Context(), req.Value())
}

// SearchUsers looks a user up by the single key of the query string, as in
// /users/search?email=a@b.com.
func (h *UserHandler) SearchUsers(c echo.Context, _ *SearchRequest) (model.User, error) {
	query := make(map[string]string)
	for key, values := range c.QueryParams() {
		if len(values) > 0 {
			query[key] = values[0]
		}
	}
	return h.users.GetUserByUniqueKey(c.Request().Context(), query)
}

func (h *UserHandler) AddNewUser(c echo.Context, req *UserRequest) (model.User, error) {
	return h.users.AddNewUser(c.Request().Context(), req.toModel())
}

func (h *UserHandler) UpdateUser(c echo.Context, req *UserRequest) (bool, error) {
	return h.users.UpdateUser(c.Request().Context(), req.toModel())
}

func (h *UserHandler) DeleteUser(c echo.Context, req *DeleteRequest) (bool, error) {
	return h.users.DeleteByID(c.Request().Context(), *req)
}

// Authenticate checks the credentials and issues an access token.
func (h *UserHandler) Authenticate(c echo.Context, req *CredentialsRequest) (AuthResponse, error) {
	user, err := h.users.AuthenticateUser(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return AuthResponse{}, err
	}

	token, expiresAt, err := h.tokens.Generate(user)
	if err != nil {
		return AuthResponse{}, err
	}

	return AuthResponse{
		User:      user,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
