package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/errs"
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/model"
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/validation"
	"github.com/rs/zerolog"
)

type UserService struct {
	repo     UserRepository
	notifier WelcomeNotifier
	logger   *zerolog.Logger
}

// NewUserService builds the service. notifier may be nil, in which case no
// welcome e-mail is scheduled.
func NewUserService(repo UserRepository, notifier WelcomeNotifier, logger *zerolog.Logger) *UserService {
	return &UserService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(users) == 0 {
		return nil, errs.NewResourceNotFoundError("")
	}

	for i := range users {
		users[i] = redactUser(users[i])
	}
	return users, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id int64) (model.User, error) {
	if !validation.IsValidID(id) {
		return model.User{}, errs.NewBadRequestError("")
	}

	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.User{}, err
	}

	user, ok := result.Get()
	if !ok {
		return model.User{}, errs.NewResourceNotFoundError("")
	}
	return redactUser(user), nil
}

// GetUserByUniqueKey looks a user up by a single-entry query such as
// {"email": "a@b.com"}. An "id" key is handled by GetUserByID.
func (s *UserService) GetUserByUniqueKey(ctx context.Context, query map[string]string) (model.User, error) {
	if len(query) != 1 {
		return model.User{}, errs.NewBadRequestError("Exactly one search parameter is supported.")
	}

	var key, value string
	for k, v := range query {
		key, value = k, v
	}

	if !validation.IsPropertyOf(key, model.User{}) {
		return model.User{}, errs.NewBadRequestError("")
	}

	if key == model.UserIDProperty {
		id, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			id = 0
		}
		return s.GetUserByID(ctx, id)
	}

	lookupKey, err := model.ParseUserLookupKey(key)
	if err != nil {
		return model.User{}, errs.NewBadRequestError("")
	}

	if !validation.IsValidString(value) {
		return model.User{}, errs.NewBadRequestError("")
	}

	result, err := s.repo.GetByUniqueKey(ctx, lookupKey, value)
	if err != nil {
		return model.User{}, err
	}

	user, ok := result.Get()
	if !ok {
		return model.User{}, errs.NewResourceNotFoundError("")
	}
	return redactUser(user), nil
}

func (s *UserService) AuthenticateUser(ctx context.Context, username, password string) (model.User, error) {
	if !validation.IsValidString(username, password) {
		return model.User{}, errs.NewBadRequestError("")
	}

	result, err := s.repo.GetByCredentials(ctx, username, password)
	if err != nil {
		return model.User{}, err
	}

	user, ok := result.Get()
	if !ok {
		return model.User{}, errs.NewAuthenticationError("Bad credentials provided.")
	}
	return redactUser(user), nil
}

// AddNewUser registers a user. The role is always the default role
// whatever the caller sent.
func (s *UserService) AddNewUser(ctx context.Context, user model.User) (model.User, error) {
	if !validation.IsValidObject(user, model.UserIDProperty, "role") {
		return model.User{}, errs.NewBadRequestError("Invalid property values found in provided user.")
	}

	if err := s.ensureUniqueFields(ctx, user, 0); err != nil {
		return model.User{}, err
	}

	user.ID = 0
	user.Role = model.DefaultUserRole

	saved, err := s.repo.Save(ctx, user)
	if err != nil {
		return model.User{}, err
	}

	s.scheduleWelcome(ctx, saved)

	return redactUser(saved), nil
}

// UpdateUser overwrites the profile of an existing user. A username, email
// or nickname held by the same user does not count as a conflict.
func (s *UserService) UpdateUser(ctx context.Context, user model.User) (bool, error) {
	if !validation.IsValidID(user.ID) || !validation.IsValidObject(user, "role") {
		return false, errs.NewBadRequestError("Invalid user provided (invalid values found).")
	}

	if err := s.ensureUniqueFields(ctx, user, user.ID); err != nil {
		return false, err
	}

	return s.repo.Update(ctx, user)
}

// DeleteByID is not supported for users.
func (s *UserService) DeleteByID(ctx context.Context, payload map[string]any) (bool, error) {
	return false, errs.NewMethodNotImplementedError("")
}

// ensureUniqueFields probes username, email and nickname in that order and
// fails on the first one held by a user other than ownID. The database
// unique constraints remain the final guard against concurrent writers.
func (s *UserService) ensureUniqueFields(ctx context.Context, user model.User, ownID int64) error {
	for _, key := range model.UserLookupKeys {
		result, err := s.repo.GetByUniqueKey(ctx, key, key.Value(user))
		if err != nil {
			return err
		}

		if existing, ok := result.Get(); ok && existing.ID != ownID {
			s.logger.Debug().Str("field", string(key)).Msg("unique field already taken")
			return errs.NewResourcePersistenceError(fmt.Sprintf("The provided %s is already taken.", key))
		}
	}
	return nil
}

func (s *UserService) scheduleWelcome(ctx context.Context, user model.User) {
	if s.notifier == nil {
		return
	}

	if err := s.notifier.EnqueueWelcomeEmail(ctx, user.Email, user.FirstName, user.Username); err != nil {
		s.logger.Error().
			Err(err).
			Int64("user_id", user.ID).
			Msg("failed to schedule welcome email")
	}
}

func redactUser(user model.User) model.User {
	user.Password = ""
	return user
}
