package services

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/pratik-mahalle/userboard/internal/domain/user"
	"github.com/pratik-mahalle/userboard/internal/pkg/errors"
	"github.com/pratik-mahalle/userboard/internal/pkg/logger"
	"github.com/pratik-mahalle/userboard/internal/pkg/metrics"
	"github.com/pratik-mahalle/userboard/internal/pkg/validator"
)

// UserService implements user.Service over an in-memory canonical
// collection. Every operation holds the lock for its whole duration, so
// operations apply one at a time and a failed one leaves no trace.
type UserService struct {
	source    user.Source
	logger    *logger.Logger
	validator *validator.Validator

	mu      sync.RWMutex
	users   []user.User
	state   user.LoadState
	loadErr error
	// nextID is always greater than every id ever held by the collection
	nextID int64
}

// NewUserService creates a new user service in the loading state
func NewUserService(source user.Source, log *logger.Logger, val *validator.Validator) *UserService {
	return &UserService{
		source:    source,
		logger:    log.Component("user_service"),
		validator: val,
		state:     user.LoadStateLoading,
		nextID:    1,
	}
}

// Load fetches the initial list from the source and replaces the collection.
// On failure the collection is left as it was and the state becomes error.
func (s *UserService) Load(ctx context.Context) error {
	users, err := s.source.FetchUsers(ctx)
	if err != nil {
		s.fail(err)
		return errors.LoadFailure(err)
	}

	if err := s.Replace(users); err != nil {
		s.fail(err)
		return errors.LoadFailure(err)
	}

	s.logger.WithFields(map[string]interface{}{
		"count": len(users),
	}).Info("Users loaded")

	return nil
}

func (s *UserService) fail(err error) {
	s.mu.Lock()
	s.state = user.LoadStateError
	s.loadErr = err
	s.mu.Unlock()

	metrics.RecordUserOperation("load", err)
	s.logger.ErrorWithErr(err, "Failed to load users")
}

// Replace swaps the whole collection for users. IDs must be unique.
func (s *UserService) Replace(users []user.User) error {
	seen := make(map[int64]struct{}, len(users))
	maxID := int64(0)
	for _, u := range users {
		if _, dup := seen[u.ID]; dup {
			return fmt.Errorf("duplicate user id %d", u.ID)
		}
		seen[u.ID] = struct{}{}
		maxID = max(maxID, u.ID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = slices.Clone(users)
	s.state = user.LoadStateReady
	s.loadErr = nil
	s.nextID = max(s.nextID, maxID+1)

	metrics.SetUsersCount(len(s.users))
	metrics.RecordUserOperation("load", nil)
	return nil
}

// Status reports the load state
func (s *UserService) Status() user.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := user.Status{State: s.state, Count: len(s.users)}
	if s.loadErr != nil {
		st.Error = s.loadErr.Error()
	}
	return st
}

// ready must be called with the lock held
func (s *UserService) ready() error {
	switch s.state {
	case user.LoadStateReady:
		return nil
	case user.LoadStateError:
		return errors.LoadFailure(s.loadErr)
	default:
		return errors.ServiceUnavailable("Users are still loading")
	}
}

// Query derives a filtered, sorted page of the collection
func (s *UserService) Query(ctx context.Context, state user.ViewState) (*user.Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.ready(); err != nil {
		return nil, err
	}

	page := user.Query(s.users, state)
	return &page, nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, id int64) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.ready(); err != nil {
		return nil, err
	}

	i := s.indexOf(id)
	if i < 0 {
		return nil, errors.NotFound("User")
	}
	u := s.users[i]
	return &u, nil
}

// Add creates a user with a fresh ID and appends it
func (s *UserService) Add(ctx context.Context, input user.Input) (*user.User, error) {
	if errs := s.validator.Validate(input); len(errs) > 0 {
		metrics.RecordUserOperation("add", fmt.Errorf("validation"))
		return nil, errors.ValidationError("Validation failed", errs)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ready(); err != nil {
		metrics.RecordUserOperation("add", err)
		return nil, err
	}

	u := input.ToUser(s.allocateID())
	s.users = append(s.users, u)

	metrics.SetUsersCount(len(s.users))
	metrics.RecordUserOperation("add", nil)
	s.logger.WithFields(map[string]interface{}{
		"user_id": u.ID,
		"email":   u.Email,
	}).Info("User added")

	return &u, nil
}

// allocateID must be called with the lock held
func (s *UserService) allocateID() int64 {
	for s.indexOf(s.nextID) >= 0 {
		s.nextID++
	}
	id := s.nextID
	s.nextID++
	return id
}

// Update replaces the user with the given ID in place
func (s *UserService) Update(ctx context.Context, id int64, input user.Input) (*user.User, error) {
	if errs := s.validator.Validate(input); len(errs) > 0 {
		metrics.RecordUserOperation("update", fmt.Errorf("validation"))
		return nil, errors.ValidationError("Validation failed", errs)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ready(); err != nil {
		metrics.RecordUserOperation("update", err)
		return nil, err
	}

	i := s.indexOf(id)
	if i < 0 {
		err := errors.NotFound("User")
		metrics.RecordUserOperation("update", err)
		s.logger.With("user_id", id).Warn("Update of unknown user ignored")
		return nil, err
	}

	u := input.ToUser(id)
	s.users[i] = u

	metrics.RecordUserOperation("update", nil)
	s.logger.With("user_id", id).Info("User updated")

	return &u, nil
}

// Remove deletes the user with the given ID
func (s *UserService) Remove(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ready(); err != nil {
		metrics.RecordUserOperation("remove", err)
		return err
	}

	i := s.indexOf(id)
	if i < 0 {
		err := errors.NotFound("User")
		metrics.RecordUserOperation("remove", err)
		s.logger.With("user_id", id).Warn("Removal of unknown user ignored")
		return err
	}

	s.users = slices.Delete(s.users, i, i+1)

	metrics.SetUsersCount(len(s.users))
	metrics.RecordUserOperation("remove", nil)
	s.logger.With("user_id", id).Info("User removed")

	return nil
}

// indexOf must be called with the lock held
func (s *UserService) indexOf(id int64) int {
	return slices.IndexFunc(s.users, func(u user.User) bool { return u.ID == id })
}
