package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/mpolukarov/volna/internal/config"
	"github.com/mpolukarov/volna/internal/logger"
	"github.com/mpolukarov/volna/internal/store"
	"github.com/mpolukarov/volna/internal/validators"
	"github.com/mpolukarov/volna/models"
)

// registrationService is the concrete implementation of RegistrationService.
// It sequences the signup flow using a UserRepository for persistence and
// bcrypt for password hashing.
type registrationService struct {
	// userRepository is the data-access layer used to check and create
	// users. Nil when no database was configured.
	userRepository store.UserRepository

	// validator enforces the signup rules before any persistence happens.
	validator validators.Validator

	// bcryptCost is the adaptive cost factor passed to bcrypt. Each call
	// generates a fresh random salt, so identical passwords never yield
	// identical hashes.
	bcryptCost int

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewRegistrationService constructs a RegistrationService wired to the given
// UserRepository and populated with the hashing cost from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewRegistrationService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) RegistrationService {
	return &registrationService{
		userRepository: userRepository,
		validator:      validators.NewSignupValidator(),
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// The flow is strictly sequential: validate → configuration check →
// uniqueness check → hash → insert. Exactly one read and, on the success
// path only, exactly one write hit the database. No retries are performed;
// a registration losing the race between the uniqueness check and the
// insert surfaces as [store.ErrUserAlreadyExists] raised by the insert's
// unique constraint.
//
// Returns the persisted user (with server-assigned UserID and CreatedAt) or:
//   - A validation sentinel from the validators package if any signup rule fails.
//   - ErrDatabaseNotConfigured if no persistence backend is available.
//   - store.ErrUserAlreadyExists if username or email is taken.
//   - ErrHashingFailed if the bcrypt primitive fails.
func (s *registrationService) Register(ctx context.Context, req models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req = normalizeSignup(req)
	if err := s.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("signup validation failed")
		return models.User{}, err
	}

	if s.userRepository == nil {
		log.Error().Msg("registration requested without configured database")
		return models.User{}, ErrDatabaseNotConfigured
	}

	exists, err := s.userRepository.UserExists(ctx, req.Username, req.Email)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("uniqueness check failed")
		return models.User{}, fmt.Errorf("uniqueness check failed: %w", err)
	}
	if exists {
		log.Error().Str("username", req.Username).Msg("username or email already taken")
		return models.User{}, store.ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		log.Err(err).Msg("bcrypt hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrHashingFailed, err)
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    optionalName(req.FirstName),
		LastName:     optionalName(req.LastName),
		AgeConfirmed: req.AgeConfirmed,
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("id", created.UserID).Str("username", created.Username).Msg("user registered")

	return created, nil
}

// normalizeSignup trims whitespace from every text field of the request.
// The password is left untouched.
func normalizeSignup(req models.SignupRequest) models.SignupRequest {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	return req
}

// optionalName maps an empty optional field to NULL semantics.
func optionalName(name string) *string {
	if name == "" {
		return nil
	}
	return &name
}
