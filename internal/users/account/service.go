// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sellora/sellora/internal/platform/apperr"
	"github.com/sellora/sellora/internal/platform/sec"
	"github.com/sellora/sellora/internal/users/auth"
	"github.com/sellora/sellora/pkg/pagination"
	"github.com/sellora/sellora/pkg/uuid"
)

// # Service Layer

// Service orchestrates business logic for user accounts.
//
// It covers both the self-service profile surface and the administrative
// roster operations (create, list, disable).
type Service struct {
	accountRepository AccountRepository
	sessionRevoker    SessionRevoker
	cipher            auth.CredentialCipher
	logger            *slog.Logger
}

// NewService constructs a new [Service] with its repository dependencies.
func NewService(
	accountRepo AccountRepository,
	sessionRevoker SessionRevoker,
	cipher auth.CredentialCipher,
	logger *slog.Logger,
) *Service {
	return &Service{
		accountRepository: accountRepo,
		sessionRevoker:    sessionRevoker,
		cipher:            cipher,
		logger:            logger,
	}
}

// # Profile Management

/*
GetProfile retrieves the full private identity of a user.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - *auth.User: The hydrated user profile
  - error: Not found or execution failures
*/
func (service *Service) GetProfile(context context.Context, userID string) (*auth.User, error) {
	user, err := service.accountRepository.FindByID(context, userID)
	if err != nil {
		return nil, fmt.Errorf("account_service_get_profile_failed: %w", err)
	}
	return user, nil
}

// UpdateProfileInput defines the mutable subset of self-service profile fields.
type UpdateProfileInput struct {
	FullName *string
}

/*
UpdateProfile applies a partial set of changes to a user's account metadata.

Description: Fetches the existing user state, overrides provided fields, and
synchronizes the change to persistent storage.

Parameters:
  - context: context.Context
  - userID: string
  - input: UpdateProfileInput

Returns:
  - *auth.User: The updated user profile
  - error: Update or storage failures
*/
func (service *Service) UpdateProfile(context context.Context, userID string, input UpdateProfileInput) (*auth.User, error) {

	user, err := service.accountRepository.FindByID(context, userID)
	if err != nil {
		return nil, fmt.Errorf("account_service_update_lookup_failed: %w", err)
	}

	// Apply delta updates
	if input.FullName != nil {
		user.FullName = *input.FullName
	}

	// Persist changes
	if err := service.accountRepository.Update(context, user); err != nil {
		return nil, fmt.Errorf("account_service_update_failed: %w", err)
	}

	service.logger.Info("user_profile_updated", slog.String("user_id", userID))

	return user, nil
}

// # Administrative Roster

/*
ListUsers returns a page of accounts for the admin roster view.

Parameters:
  - context: context.Context
  - search: string (Case-insensitive match against name and email)
  - params: pagination.Params

Returns:
  - []auth.User: Page of accounts
  - int: Total matching rows
  - error: Retrieval failures
*/
func (service *Service) ListUsers(context context.Context, search string, params pagination.Params) ([]auth.User, int, error) {
	users, total, err := service.accountRepository.List(context, search, params)
	if err != nil {
		return nil, 0, fmt.Errorf("account_service_list_failed: %w", err)
	}
	return users, total, nil
}

/*
GetUser retrieves any account by ID for the admin roster view.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *auth.User: The hydrated account
  - error: Not found or execution failures
*/
func (service *Service) GetUser(context context.Context, id string) (*auth.User, error) {
	user, err := service.accountRepository.FindByID(context, id)
	if err != nil {
		return nil, fmt.Errorf("account_service_get_failed: %w", err)
	}
	return user, nil
}

// CreateUserInput defines the data an administrator supplies for a new account.
type CreateUserInput struct {
	FullName string
	Email    string
	Password string
	Role     sec.UserRole
}

/*
CreateUser provisions a new account on behalf of an administrator.

Description: Unlike self-registration, the administrator chooses the role.
The initial password is encrypted through the shared credential cipher.

Parameters:
  - context: context.Context
  - input: CreateUserInput

Returns:
  - *auth.User: Created account
  - error: Conflict or storage failures
*/
func (service *Service) CreateUser(context context.Context, input CreateUserInput) (*auth.User, error) {

	// Verify email uniqueness. Return a client-safe Conflict err.
	_, err := service.accountRepository.FindByEmail(context, input.Email)
	if err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	// Encrypt the initial password into an opaque credential record
	record, err := service.cipher.Encrypt(input.Password)
	if err != nil {
		return nil, fmt.Errorf("account_service_encrypt_failed: %w", err)
	}

	user := &auth.User{
		ID:       uuid.New(),
		FullName: input.FullName,
		Email:    input.Email,
		Password: record,
		Role:     input.Role,
		IsActive: true,
	}

	if err := service.accountRepository.Create(context, user); err != nil {
		return nil, fmt.Errorf("account_service_create_failed: %w", err)
	}

	service.logger.Info("user_account_created",
		slog.String("user_id", user.ID),
		slog.String("role", string(user.Role)),
	)

	return user, nil
}

// UpdateUserInput defines the mutable account fields an administrator may change.
type UpdateUserInput struct {
	FullName *string
	Role     *sec.UserRole
}

/*
UpdateUser applies administrative changes to any account.

Parameters:
  - context: context.Context
  - id: string
  - input: UpdateUserInput

Returns:
  - *auth.User: Updated account
  - error: Not found or storage failures
*/
func (service *Service) UpdateUser(context context.Context, id string, input UpdateUserInput) (*auth.User, error) {

	user, err := service.accountRepository.FindByID(context, id)
	if err != nil {
		return nil, fmt.Errorf("account_service_update_user_lookup_failed: %w", err)
	}

	// Apply delta updates
	if input.FullName != nil {
		user.FullName = *input.FullName
	}

	// Role changes force re-authentication: existing tokens still carry the
	// old role claim until they expire, sessions are revoked to shorten that.
	roleChanged := false
	if input.Role != nil && *input.Role != user.Role {
		user.Role = *input.Role
		roleChanged = true
	}

	if err := service.accountRepository.Update(context, user); err != nil {
		return nil, fmt.Errorf("account_service_update_user_failed: %w", err)
	}

	if roleChanged {
		_ = service.sessionRevoker.RevokeAll(context, id)
	}

	service.logger.Info("user_account_updated", slog.String("user_id", id))

	return user, nil
}

/*
SetUserActive enables or disables an account's ability to authenticate.

Description: Disabling revokes every active session so the operator is signed
out everywhere immediately.

Parameters:
  - context: context.Context
  - id: string
  - active: bool

Returns:
  - error: Execution failures
*/
func (service *Service) SetUserActive(context context.Context, id string, active bool) error {

	if err := service.accountRepository.SetActive(context, id, active); err != nil {
		return fmt.Errorf("account_service_set_active_failed: %w", err)
	}

	if !active {
		_ = service.sessionRevoker.RevokeAll(context, id)
	}

	service.logger.Info("user_account_active_changed",
		slog.String("user_id", id),
		slog.Bool("active", active),
	)

	return nil
}

/*
DeleteUser performs an idempotent soft-deletion of a user account.

Description: Flags the account as deleted and immediately terminates all active
security sessions to force a global sign-out.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: Execution failures
*/
func (service *Service) DeleteUser(context context.Context, id string) error {

	if err := service.accountRepository.SoftDelete(context, id); err != nil {
		return fmt.Errorf("account_service_delete_failed: %w", err)
	}

	// Force global revocation of sessions for the deleted account
	_ = service.sessionRevoker.RevokeAll(context, id)

	service.logger.Warn("user_account_deleted", slog.String("user_id", id))

	return nil
}
