// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

/*
Package account handles user profile management and administrative user CRUD.

It provides functionalities for users to view and update their private identity
data, and for administrators to manage the operator roster (create, list,
update, disable).

# Architecture

  - Domain: This package depends on the auth package for the User entity.
  - Authorization: Administrative operations are gated by role at the router.
  - Security: Initial passwords are encrypted through the shared credential cipher.
*/
package account

import (
	"context"

	"github.com/sellora/sellora/internal/users/auth"
	"github.com/sellora/sellora/pkg/pagination"
)

// # Repository Contracts

// AccountRepository defines the persistence contract for user accounts.
type AccountRepository interface {
	/*
		FindByID retrieves a user record by their unique ID.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *auth.User: Loaded account entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByID(context context.Context, id string) (*auth.User, error)

	/*
		FindByEmail retrieves a user record by their email address.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *auth.User: Loaded account entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByEmail(context context.Context, email string) (*auth.User, error)

	/*
		List returns a page of user accounts, optionally filtered by a
		case-insensitive search over name and email.

		Parameters:
		  - context: context.Context
		  - search: string
		  - params: pagination.Params

		Returns:
		  - []auth.User: Page of accounts
		  - int: Total matching rows
		  - error: Retrieval failures
	*/
	List(context context.Context, search string, params pagination.Params) ([]auth.User, int, error)

	/*
		Create persists a new user account.

		Parameters:
		  - context: context.Context
		  - user: *auth.User

		Returns:
		  - error: Constraint or storage failures
	*/
	Create(context context.Context, user *auth.User) error

	/*
		Update modifies the mutable profile fields of an existing user.

		Parameters:
		  - context: context.Context
		  - user: *auth.User (Hydrated entity with changes)

		Returns:
		  - error: Storage or constraint failures
	*/
	Update(context context.Context, user *auth.User) error

	/*
		SetActive toggles the account's ability to authenticate.

		Parameters:
		  - context: context.Context
		  - id: string
		  - active: bool

		Returns:
		  - error: Execution failures
	*/
	SetActive(context context.Context, id string, active bool) error

	/*
		SoftDelete flags an account as logically deleted.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: Execution failures
	*/
	SoftDelete(context context.Context, id string) error
}

// SessionRevoker defines the minimal session cleanup contract the account
// service needs when an account is disabled or deleted.
type SessionRevoker interface {
	/*
		RevokeAll terminates every session for a user.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - error: Revocation failures
	*/
	RevokeAll(context context.Context, userID string) error
}
