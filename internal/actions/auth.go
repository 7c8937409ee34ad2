package actions

import (
	"context"

	"taskclient/internal/api"
	"taskclient/internal/keychain"
	"taskclient/internal/logger"
	"taskclient/internal/models"
	"taskclient/internal/notify"
	"taskclient/internal/store"
	"taskclient/internal/validation"
)

const (
	titleLoginOK     = "Login Successful"
	titleRegisterOK  = "Registration Successful"
	titleProfileOK   = "Profile Updated"
	titleAccountGone = "Account Deleted"
	titleLoginErr    = "Login Error"
	titleRegisterErr = "Register Error"
	titleUpdateErr   = "Update Error"
	titleDeleteErr   = "Delete Error"
	fallbackLogin    = "Login failed"
	fallbackRegister = "Registration failed"
	fallbackUpdate   = "Update failed"
	fallbackDelete   = "Deletion failed"
)

type AuthActions struct {
	api     API
	session *store.Session
	creds   keychain.Store
	notify  notify.Notifier
}

func NewAuthActions(apiClient API, session *store.Session, creds keychain.Store, notifier notify.Notifier) *AuthActions {
	return &AuthActions{
		api:     apiClient,
		session: session,
		creds:   creds,
		notify:  notifier,
	}
}

func (a *AuthActions) Login(ctx context.Context, credentials models.LoginCredentials) {
	if errs := validation.Login(credentials.Email, credentials.Password); errs != nil {
		a.localReject(titleLoginErr, flatten(errs))
		return
	}

	a.session.Begin()

	env, err := a.api.Post(ctx, api.EndpointLogin, credentials)
	if err != nil {
		a.rejectedAuth(titleLoginErr, fallbackLogin, err)
		return
	}

	auth, err := a.persistAuth(ctx, env)
	if err != nil {
		a.rejectedAuth(titleLoginErr, fallbackLogin, err)
		return
	}

	a.session.SetSession(auth)
	a.notify.Success(titleLoginOK, env.Message)
}

func (a *AuthActions) Register(ctx context.Context, credentials models.RegisterCredentials) {
	if errs := validation.Register(credentials.Username, credentials.Email, credentials.Password); errs != nil {
		a.localReject(titleRegisterErr, flatten(errs))
		return
	}

	a.session.Begin()

	env, err := a.api.Post(ctx, api.EndpointRegister, credentials)
	if err != nil {
		a.rejectedAuth(titleRegisterErr, fallbackRegister, err)
		return
	}

	auth, err := a.persistAuth(ctx, env)
	if err != nil {
		a.rejectedAuth(titleRegisterErr, fallbackRegister, err)
		return
	}

	a.session.SetSession(auth)
	a.notify.Success(titleRegisterOK, env.Message)
}

// Logout is a synchronous, local-only transition: it clears the session
// and the credential slot and never touches the remote API.
func (a *AuthActions) Logout(ctx context.Context) {
	a.session.Clear()
	if err := a.creds.Reset(ctx); err != nil {
		logger.Error("AUTH: Clearing credentials failed", err)
	}
}

// UpdateProfile sends only the fields that differ from the current
// session user. When nothing differs the operation is rejected locally
// before any network call and no Pending transition occurs.
func (a *AuthActions) UpdateProfile(ctx context.Context, patch models.UpdateUser) {
	diff := a.diffUser(patch)
	if diff == (models.UpdateUser{}) {
		a.localReject(titleUpdateErr, "No changes to update")
		return
	}

	if errs := validation.UpdateProfile(diff.Username, diff.Email); errs != nil {
		a.localReject(titleUpdateErr, flatten(errs))
		return
	}

	a.session.Begin()

	env, err := a.api.Patch(ctx, api.EndpointUpdateUser, diff)
	if err != nil {
		a.rejected(titleUpdateErr, fallbackUpdate, err)
		return
	}

	var payload struct {
		User models.User `json:"user"`
	}
	if err := env.Decode(&payload); err != nil {
		a.rejected(titleUpdateErr, fallbackUpdate, err)
		return
	}

	a.session.SetUser(payload.User)
	a.notify.Success(titleProfileOK, env.Message)
}

// DeleteAccount removes the account remotely and reuses Logout for the
// local clearing.
func (a *AuthActions) DeleteAccount(ctx context.Context) {
	a.session.Begin()

	env, err := a.api.Delete(ctx, api.EndpointDeleteUser)
	if err != nil {
		a.rejected(titleDeleteErr, fallbackDelete, err)
		return
	}

	a.notify.Success(titleAccountGone, env.Message)
	a.Logout(ctx)
}

// persistAuth decodes the auth payload and overwrites the credential
// slot with it.
func (a *AuthActions) persistAuth(ctx context.Context, env *api.Envelope) (models.AuthPayload, error) {
	var auth models.AuthPayload
	if err := env.Decode(&auth); err != nil {
		return models.AuthPayload{}, err
	}

	if err := a.creds.Reset(ctx); err != nil {
		return models.AuthPayload{}, err
	}
	if err := a.creds.Set(ctx, auth); err != nil {
		return models.AuthPayload{}, err
	}
	return auth, nil
}

// diffUser drops patch fields equal to the current session user.
func (a *AuthActions) diffUser(patch models.UpdateUser) models.UpdateUser {
	current := a.session.User()

	var diff models.UpdateUser
	if patch.Username != nil && *patch.Username != current.Username {
		diff.Username = patch.Username
	}
	if patch.Email != nil && *patch.Email != current.Email {
		diff.Email = patch.Email
	}
	if patch.Avatar != nil && *patch.Avatar != current.Avatar {
		diff.Avatar = patch.Avatar
	}
	return diff
}

func (a *AuthActions) localReject(title, msg string) {
	a.session.Fail(msg)
	a.notify.Failure(title, msg)
}

// rejectedAuth terminates a failed login or register: the error is
// recorded and the authenticated flag is explicitly dropped.
func (a *AuthActions) rejectedAuth(title, fallback string, err error) {
	msg := api.ErrorMessage(err, fallback)
	logger.Error("ACTION: "+title, err)
	a.session.FailUnauthenticated(msg)
	a.notify.Failure(title, msg)
}

// rejected terminates a failed operation on an already authenticated
// session without touching the authenticated flag.
func (a *AuthActions) rejected(title, fallback string, err error) {
	msg := api.ErrorMessage(err, fallback)
	logger.Error("ACTION: "+title, err)
	a.session.Fail(msg)
	a.notify.Failure(title, msg)
}
