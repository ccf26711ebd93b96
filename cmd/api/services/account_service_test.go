package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flight-booking/cmd/api/auth"
	"flight-booking/events"
	"flight-booking/models"
	"flight-booking/repositories/memstore"
)

func newTestAccounts(t *testing.T) (*AccountService, *memstore.Store, *memstore.Sessions, *fakePublisher) {
	t.Helper()
	store := memstore.New()
	sessions := memstore.NewSessions()
	pub := &fakePublisher{}
	jwtManager := auth.NewJWTManager("test-secret", "flight-booking", time.Hour)
	return NewAccountService(store, sessions, jwtManager, pub, time.Hour), store, sessions, pub
}

func mustRegister(t *testing.T, svc *AccountService, username, password string) models.User {
	t.Helper()
	u, err := svc.Register(context.Background(), RegisterInput{Username: username, Password: password})
	require.NoError(t, err)
	return u
}

func TestRegisterValidatesRequiredFields(t *testing.T) {
	svc, _, _, _ := newTestAccounts(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Password: "pw"})
	assert.ErrorIs(t, err, ErrUsernameRequired)

	_, err = svc.Register(ctx, RegisterInput{Username: "alice"})
	assert.ErrorIs(t, err, ErrPasswordRequired)
}

func TestRegisterCreatesActiveUserWithHashedPassword(t *testing.T) {
	svc, store, _, pub := newTestAccounts(t)

	u := mustRegister(t, svc, "alice", "pw")

	stored := store.User(u.ID)
	assert.True(t, stored.IsActive)
	assert.False(t, stored.IsSuperuser)
	assert.NotEqual(t, "pw", stored.Password)
	ok, err := auth.CheckPassword(stored.Password, "pw")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, []events.EventType{events.UserRegistered}, pub.types())
}

func TestRegisterRejectsExistingUsername(t *testing.T) {
	svc, _, _, pub := newTestAccounts(t)
	mustRegister(t, svc, "alice", "pw")

	_, err := svc.Register(context.Background(), RegisterInput{Username: "alice", Password: "other"})
	require.ErrorIs(t, err, ErrUsernameExists)

	se, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindConflict, se.Kind)
	assert.Equal(t, "`Username` already existed", se.Message)
	assert.Len(t, pub.published, 1)
}

func TestRegisterSucceedsWhenPublishFails(t *testing.T) {
	svc, _, _, pub := newTestAccounts(t)
	pub.err = errors.New("broker down")

	_, err := svc.Register(context.Background(), RegisterInput{Username: "bob", Password: "pw"})
	assert.NoError(t, err)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, store, _, _ := newTestAccounts(t)
	ctx := context.Background()
	u := mustRegister(t, svc, "alice", "pw")

	_, err := svc.Login(ctx, "nobody", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	inactive := store.User(u.ID)
	inactive.IsActive = false
	store.PutUser(inactive)
	_, err = svc.Login(ctx, "alice", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "", "pw")
	assert.ErrorIs(t, err, ErrUsernameRequired)
}

func TestLoginIssuesSessionAndToken(t *testing.T) {
	svc, _, sessions, _ := newTestAccounts(t)
	ctx := context.Background()
	u := mustRegister(t, svc, "alice", "pw")

	res, err := svc.Login(ctx, "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, u.ID, res.User.ID)
	assert.True(t, sessions.Has(res.SessionToken))

	fromSession, err := svc.PrincipalFromSession(ctx, res.SessionToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", fromSession.Username)
	assert.Equal(t, res.SessionToken, fromSession.SessionToken)

	fromToken, err := svc.PrincipalFromToken(ctx, res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, fromToken.UserID)
	assert.False(t, fromToken.IsAdmin())

	require.NoError(t, svc.Logout(ctx, res.SessionToken))
	_, err = svc.PrincipalFromSession(ctx, res.SessionToken)
	assert.ErrorIs(t, err, ErrLoginRequired)
}

func TestPrincipalFromSessionRejectsExpiredSession(t *testing.T) {
	svc, _, _, _ := newTestAccounts(t)
	ctx := context.Background()
	mustRegister(t, svc, "alice", "pw")

	res, err := svc.Login(ctx, "alice", "pw")
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = svc.PrincipalFromSession(ctx, res.SessionToken)
	assert.ErrorIs(t, err, ErrLoginRequired)
}

func TestPrincipalFromTokenRejectsDeactivatedUser(t *testing.T) {
	svc, store, _, _ := newTestAccounts(t)
	ctx := context.Background()
	u := mustRegister(t, svc, "alice", "pw")

	res, err := svc.Login(ctx, "alice", "pw")
	require.NoError(t, err)

	deactivated := store.User(u.ID)
	deactivated.IsActive = false
	store.PutUser(deactivated)

	_, err = svc.PrincipalFromToken(ctx, res.AccessToken)
	assert.ErrorIs(t, err, ErrLoginRequired)

	_, err = svc.PrincipalFromToken(ctx, "garbage")
	assert.ErrorIs(t, err, ErrLoginRequired)
}

func TestFindUnknownUser(t *testing.T) {
	svc, _, _, _ := newTestAccounts(t)
	_, err := svc.Find(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrUserNotFound)
	assert.Equal(t, "Requested user does not exist", err.Error())
}

func TestUpdateInfoValidation(t *testing.T) {
	svc, _, _, _ := newTestAccounts(t)
	ctx := context.Background()
	u := mustRegister(t, svc, "alice", "pw")
	p := &auth.Principal{UserID: u.ID, Username: u.Username}

	_, err := svc.UpdateInfo(ctx, nil, UpdateInfoInput{})
	assert.ErrorIs(t, err, ErrLoginRequired)

	_, err = svc.UpdateInfo(ctx, p, UpdateInfoInput{Password: "x", PasswordRepeat: "x"})
	assert.ErrorIs(t, err, ErrUsernameRequired)

	_, err = svc.UpdateInfo(ctx, p, UpdateInfoInput{Username: "alice", Password: "x", PasswordRepeat: "y"})
	assert.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestUpdateInfoRenamesOrdersInSameTransaction(t *testing.T) {
	svc, store, _, _ := newTestAccounts(t)
	ctx := context.Background()
	u := mustRegister(t, svc, "alice", "pw")
	store.AddFlight("KE001", time.Now(), 10, 9)
	store.AddOrder("alice", "KE001")
	p := &auth.Principal{UserID: u.ID, Username: u.Username}

	updated, err := svc.UpdateInfo(ctx, p, UpdateInfoInput{
		Username: "alice2", Password: "new", PasswordRepeat: "new", FirstName: "Alice",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.Username)
	assert.Equal(t, "Alice", store.User(u.ID).FirstName)
	assert.Equal(t, "alice2", p.Username)
	assert.True(t, store.HasOrder("alice2", "KE001"))
	assert.False(t, store.HasOrder("alice", "KE001"))

	_, err = svc.Login(ctx, "alice2", "new")
	assert.NoError(t, err)
}

func TestUpdateInfoRejectsTakenUsernameAndRollsBack(t *testing.T) {
	svc, store, _, _ := newTestAccounts(t)
	ctx := context.Background()
	u := mustRegister(t, svc, "alice", "pw")
	mustRegister(t, svc, "bob", "pw")
	store.AddFlight("KE001", time.Now(), 10, 9)
	store.AddOrder("alice", "KE001")
	p := &auth.Principal{UserID: u.ID, Username: u.Username}

	_, err := svc.UpdateInfo(ctx, p, UpdateInfoInput{Username: "bob", Password: "n", PasswordRepeat: "n"})
	require.ErrorIs(t, err, ErrUsernameExists)
	assert.Equal(t, "alice", store.User(u.ID).Username)
	assert.True(t, store.HasOrder("alice", "KE001"))
}

func TestUpdateInfoKeepsOwnUsername(t *testing.T) {
	svc, _, _, _ := newTestAccounts(t)
	u := mustRegister(t, svc, "alice", "pw")
	p := &auth.Principal{UserID: u.ID, Username: u.Username}

	_, err := svc.UpdateInfo(context.Background(), p, UpdateInfoInput{
		Username: "alice", Password: "pw2", PasswordRepeat: "pw2", PhoneNumber: "010",
	})
	assert.NoError(t, err)
}
