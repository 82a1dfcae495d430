package service

import (
	"context"
	"testing"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/user/dal/db"
	"VidTube.com/pkg/database/dbtest"
	"VidTube.com/pkg/errno"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) context.Context {
	db.Init(dbtest.New(t))
	return context.Background()
}

func register(t *testing.T, ctx context.Context, username, email string) *model.User {
	t.Helper()
	user, err := NewCreateUserService(ctx).CreateUser(&CreateUserRequest{
		Username:        username,
		Email:           email,
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	require.NoError(t, err)
	return user
}

func TestCreateUser(t *testing.T) {
	ctx := setup(t)
	user := register(t, ctx, "alice", "Alice@Example.com")
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "secret1", user.Password)

	t.Run("duplicate email", func(t *testing.T) {
		_, err := NewCreateUserService(ctx).CreateUser(&CreateUserRequest{
			Username: "other", Email: "alice@example.com", Password: "secret1", ConfirmPassword: "secret1",
		})
		assert.ErrorIs(t, err, errno.ParamErr)
		assert.Equal(t, "Email already exists", errno.ConvertErr(err).ErrMsg)
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := NewCreateUserService(ctx).CreateUser(&CreateUserRequest{
			Username: "alice", Email: "new@example.com", Password: "secret1", ConfirmPassword: "secret1",
		})
		assert.Equal(t, "Username already exists", errno.ConvertErr(err).ErrMsg)
	})

	t.Run("password rules", func(t *testing.T) {
		_, err := NewCreateUserService(ctx).CreateUser(&CreateUserRequest{
			Username: "bob", Email: "bob@example.com", Password: "123", ConfirmPassword: "123",
		})
		assert.ErrorIs(t, err, errno.ParamErr)

		_, err = NewCreateUserService(ctx).CreateUser(&CreateUserRequest{
			Username: "bob", Email: "bob@example.com", Password: "secret1", ConfirmPassword: "secret2",
		})
		assert.Equal(t, "Passwords do not match", errno.ConvertErr(err).ErrMsg)
	})
}

func TestLoginUser(t *testing.T) {
	ctx := setup(t)
	register(t, ctx, "alice", "alice@example.com")

	user, err := NewLoginUserService(ctx).LoginUser(&LoginUserRequest{Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = NewLoginUserService(ctx).LoginUser(&LoginUserRequest{Email: "nobody@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, errno.NotFoundErr)

	_, err = NewLoginUserService(ctx).LoginUser(&LoginUserRequest{Email: "alice@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, errno.TokenInvalidErr)

	_, err = NewLoginUserService(ctx).LoginUser(&LoginUserRequest{Email: "alice@example.com"})
	assert.ErrorIs(t, err, errno.ParamErr)
}

func TestUpdateAndChangePassword(t *testing.T) {
	ctx := setup(t)
	alice := register(t, ctx, "alice", "alice@example.com")
	register(t, ctx, "bob", "bob@example.com")

	bio := "hello"
	updated, err := NewUpdateUserService(ctx).UpdateUser(alice.ID, &UpdateUserRequest{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "hello", updated.Bio)

	taken := "bob"
	_, err = NewUpdateUserService(ctx).UpdateUser(alice.ID, &UpdateUserRequest{Username: &taken})
	assert.ErrorIs(t, err, errno.ParamErr)

	err = NewChangePasswordService(ctx).ChangePassword(alice.ID, &ChangePasswordRequest{
		CurrentPassword: "wrong-pass", NewPassword: "secret2", ConfirmPassword: "secret2",
	})
	assert.ErrorIs(t, err, errno.TokenInvalidErr)

	err = NewChangePasswordService(ctx).ChangePassword(alice.ID, &ChangePasswordRequest{
		CurrentPassword: "secret1", NewPassword: "secret2", ConfirmPassword: "secret2",
	})
	require.NoError(t, err)
	_, err = NewLoginUserService(ctx).LoginUser(&LoginUserRequest{Email: "alice@example.com", Password: "secret2"})
	assert.NoError(t, err)
}

func TestDeleteUser(t *testing.T) {
	ctx := setup(t)
	alice := register(t, ctx, "alice", "alice@example.com")

	err := NewDeleteUserService(ctx).DeleteUser(alice.ID, &DeleteUserRequest{Password: "nope-nope"})
	assert.ErrorIs(t, err, errno.TokenInvalidErr)

	require.NoError(t, NewDeleteUserService(ctx).DeleteUser(alice.ID, &DeleteUserRequest{Password: "secret1"}))
	_, err = NewGetUserInfoService(ctx).GetUserInfo(alice.ID)
	assert.ErrorIs(t, err, errno.NotFoundErr)
}
