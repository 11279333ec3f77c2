package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-order-api/internal/core/apperr"
	"food-order-api/internal/domain"
	"food-order-api/pkg/utils"
)

func TestRegisterNormalizesEmail(t *testing.T) {
	f := newFixture(t)

	u, err := f.users.Register(context.Background(), "Alice", "  Alice@Example.COM ", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, domain.RoleUser, u.Role)
	assert.NotEmpty(t, u.ID)
	// 明文不落库
	assert.NotEqual(t, "secret1", u.PasswordHash)
	assert.True(t, utils.CheckPassword("secret1", u.PasswordHash))
}

func TestRegisterValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.users.Register(ctx, "", "a@b.co", "secret1")
	assert.Equal(t, apperr.KindInvalid, apperr.KindOf(err))

	_, err = f.users.Register(ctx, "Alice", "not-an-email", "secret1")
	assert.Equal(t, apperr.KindInvalid, apperr.KindOf(err))

	_, err = f.users.Register(ctx, "Alice", "a@b.co", "short")
	assert.Equal(t, apperr.KindInvalid, apperr.KindOf(err))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.users.Register(ctx, "Alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	// 大小写不同也算重复
	_, err = f.users.Register(ctx, "Alice Again", "ALICE@example.com", "secret2")
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.users.Register(ctx, "Alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	u, err := f.users.Login(ctx, "Alice@Example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)

	// 密码错误与账号不存在同错同码
	_, err = f.users.Login(ctx, "alice@example.com", "wrong")
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
	_, err = f.users.Login(ctx, "nobody@example.com", "secret1")
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
}

func TestUpdateProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	alice, err := f.users.Register(ctx, "Alice", "alice@example.com", "secret1")
	require.NoError(t, err)
	_, err = f.users.Register(ctx, "Bob", "bob@example.com", "secret1")
	require.NoError(t, err)

	// 改名不动邮箱
	u, err := f.users.UpdateProfile(ctx, alice.ID, "Alice Cooper", "")
	require.NoError(t, err)
	assert.Equal(t, "Alice Cooper", u.Name)
	assert.Equal(t, "alice@example.com", u.Email)

	// 换成别人占用的邮箱 → Conflict
	_, err = f.users.UpdateProfile(ctx, alice.ID, "", "BOB@example.com")
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	// 换成自己的邮箱（大小写差异）不算冲突
	u, err = f.users.UpdateProfile(ctx, alice.ID, "", "Alice@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)

	// 换新邮箱
	u, err = f.users.UpdateProfile(ctx, alice.ID, "", "alice2@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice2@example.com", u.Email)

	_, err = f.users.UpdateProfile(ctx, "missing-id", "X", "")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestEnsureAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.users.EnsureAdmin(ctx, "Admin", "admin@foodapp.com", "admin123")
	require.NoError(t, err)
	assert.True(t, created)

	u, err := f.users.Login(ctx, "admin@foodapp.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, u.Role)

	// 再跑一遍是幂等的
	created, err = f.users.EnsureAdmin(ctx, "Admin", "admin@foodapp.com", "other")
	require.NoError(t, err)
	assert.False(t, created)

	// 未配置则跳过
	created, err = f.users.EnsureAdmin(ctx, "", "", "")
	require.NoError(t, err)
	assert.False(t, created)
}
