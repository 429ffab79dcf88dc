//go:build integration
// +build integration

package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/avagyan/gym-squads/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMembershipLifecycle(t *testing.T) {
	accounts, squads, memberships, _, _ := buildServices(t)
	ctx := context.Background()

	// 1. Создаём пользователя и группу
	user, err := accounts.CreateAccount(ctx, "alice", "alice@example.com", "pw1234", "pw1234")
	require.NoError(t, err)

	squad, err := squads.CreateSquad(ctx, "morning-crew", "утренние тренировки")
	require.NoError(t, err)

	// 2. Добавляем пользователя в группу
	membership, err := memberships.AddMembership(ctx, user.ID, squad.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, membership.UserID)
	assert.Equal(t, squad.ID, membership.SquadID)

	// 3. Повторное добавление той же пары отклоняется
	_, err = memberships.AddMembership(ctx, user.ID, squad.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrAlreadyMember))

	// 4. Членство видно с обеих сторон связи
	userSquads, err := accounts.ListUserSquads(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, userSquads, 1)
	assert.Equal(t, "morning-crew", userSquads[0].Name)

	members, err := squads.ListMembers(ctx, squad.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "alice", members[0].Username)

	// 5. Удаляем членство, повторное удаление - NOT_FOUND
	require.NoError(t, memberships.RemoveMembership(ctx, user.ID, squad.ID))

	err = memberships.RemoveMembership(ctx, user.ID, squad.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestMembershipValidation(t *testing.T) {
	accounts, squads, memberships, _, _ := buildServices(t)
	ctx := context.Background()

	user, err := accounts.CreateAccount(ctx, "alice", "alice@example.com", "pw1234", "pw1234")
	require.NoError(t, err)

	squad, err := squads.CreateSquad(ctx, "morning-crew", "")
	require.NoError(t, err)

	// Несуществующий пользователь
	_, err = memberships.AddMembership(ctx, 99999, squad.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Contains(t, err.Error(), "user")

	// Несуществующая группа
	_, err = memberships.AddMembership(ctx, user.ID, 99999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Contains(t, err.Error(), "squad")
}

func TestDuplicateSquadName(t *testing.T) {
	_, squads, _, _, _ := buildServices(t)
	ctx := context.Background()

	_, err := squads.CreateSquad(ctx, "morning-crew", "")
	require.NoError(t, err)

	_, err = squads.CreateSquad(ctx, "morning-crew", "другое описание")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSquadExists))
}
