//go:build integration
// +build integration

package integration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avagyan/gym-squads/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitLifecycle(t *testing.T) {
	accounts, _, _, visits, _ := buildServices(t)
	ctx := context.Background()

	user, err := accounts.CreateAccount(ctx, "alice", "alice@example.com", "pw1234", "pw1234")
	require.NoError(t, err)

	// 1. Записываем посещение с явной датой
	visitDate := time.Now().Add(-24 * time.Hour)
	visit, err := visits.AddVisit(ctx, user.ID, &visitDate)
	require.NoError(t, err)
	assert.NotZero(t, visit.ID)

	// 2. Посещение без даты получает текущее время
	latest, err := visits.AddVisit(ctx, user.ID, nil)
	require.NoError(t, err)

	// 3. История отсортирована по дате по убыванию
	history, err := visits.ListUserVisits(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, latest.ID, history[0].ID)
	assert.Equal(t, visit.ID, history[1].ID)

	// 4. Удаляем посещение, повторное удаление - NOT_FOUND
	require.NoError(t, visits.DeleteVisit(ctx, visit.ID))

	err = visits.DeleteVisit(ctx, visit.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	history, err = visits.ListUserVisits(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestSquadVisits(t *testing.T) {
	accounts, squads, memberships, visits, _ := buildServices(t)
	ctx := context.Background()

	alice, err := accounts.CreateAccount(ctx, "alice", "alice@example.com", "pw1234", "pw1234")
	require.NoError(t, err)
	bob, err := accounts.CreateAccount(ctx, "bob", "bob@example.com", "pw1234", "pw1234")
	require.NoError(t, err)
	outsider, err := accounts.CreateAccount(ctx, "carol", "carol@example.com", "pw1234", "pw1234")
	require.NoError(t, err)

	squad, err := squads.CreateSquad(ctx, "morning-crew", "")
	require.NoError(t, err)

	_, err = memberships.AddMembership(ctx, alice.ID, squad.ID)
	require.NoError(t, err)
	_, err = memberships.AddMembership(ctx, bob.ID, squad.ID)
	require.NoError(t, err)

	// Посещения участников группы и постороннего пользователя
	recent := time.Now().Add(-2 * 24 * time.Hour)
	old := time.Now().Add(-30 * 24 * time.Hour)

	_, err = visits.AddVisit(ctx, alice.ID, &recent)
	require.NoError(t, err)
	_, err = visits.AddVisit(ctx, bob.ID, &recent)
	require.NoError(t, err)
	_, err = visits.AddVisit(ctx, alice.ID, &old)
	require.NoError(t, err)
	_, err = visits.AddVisit(ctx, outsider.ID, &recent)
	require.NoError(t, err)

	// Окно по умолчанию - последние две недели: старое посещение
	// и посещение постороннего не попадают в выборку
	squadVisits, err := visits.ListSquadVisits(ctx, squad.ID, "", "")
	require.NoError(t, err)
	require.Len(t, squadVisits, 2)

	usernames := []string{squadVisits[0].Username, squadVisits[1].Username}
	assert.Contains(t, usernames, "alice")
	assert.Contains(t, usernames, "bob")

	// Явное окно захватывает и старое посещение
	from := time.Now().Add(-60 * 24 * time.Hour).Format("2006-01-02")
	to := time.Now().Format("2006-01-02")
	squadVisits, err = visits.ListSquadVisits(ctx, squad.ID, from, to)
	require.NoError(t, err)
	assert.Len(t, squadVisits, 3)

	// Перевёрнутый диапазон отклоняется
	_, err = visits.ListSquadVisits(ctx, squad.ID, to, from)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidRange))
}

func TestVisitForUnknownUser(t *testing.T) {
	_, _, _, visits, _ := buildServices(t)
	ctx := context.Background()

	_, err := visits.AddVisit(ctx, 99999, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
