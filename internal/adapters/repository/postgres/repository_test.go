package postgres

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/footvote/internal/core/domain"
)

const wednesday = "2026-10-14"

func TestVoteRepository(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewVoteRepository(db)

	t.Run("upsert creates then overwrites", func(t *testing.T) {
		first := &domain.Vote{UserName: "Alice", VoteDate: wednesday, Attendance: domain.AttendanceYes, MinPlayers: domain.MinPlayersAny, Guests: 2}
		require.NoError(t, repo.Upsert(ctx, first))
		assert.NotEmpty(t, first.ID)
		assert.False(t, first.CreatedAt.IsZero())

		second := &domain.Vote{UserName: "Alice", VoteDate: wednesday, Attendance: domain.AttendanceNo, MinPlayers: domain.MinPlayersEight, Guests: 0}
		require.NoError(t, repo.Upsert(ctx, second))
		assert.Equal(t, first.ID, second.ID)
		assert.True(t, first.CreatedAt.Equal(second.CreatedAt))
		assert.False(t, second.UpdatedAt.Before(first.UpdatedAt))

		votes, err := repo.GetByDate(ctx, wednesday)
		require.NoError(t, err)
		require.Len(t, votes, 1)
		assert.Equal(t, domain.AttendanceNo, votes[0].Attendance)
		assert.Equal(t, domain.MinPlayersEight, votes[0].MinPlayers)
		assert.Equal(t, wednesday, votes[0].VoteDate)
	})

	t.Run("votes come back in creation order", func(t *testing.T) {
		date := "2026-10-21"
		for _, name := range []string{"Carol", "Bob", "Dan"} {
			require.NoError(t, repo.Upsert(ctx, &domain.Vote{UserName: name, VoteDate: date, Attendance: domain.AttendanceYes, MinPlayers: domain.MinPlayersSix}))
		}
		// re-vote must not move Carol to the end
		require.NoError(t, repo.Upsert(ctx, &domain.Vote{UserName: "Carol", VoteDate: date, Attendance: domain.AttendanceNo, MinPlayers: domain.MinPlayersSix}))

		votes, err := repo.GetByDate(ctx, date)
		require.NoError(t, err)
		require.Len(t, votes, 3)
		assert.Equal(t, "Carol", votes[0].UserName)
		assert.Equal(t, "Bob", votes[1].UserName)
		assert.Equal(t, "Dan", votes[2].UserName)
	})

	t.Run("concurrent upserts keep one row per identity", func(t *testing.T) {
		date := "2026-10-28"
		var wg sync.WaitGroup
		errs := make(chan error, 10)
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(guests int) {
				defer wg.Done()
				errs <- repo.Upsert(ctx, &domain.Vote{UserName: "Eve", VoteDate: date, Attendance: domain.AttendanceYes, MinPlayers: domain.MinPlayersAny, Guests: guests})
			}(i)
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		var count int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM votes WHERE user_name = 'Eve' AND vote_date = $1", date).Scan(&count))
		assert.Equal(t, 1, count)
	})

	t.Run("votes sharing a timestamp keep insertion order", func(t *testing.T) {
		date := "2026-11-04"
		tx, err := db.BeginTx(ctx, nil)
		require.NoError(t, err)
		// NOW() is fixed for the whole transaction
		for _, name := range []string{"Zed", "Amy", "Max"} {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO votes (id, user_name, vote_date, attendance, min_players, guests)
				VALUES (gen_random_uuid(), $1, $2, 'yes', 'any', 0)
			`, name, date)
			require.NoError(t, err)
		}
		require.NoError(t, tx.Commit())

		votes, err := repo.GetByDate(ctx, date)
		require.NoError(t, err)
		require.Len(t, votes, 3)
		assert.True(t, votes[0].CreatedAt.Equal(votes[2].CreatedAt))
		assert.Equal(t, "Zed", votes[0].UserName)
		assert.Equal(t, "Amy", votes[1].UserName)
		assert.Equal(t, "Max", votes[2].UserName)
	})

	t.Run("schema rejects unknown attendance", func(t *testing.T) {
		err := repo.Upsert(ctx, &domain.Vote{UserName: "Frank", VoteDate: wednesday, Attendance: "maybe", MinPlayers: domain.MinPlayersAny})
		assert.Error(t, err)
	})
}

func TestCommentRepository(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewCommentRepository(db)

	for _, text := range []string{"who brings the ball?", "me"} {
		c := &domain.Comment{UserName: "Alice", VoteDate: wednesday, Comment: text}
		require.NoError(t, repo.Save(ctx, c))
		assert.NotEmpty(t, c.ID)
		assert.False(t, c.CreatedAt.IsZero())
	}

	comments, err := repo.GetByDate(ctx, wednesday)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "who brings the ball?", comments[0].Comment)
	assert.Equal(t, "me", comments[1].Comment)
	assert.Equal(t, wednesday, comments[1].VoteDate)

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	for _, text := range []string{"first", "second"} {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO comments (id, user_name, vote_date, comment)
			VALUES (gen_random_uuid(), 'Bob', '2026-11-11', $1)
		`, text)
		require.NoError(t, err)
	}
	require.NoError(t, tx.Commit())

	sameInstant, err := repo.GetByDate(ctx, "2026-11-11")
	require.NoError(t, err)
	require.Len(t, sameInstant, 2)
	assert.Equal(t, "first", sameInstant[0].Comment)
	assert.Equal(t, "second", sameInstant[1].Comment)

	none, err := repo.GetByDate(ctx, "2026-10-21")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := setupDB(t)
	assert.NoError(t, Migrate(context.Background(), db))
}

func TestMigrationFile(t *testing.T) {
	up, err := MigrationFile("create_votes_and_comments.up")
	require.NoError(t, err)
	assert.Contains(t, string(up), "CREATE TABLE IF NOT EXISTS votes")

	down, err := MigrationFile("create_votes_and_comments.down")
	require.NoError(t, err)
	assert.Contains(t, string(down), "DROP TABLE IF EXISTS votes")

	order, err := MigrationFile("add_insertion_order.up")
	require.NoError(t, err)
	assert.Contains(t, string(order), "seq BIGSERIAL")

	_, err = MigrationFile("does_not_exist")
	assert.Error(t, err)
}
