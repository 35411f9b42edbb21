package orders

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextOrderNumber(t *testing.T) {
	day := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		last string
		want string
	}{
		{"first of the day", "", "20260830-0001"},
		{"increments", "20260830-0007", "20260830-0008"},
		{"crosses into five digits", "20260830-9999", "20260830-10000"},
		{"yesterday's number restarts the sequence", "20260829-0042", "20260830-0001"},
		{"garbage suffix restarts the sequence", "20260830-abcd", "20260830-0001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nextOrderNumber(day, tt.last))
		})
	}
}

// stubQuerier records the statements NextOrderNumber issues; the scan
// result mimics the day's highest existing order number.
type stubQuerier struct {
	execs   []string
	selects []string
	last    string
}

func (s *stubQuerier) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	s.execs = append(s.execs, sql)
	return pgconn.CommandTag{}, nil
}

func (s *stubQuerier) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	s.selects = append(s.selects, sql)
	return nil, nil
}

func (s *stubQuerier) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	s.selects = append(s.selects, sql)
	return stubRow{last: s.last}
}

type stubRow struct{ last string }

func (r stubRow) Scan(dest ...any) error {
	if r.last == "" {
		return pgx.ErrNoRows
	}
	*(dest[0].(*string)) = r.last
	return nil
}

func TestNextOrderNumberLocksDayBeforeReading(t *testing.T) {
	day := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	q := &stubQuerier{last: "20260830-0003"}
	repo := NewRepository(q)

	got, err := repo.NextOrderNumber(context.Background(), day)
	require.NoError(t, err)
	assert.Equal(t, "20260830-0004", got)

	// the advisory lock must be taken before the top row is read,
	// otherwise two checkouts can mint the same number
	require.Len(t, q.execs, 1)
	assert.Contains(t, q.execs[0], "pg_advisory_xact_lock")
	require.Len(t, q.selects, 1)
	assert.NotContains(t, q.selects[0], "FOR UPDATE")
}

func TestNextOrderNumberLocksEmptyDay(t *testing.T) {
	day := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	q := &stubQuerier{}
	repo := NewRepository(q)

	got, err := repo.NextOrderNumber(context.Background(), day)
	require.NoError(t, err)
	assert.Equal(t, "20260830-0001", got)

	// no row exists to lock on the first order of a day, so the
	// advisory lock is the only serialization point
	require.Len(t, q.execs, 1)
	assert.Contains(t, q.execs[0], "pg_advisory_xact_lock")
}
