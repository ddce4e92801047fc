package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))

	return entry
}

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Parallel()

	query := func() (string, int64) { return "SELECT * FROM pharmacies WHERE id = 1", 1 }

	tests := []struct {
		name      string
		debug     bool
		elapsed   time.Duration
		err       error
		wantMsg   string
		wantLevel string
	}{
		{name: "failed query", err: errors.New("deadlock detected"), wantMsg: "GORM query failed", wantLevel: "ERROR"},
		{name: "slow query", elapsed: 300 * time.Millisecond, wantMsg: "GORM slow query", wantLevel: "WARN"},
		{name: "fast query hidden", elapsed: time.Millisecond},
		{name: "fast query in debug", debug: true, elapsed: time.Millisecond, wantMsg: "GORM query", wantLevel: "DEBUG"},
		{name: "missing row is not an error", err: gorm.ErrRecordNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			base, buf := captureLogger()
			l := newGormSlogLogger(base, tt.debug, 200*time.Millisecond)

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), query, tt.err)

			if tt.wantMsg == "" {
				assert.Empty(t, buf.String())

				return
			}
			entry := lastEntry(t, buf)
			assert.Equal(t, tt.wantMsg, entry["msg"])
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "SELECT", entry["statement"])
		})
	}
}

func TestGormSlogLogger_LogModeSilences(t *testing.T) {
	t.Parallel()

	base, buf := captureLogger()
	l := newGormSlogLogger(base, true, 0).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "DELETE FROM ratings", 0 }, errors.New("boom"))
	l.Error(context.Background(), "connection %s", "lost")

	assert.Empty(t, buf.String())
}

func TestStatementKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "INSERT", statementKind("  insert into duty_periods values (1)"))
	assert.Equal(t, "", statementKind(""))
}

func TestPoolMonitor_Report(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cur       sql.DBStats
		wantLevel string
	}{
		{name: "no new waits", cur: sql.DBStats{WaitCount: 3, WaitDuration: time.Second}},
		{name: "short waits", cur: sql.DBStats{WaitCount: 5, WaitDuration: time.Second + 10*time.Millisecond}, wantLevel: "DEBUG"},
		{name: "long waits", cur: sql.DBStats{WaitCount: 4, WaitDuration: 2 * time.Second}, wantLevel: "WARN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			base, buf := captureLogger()
			m := &poolMonitor{logger: base}
			prev := sql.DBStats{WaitCount: 3, WaitDuration: time.Second}

			m.report(context.Background(), prev, tt.cur)

			if tt.wantLevel == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Equal(t, tt.wantLevel, lastEntry(t, buf)["level"])
		})
	}
}
