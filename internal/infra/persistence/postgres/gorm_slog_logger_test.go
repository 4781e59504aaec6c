package postgres

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"calbridge/config"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg), buf
}

func sqlAndRows(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestGormSlogLogger_ParamsFilterDropsValues(t *testing.T) {
	l, _ := newBufferedGormLogger(false)

	filter, ok := l.(interface {
		ParamsFilter(ctx context.Context, sql string, params ...any) (string, []any)
	})
	assert.True(t, ok)

	sql, params := filter.ParamsFilter(context.Background(), "INSERT INTO calendar_sessions VALUES ($1)", "cipher")
	assert.Equal(t, "INSERT INTO calendar_sessions VALUES ($1)", sql)
	assert.Nil(t, params)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		want    string
	}{
		{name: "query error", err: errors.New("connection reset"), want: "Session store query failed"},
		{name: "record not found is ignored", err: gorm.ErrRecordNotFound, want: ""},
		{name: "slow query", elapsed: time.Second, want: "Session store slow query"},
		{name: "fast query without debug", want: ""},
		{name: "fast query with debug", debug: true, want: "GORM query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newBufferedGormLogger(tt.debug)

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), sqlAndRows("SELECT 1", 1), tt.err)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}

			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "SELECT 1")
		})
	}
}

func TestGormSlogLogger_LogModeSilent(t *testing.T) {
	l, buf := newBufferedGormLogger(true)

	silent := l.LogMode(logger.Silent)
	silent.Trace(context.Background(), time.Now().Add(-time.Second), sqlAndRows("SELECT 1", 1), errors.New("boom"))
	silent.Error(context.Background(), "failed %s", "x")

	assert.Empty(t, buf.String())

	l.Warn(context.Background(), "pool %s", "exhausted")
	assert.Contains(t, buf.String(), "pool exhausted")
}
