package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"fleetplan/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (*bytes.Buffer, logger.Interface) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return &buf, newGormSlogLogger(base, cfg)
}

func query() (string, int64) {
	return "SELECT * FROM plans", 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		want    string
	}{
		{name: "failed query", err: errors.New("boom"), want: "GORM query failed"},
		{name: "record not found is quiet", err: gorm.ErrRecordNotFound, want: ""},
		{name: "slow query", elapsed: time.Second, want: "GORM slow query"},
		{name: "fast query without debug", want: ""},
		{name: "fast query with debug", debug: true, want: "GORM query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, l := newBufferedGormLogger(tt.debug)
			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), query, tt.err)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "component=gorm")
			assert.Contains(t, buf.String(), "SELECT * FROM plans")
		})
	}
}

func TestGormSlogLogger_LogMode(t *testing.T) {
	buf, l := newBufferedGormLogger(false)

	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), query, errors.New("boom"))
	assert.Empty(t, buf.String())

	l.Info(context.Background(), "hidden %d", 1)
	assert.Empty(t, buf.String())

	l.LogMode(logger.Info).Info(context.Background(), "shown %d", 2)
	assert.Contains(t, buf.String(), "shown 2")
}
