package site_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpl-au/wpblock/internal/config"
	"github.com/jpl-au/wpblock/internal/posts"
	"github.com/jpl-au/wpblock/internal/site"
	"github.com/jpl-au/wpblock/internal/testutil"
	"github.com/jpl-au/wpblock/internal/wpapi"
)

func sqliteConfig(dsn string) *config.Config {
	cfg := &config.Config{}
	cfg.DB.Driver = posts.DriverSQLite
	cfg.DB.DSN = dsn
	return cfg
}

func TestSite_Unconfigured(t *testing.T) {
	s := site.New(nil, site.Options{})

	_, err := s.Registry()
	assert.True(t, errors.Is(err, site.ErrNoRegistry))
	_, err = s.Posts()
	assert.True(t, errors.Is(err, site.ErrNoPosts))

	v, err := s.Version(context.Background())
	require.NoError(t, err)
	assert.Empty(t, v)

	r, p := s.Describe()
	assert.Equal(t, site.BackendNone, r)
	assert.Equal(t, site.BackendNone, p)
	assert.NoError(t, s.Close())
}

func TestSite_Snapshot(t *testing.T) {
	path := testutil.WriteSite(t, t.TempDir())
	s := site.New(&config.Config{}, site.Options{Snapshot: path})

	reg, err := s.Registry()
	require.NoError(t, err)
	again, err := s.Registry()
	require.NoError(t, err)
	assert.Same(t, reg, again)

	v, err := s.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "6.5.3", v)
	assert.Equal(t, path, s.ID())
}

func TestSite_SnapshotWinsOverURL(t *testing.T) {
	path := testutil.WriteSite(t, t.TempDir())
	cfg := &config.Config{}
	cfg.Site.URL = "https://example.test"
	cfg.Site.Snapshot = path

	s := site.New(cfg, site.Options{})
	r, p := s.Describe()
	assert.Equal(t, site.BackendSnapshot, r)
	assert.Equal(t, site.BackendREST, p)

	reg, err := s.Registry()
	require.NoError(t, err)
	_, isREST := reg.(*wpapi.Client)
	assert.False(t, isREST)

	st, err := s.Posts()
	require.NoError(t, err)
	assert.IsType(t, &wpapi.BlockStore{}, st)
	assert.Equal(t, "https://example.test", s.ID())
}

func TestSite_OptionsOverrideConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Site.URL = "https://config.test"
	s := site.New(cfg, site.Options{URL: "https://flag.test"})
	assert.Equal(t, "https://flag.test", s.ID())
}

func TestSite_SQLite(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "wp.db")

	t.Run("missing file", func(t *testing.T) {
		_, err := site.New(sqliteConfig(dsn), site.Options{}).Posts()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "wpblock init")
	})

	st, err := posts.Open(posts.DriverSQLite, dsn, posts.DefaultPrefix)
	require.NoError(t, err)
	require.NoError(t, st.Init(context.Background()))
	require.NoError(t, st.Close())

	s := site.New(sqliteConfig(dsn), site.Options{})
	store, err := s.Posts()
	require.NoError(t, err)
	assert.IsType(t, &posts.SQLStore{}, store)

	_, p := s.Describe()
	assert.Equal(t, site.BackendDB, p)
	assert.NoError(t, s.Close())
}
