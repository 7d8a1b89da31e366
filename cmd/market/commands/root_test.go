package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags() {
	for _, name := range []string{"driver", "page-size"} {
		f := rootCmd.PersistentFlags().Lookup(name)
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
}

func TestParseSpannerPath(t *testing.T) {
	p, err := parseSpannerPath("projects/test-project/instances/dev-instance/databases/market-db")
	require.NoError(t, err)
	assert.Equal(t, "projects/test-project/instances/dev-instance", p.instanceName())
	assert.Equal(t, "projects/test-project/instances/dev-instance/databases/market-db", p.databaseName())

	for _, bad := range []string{"", "market-db", "projects/p/instances/i", "projects/p/zones/i/databases/d"} {
		_, err := parseSpannerPath(bad)
		assert.Error(t, err, bad)
	}
}

func TestLoadConfig_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("STORE_DRIVER", "spanner")
	t.Setenv("CATALOG_PAGE_SIZE", "12")

	require.NoError(t, rootCmd.PersistentFlags().Parse([]string{"--driver", "postgres", "--page-size", "30"}))
	t.Cleanup(resetFlags)

	require.NoError(t, loadConfig(rootCmd))
	assert.Equal(t, "postgres", cfg.StoreDriver)
	assert.Equal(t, 30, cfg.PageSize)
	assert.NotNil(t, logger)
}

func TestLoadConfig_RejectsBadFlag(t *testing.T) {
	require.NoError(t, rootCmd.PersistentFlags().Parse([]string{"--page-size", "1000"}))
	t.Cleanup(resetFlags)

	assert.Error(t, loadConfig(rootCmd))
}
