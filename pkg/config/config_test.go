package config

import (
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/Manu343726/isagen/pkg/isa/decoder"
	"github.com/Manu343726/isagen/pkg/isa/riscv"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withFs(t *testing.T) afero.Fs {
	t.Helper()

	previous := Fs
	Fs = afero.NewMemMapFs()
	t.Cleanup(func() { Fs = previous })

	return Fs
}

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestFromViper_Defaults(t *testing.T) {
	config, err := FromViper(newViper())
	require.NoError(t, err)

	assert.Empty(t, config.Features)
	assert.Equal(t, decoder.DefaultLoadLatency, config.LoadLatency)
	assert.Equal(t, "warn", config.LogLevel)
	assert.Empty(t, config.Catalogue)
}

func TestFromViper_ConfigFile(t *testing.T) {
	v := newViper()
	v.SetConfigType("yaml")

	require.NoError(t, v.ReadConfig(strings.NewReader(`
features: [d, gap8]
load-latency: 3
header-file: out/isa_decoder.h
source-file: out/isa_decoder.c
`)))

	config, err := FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, []string{"d", "gap8"}, config.Features)
	assert.Equal(t, 3, config.LoadLatency)
	assert.Equal(t, "out/isa_decoder.h", config.HeaderFile)
	assert.True(t, config.FeatureSet().Has("gap8"))
}

func TestFromViper_Environment(t *testing.T) {
	t.Setenv("ISAGEN_LOAD_LATENCY", "4")

	v := newViper()
	BindEnvironment(v)

	config, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 4, config.LoadLatency)
}

func TestFromViper_NegativeLatency(t *testing.T) {
	v := newViper()
	v.Set(KeyLoadLatency, -1)

	_, err := FromViper(v)
	assert.ErrorIs(t, err, decoder.ErrInvalidLatency)
}

func TestBuildTable_LoadLatency(t *testing.T) {
	v := newViper()
	v.Set(KeyLoadLatency, 5)

	config, err := FromViper(v)
	require.NoError(t, err)

	table, set, err := config.BuildTable(discard())
	require.NoError(t, err)
	assert.Equal(t, "riscv", set.Name)

	lw, err := table.Lookup("lw")
	require.NoError(t, err)
	assert.Equal(t, 5, lw.Operands[0].Latency)
}

func TestBuildTable_Catalogue(t *testing.T) {
	fs := withFs(t)
	require.NoError(t, afero.WriteFile(fs, "/isa.yaml", []byte(`
name: tiny
widths:
  - {width: 32, selector: "------- ----- ----- --- ----- -----11"}
subsets:
  - name: base
    instructions:
      - {mnemonic: foo, pattern: "0000000 ----- ----- 000 ----- 0110011", format: R}
      - {mnemonic: bar, pattern: "0000000 ----- ----- 000 ----- 0110011", format: R}
`), 0o644))

	config := &Config{Catalogue: "/isa.yaml", LoadLatency: decoder.DefaultLoadLatency}

	_, set, err := config.BuildTable(discard())
	require.Error(t, err)
	assert.Equal(t, "tiny", set.Name)
	assert.ErrorIs(t, err, decoder.ErrAmbiguousEncoding)
	assert.True(t, IsValidationError(err))

	config.Catalogue = "/missing.yaml"
	_, _, err = config.BuildTable(discard())
	require.Error(t, err)
	assert.False(t, IsValidationError(err))
}

func TestBuildTable_Features(t *testing.T) {
	config := &Config{Features: []string{riscv.FeatureDouble}}

	table, _, err := config.BuildTable(discard())
	require.NoError(t, err)

	_, err = table.Lookup("fld")
	assert.NoError(t, err)
}

func TestLogger(t *testing.T) {
	fs := withFs(t)

	config := &Config{LogLevel: "info", LogFile: "/isagen.log"}
	logger, closer, err := config.Logger()
	require.NoError(t, err)

	logger.Debug("only in the file")
	require.NoError(t, closer.Close())

	contents, err := afero.ReadFile(fs, "/isagen.log")
	require.NoError(t, err)
	assert.Contains(t, string(contents), "only in the file")

	_, _, err = (&Config{LogLevel: "loud"}).Logger()
	assert.Error(t, err)
}

func TestSetup(t *testing.T) {
	fs := withFs(t)

	v := newViper()
	v.Set(KeyLogFile, "/setup.log")
	v.Set(KeyFeatures, []string{"gap8"})

	config, logger, closer, err := Setup(v)
	require.NoError(t, err)
	assert.Equal(t, []string{"gap8"}, config.FeatureSet().Names())

	logger.Debug("setup done", "features", config.Features)
	require.NoError(t, closer.Close())

	contents, err := afero.ReadFile(fs, "/setup.log")
	require.NoError(t, err)
	assert.Contains(t, string(contents), `"msg":"setup done"`)
}

func TestSetup_Errors(t *testing.T) {
	withFs(t)

	v := newViper()
	v.Set(KeyLogLevel, "loud")
	_, _, _, err := Setup(v)
	assert.Error(t, err)

	v = newViper()
	v.Set(KeyLoadLatency, -1)
	_, _, _, err = Setup(v)
	assert.ErrorIs(t, err, decoder.ErrInvalidLatency)
}

func TestIsValidationError(t *testing.T) {
	assert.False(t, IsValidationError(os.ErrNotExist))
	assert.False(t, IsValidationError(errors.New("boom")))
}
