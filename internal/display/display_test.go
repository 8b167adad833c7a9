package display

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kstephano/vx16/internal/cpu"
)

func TestDumpClearsScreenWhenConfigured(t *testing.T) {
	c := cpu.New()
	var buf bytes.Buffer
	Dump(&buf, c, Config{ClearScreen: true, Hex: true})
	require.True(t, strings.HasPrefix(buf.String(), clearScreen))
}

func TestDumpOmitsClearWhenDisabled(t *testing.T) {
	c := cpu.New()
	var buf bytes.Buffer
	Dump(&buf, c, Config{ClearScreen: false})
	require.False(t, strings.HasPrefix(buf.String(), clearScreen))
}

func TestDumpFormatsRegistersDecimalOrHex(t *testing.T) {
	c := cpu.New()
	c.Registers[3] = 42

	var hexBuf bytes.Buffer
	Dump(&hexBuf, c, Config{Hex: true})
	require.Contains(t, hexBuf.String(), "r3=0x002A")

	var decBuf bytes.Buffer
	Dump(&decBuf, c, Config{Hex: false})
	require.Contains(t, decBuf.String(), "r3=42")
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "display.toml")
	require.NoError(t, os.WriteFile(path, []byte("hex = false\nclear_screen = false\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.False(t, cfg.Hex)
	require.False(t, cfg.ClearScreen)
}

func TestLoadConfigPartialFileKeepsOtherDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "display.toml")
	require.NoError(t, os.WriteFile(path, []byte("hex = false\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.False(t, cfg.Hex)
	require.True(t, cfg.ClearScreen, "an omitted key must keep DefaultConfig's value")
}
