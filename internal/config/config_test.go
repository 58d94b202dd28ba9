package config

import (
	"handstrength-server/internal/util"
	"handstrength-server/pkg/poker"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func reset() {
	config = Config{}
}

func TestInstance(t *testing.T) {
	defer reset()
	clear1 := util.SetEnv("HSS_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("HSS_MAX_HANDS", "6")
	defer clear2()

	a := assert.New(t)
	cfg := Instance()
	a.Equal(":8080", cfg.Addr)
	a.Equal("ace-high", cfg.WheelRank)
	a.Equal(6, cfg.MaxHands)
	a.Equal("debug", cfg.Log.Level)
	a.True(cfg.Log.DisableAccessLogs)
	a.Equal([]string{"https://example.com"}, cfg.CORS.AllowedOrigins)
	a.Equal(poker.WheelAceHigh, cfg.Evaluator().WheelRank())

	// ensure that it's only loaded once
	_ = os.Setenv("HSS_MAX_HANDS", "7")
	// ensure we aren't using a pointer
	cfg.Addr = "bad"
	cfg = Instance()
	a.Equal(":8080", cfg.Addr)
	a.Equal(6, cfg.MaxHands)
}

func TestDefaults(t *testing.T) {
	defer reset()
	clear1 := util.SetEnv("HSS_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear1()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, ":5000", cfg.Addr)
	assert.Equal(t, "five", cfg.WheelRank)
	assert.Equal(t, 10, cfg.MaxHands)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.DisableAccessLogs)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, poker.WheelFive, cfg.Evaluator().WheelRank())
}

func TestLoad_invalid(t *testing.T) {
	defer reset()
	clear1 := util.SetEnv("HSS_CONFIG_FILE", "testdata/bad_wheel.yaml")
	defer clear1()

	assert.EqualError(t, Load(), `unknown wheel rank: "seven"`)

	clear1()
	clear2 := util.SetEnv("HSS_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear2()
	clear3 := util.SetEnv("HSS_MAX_HANDS", "0")
	defer clear3()

	assert.EqualError(t, Load(), "maxHands must be greater than zero, got 0")
}
