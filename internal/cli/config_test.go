package cli

import (
	"strings"
	"testing"
)

func TestConfigSet_DatasetIsUsedWithoutFlag(t *testing.T) {
	t.Setenv("JOBFINDER_CONFIG_DIR", t.TempDir())
	t.Setenv("JOBFINDER_DATASET", "")
	ds := writeFixture(t, fixtureDataset)

	// Nothing configured: the bundled dataset.
	out, stderr, err := runCLI(t, []string{"list"})
	if err != nil {
		t.Fatalf("list error: %v\nstderr:\n%s", err, string(stderr))
	}
	if got := len(recordIDs(t, decodeEnvelope(t, out))); got != 16 {
		t.Fatalf("expected 16 bundled records; got %d", got)
	}

	if _, stderr, err := runCLI(t, []string{"config", "set", "dataset", ds}); err != nil {
		t.Fatalf("config set error: %v\nstderr:\n%s", err, string(stderr))
	}
	out, _, err = runCLI(t, []string{"list"})
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if got := recordIDs(t, decodeEnvelope(t, out)); strings.Join(got, ",") != "t-1,t-2,t-3,4" {
		t.Fatalf("expected configured dataset; got %v", got)
	}

	out, _, err = runCLI(t, []string{"config", "show"})
	if err != nil {
		t.Fatalf("config show error: %v", err)
	}
	show := decodeEnvelope(t, out).(map[string]any)
	cfg, _ := show["config"].(map[string]any)
	if cfg["dataset"] != ds {
		t.Fatalf("expected dataset in config; got %v", show)
	}
}

func TestConfigSet_RejectsUnknownKeyAndBadGlyphs(t *testing.T) {
	t.Setenv("JOBFINDER_CONFIG_DIR", t.TempDir())

	_, stderr, err := runCLI(t, []string{"config", "set", "colour", "red"})
	if err == nil || !strings.Contains(string(stderr), "unknown config key") {
		t.Fatalf("expected unknown key error; got err=%v stderr=%q", err, string(stderr))
	}
	if _, _, err := runCLI(t, []string{"config", "set", "glyphs", "emoji"}); err == nil {
		t.Fatalf("expected invalid glyphs error")
	}
	out, _, err := runCLI(t, []string{"config", "set", "glyphs", "ascii"})
	if err != nil {
		t.Fatalf("config set glyphs error: %v", err)
	}
	cfg := decodeEnvelope(t, out).(map[string]any)
	tuiCfg, _ := cfg["tui"].(map[string]any)
	if tuiCfg["glyphs"] != "ascii" {
		t.Fatalf("expected glyphs saved; got %v", cfg)
	}
}
