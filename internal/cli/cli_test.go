package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fixtureDataset = `[
  {"companyId": "t-1", "companyName": "Harbour Tech", "firstName": "Ava", "lastName": "Nguyen", "address": "1 George St, Sydney", "phoneNumber": "02 5550 0001", "email": "ava@harbour.example", "state": "NSW", "industry": "Technology", "latitude": -33.86, "longitude": 151.21},
  {"companyId": "t-2", "companyName": "Yarra Cafe", "firstName": "Ben", "lastName": "Costa", "address": "5 Flinders Ln, Melbourne", "phoneNumber": "03 5550 0002", "email": "ben@yarra.example", "state": "VIC", "industry": "Hospitality", "latitude": -37.81, "longitude": 144.96},
  {"companyId": "t-3", "companyName": "Southbank Software", "firstName": "Cleo", "lastName": "Park", "address": "9 City Rd, Southbank", "phoneNumber": "03 5550 0003", "email": "cleo@southbank.example", "state": "VIC", "industry": "Technology", "latitude": -37.82, "longitude": 144.97},
  {"companyId": 4, "companyName": "Outback Farms", "firstName": "Dan", "lastName": "Reid", "address": "Stuart Hwy, Alice Springs", "phoneNumber": "08 5550 0004", "email": "dan@outback.example", "state": "NT", "industry": "Agriculture", "latitude": -23.70, "longitude": 133.88}
]`

func writeFixture(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "companies.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func runCLI(t *testing.T, args []string) (stdout []byte, stderr []byte, err error) {
	t.Helper()

	cmd := NewRootCmd()

	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	e := cmd.Execute()
	return outBuf.Bytes(), errBuf.Bytes(), e
}

func decodeEnvelope(t *testing.T, out []byte) any {
	t.Helper()
	var env map[string]any
	if err := json.Unmarshal(out, &env); err != nil {
		t.Fatalf("unmarshal output: %v\nstdout:\n%s", err, string(out))
	}
	data, ok := env["data"]
	if !ok {
		t.Fatalf("expected data envelope; got %v", env)
	}
	return data
}

func recordIDs(t *testing.T, data any) []string {
	t.Helper()
	arr, ok := data.([]any)
	if !ok {
		t.Fatalf("expected data array; got %#v", data)
	}
	out := make([]string, 0, len(arr))
	for _, it := range arr {
		m, _ := it.(map[string]any)
		id, _ := m["id"].(string)
		out = append(out, id)
	}
	return out
}

func TestList_AppliesAllFilters(t *testing.T) {
	t.Parallel()
	ds := writeFixture(t, fixtureDataset)

	out, stderr, err := runCLI(t, []string{"--dataset", ds, "list"})
	if err != nil {
		t.Fatalf("list error: %v\nstderr:\n%s", err, string(stderr))
	}
	if got := recordIDs(t, decodeEnvelope(t, out)); strings.Join(got, ",") != "t-1,t-2,t-3,4" {
		t.Fatalf("expected all records in source order; got %v", got)
	}

	out, stderr, err = runCLI(t, []string{"--dataset", ds, "list", "--region", "vic", "--industry", "technology"})
	if err != nil {
		t.Fatalf("list error: %v\nstderr:\n%s", err, string(stderr))
	}
	if got := recordIDs(t, decodeEnvelope(t, out)); strings.Join(got, ",") != "t-3" {
		t.Fatalf("expected only t-3; got %v", got)
	}

	out, _, err = runCLI(t, []string{"--dataset", ds, "list", "--search", "REID"})
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if got := recordIDs(t, decodeEnvelope(t, out)); strings.Join(got, ",") != "4" {
		t.Fatalf("expected search on last name; got %v", got)
	}

	out, _, err = runCLI(t, []string{"--dataset", ds, "list", "--region", "all", "--search", "nothing-matches"})
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if got := recordIDs(t, decodeEnvelope(t, out)); len(got) != 0 {
		t.Fatalf("expected empty list; got %v", got)
	}
}

func TestList_RejectsUnknownRegion(t *testing.T) {
	t.Parallel()
	ds := writeFixture(t, fixtureDataset)

	_, stderr, err := runCLI(t, []string{"--dataset", ds, "list", "--region", "XX"})
	if err == nil {
		t.Fatalf("expected error for unknown region")
	}
	if !strings.Contains(string(stderr), `invalid --region "XX"`) {
		t.Fatalf("expected invalid region message; got %q", string(stderr))
	}
}

func TestList_TableFormat(t *testing.T) {
	t.Parallel()
	ds := writeFixture(t, fixtureDataset)

	out, stderr, err := runCLI(t, []string{"--dataset", ds, "--format", "table", "list", "--region", "NSW"})
	if err != nil {
		t.Fatalf("list error: %v\nstderr:\n%s", err, string(stderr))
	}
	s := string(out)
	for _, want := range []string{"Company", "Harbour Tech", "Ava Nguyen", "NSW"} {
		if !strings.Contains(s, want) {
			t.Fatalf("expected %q in table output:\n%s", want, s)
		}
	}
	if strings.Contains(s, "Yarra Cafe") {
		t.Fatalf("expected filtered table:\n%s", s)
	}
}

func TestShow_FoundAndNotFound(t *testing.T) {
	t.Parallel()
	ds := writeFixture(t, fixtureDataset)

	out, stderr, err := runCLI(t, []string{"--dataset", ds, "show", "4"})
	if err != nil {
		t.Fatalf("show error: %v\nstderr:\n%s", err, string(stderr))
	}
	rec, ok := decodeEnvelope(t, out).(map[string]any)
	if !ok || rec["companyName"] != "Outback Farms" || rec["region"] != "NT" {
		t.Fatalf("unexpected record: %#v", rec)
	}

	_, stderr, err = runCLI(t, []string{"--dataset", ds, "show", "missing"})
	if err == nil {
		t.Fatalf("expected error for unknown id")
	}
	if got := strings.TrimSpace(string(stderr)); !strings.HasPrefix(got, "record not found: missing") {
		t.Fatalf("expected not-found message; got %q", got)
	}
}

func TestLoad_DuplicateIDsFail(t *testing.T) {
	t.Parallel()
	ds := writeFixture(t, `[{"companyId":"a","companyName":"A"},{"companyId":"a","companyName":"B"}]`)

	_, stderr, err := runCLI(t, []string{"--dataset", ds, "list"})
	if err == nil {
		t.Fatalf("expected duplicate id error")
	}
	if !strings.Contains(string(stderr), "duplicate") {
		t.Fatalf("expected duplicate id message; got %q", string(stderr))
	}
}

func TestRegionsAndIndustries(t *testing.T) {
	t.Parallel()

	out, _, err := runCLI(t, []string{"regions"})
	if err != nil {
		t.Fatalf("regions error: %v", err)
	}
	regions, _ := decodeEnvelope(t, out).([]any)
	if len(regions) != 8 || regions[0] != "NSW" || regions[7] != "ACT" {
		t.Fatalf("unexpected regions: %v", regions)
	}

	out, _, err = runCLI(t, []string{"industries"})
	if err != nil {
		t.Fatalf("industries error: %v", err)
	}
	industries, _ := decodeEnvelope(t, out).([]any)
	if len(industries) != 6 || industries[0] != "Retail & Tourism" {
		t.Fatalf("unexpected industries: %v", industries)
	}
}

func TestMap_FrameFollowsSelection(t *testing.T) {
	t.Parallel()
	ds := writeFixture(t, fixtureDataset)

	out, stderr, err := runCLI(t, []string{"--dataset", ds, "map", "--region", "VIC", "--width", "30", "--height", "10"})
	if err != nil {
		t.Fatalf("map error: %v\nstderr:\n%s", err, string(stderr))
	}
	frame := decodeEnvelope(t, out).(map[string]any)
	if frame["zoom"] != float64(4) {
		t.Fatalf("expected zoom 4 for several visible records; got %v", frame["zoom"])
	}
	if markers, _ := frame["markers"].([]any); len(markers) != 2 {
		t.Fatalf("expected 2 markers; got %v", frame["markers"])
	}
	if canvas, _ := frame["canvas"].([]any); len(canvas) != 10 {
		t.Fatalf("expected 10 canvas rows; got %d", len(canvas))
	}

	out, stderr, err = runCLI(t, []string{"--dataset", ds, "map", "--region", "VIC", "--select", "t-2"})
	if err != nil {
		t.Fatalf("map error: %v\nstderr:\n%s", err, string(stderr))
	}
	frame = decodeEnvelope(t, out).(map[string]any)
	if frame["zoom"] != float64(10) || frame["selected"] != "t-2" {
		t.Fatalf("expected selected frame at zoom 10; got %v", frame)
	}
	if markers, _ := frame["markers"].([]any); len(markers) != 1 {
		t.Fatalf("expected only the selected marker; got %v", frame["markers"])
	}
}

func TestMap_SelectMustBeVisible(t *testing.T) {
	t.Parallel()
	ds := writeFixture(t, fixtureDataset)

	_, stderr, err := runCLI(t, []string{"--dataset", ds, "map", "--region", "NSW", "--select", "t-2"})
	if err == nil {
		t.Fatalf("expected error selecting a filtered-out record")
	}
	if !strings.Contains(string(stderr), "not visible") {
		t.Fatalf("expected not-visible message; got %q", string(stderr))
	}
}

func TestMap_Raw(t *testing.T) {
	t.Parallel()
	ds := writeFixture(t, fixtureDataset)

	out, _, err := runCLI(t, []string{"--dataset", ds, "--glyphs", "ascii", "map", "--region", "NT", "--raw", "--width", "21", "--height", "11"})
	if err != nil {
		t.Fatalf("map error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if len(lines) != 12 {
		t.Fatalf("expected summary plus 11 rows; got %d:\n%s", len(lines), string(out))
	}
	if !strings.HasPrefix(lines[0], "center -23.7000, 133.8800 zoom 5 markers 1") {
		t.Fatalf("unexpected summary %q", lines[0])
	}
	if lines[6][10] != '*' {
		t.Fatalf("expected marker at canvas center; got row %q", lines[6])
	}
}

func TestDatasetExportSQLite_RoundTrip(t *testing.T) {
	t.Parallel()
	ds := writeFixture(t, fixtureDataset)
	db := filepath.Join(t.TempDir(), "out", "companies.sqlite")

	out, stderr, err := runCLI(t, []string{"--dataset", ds, "dataset", "export-sqlite", db})
	if err != nil {
		t.Fatalf("export error: %v\nstderr:\n%s", err, string(stderr))
	}
	res := decodeEnvelope(t, out).(map[string]any)
	if res["records"] != float64(4) {
		t.Fatalf("expected 4 exported records; got %v", res)
	}

	out, stderr, err = runCLI(t, []string{"--dataset", db, "list", "--industry", "Technology"})
	if err != nil {
		t.Fatalf("list from sqlite error: %v\nstderr:\n%s", err, string(stderr))
	}
	if got := recordIDs(t, decodeEnvelope(t, out)); strings.Join(got, ",") != "t-1,t-3" {
		t.Fatalf("expected technology records from sqlite; got %v", got)
	}

	if _, _, err := runCLI(t, []string{"--dataset", ds, "dataset", "export-sqlite", filepath.Join(t.TempDir(), "x.json")}); err == nil {
		t.Fatalf("expected error for non-sqlite output path")
	}
}

func TestLogFile_RecordsSessionTransitions(t *testing.T) {
	t.Parallel()
	ds := writeFixture(t, fixtureDataset)
	logPath := filepath.Join(t.TempDir(), "jobfinder.log")

	_, stderr, err := runCLI(t, []string{"--dataset", ds, "--log-file", logPath, "--log-level", "debug", "map", "--region", "VIC", "--select", "t-3"})
	if err != nil {
		t.Fatalf("map error: %v\nstderr:\n%s", err, string(stderr))
	}
	b, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	s := string(b)
	for _, want := range []string{"session=", "dataset loaded", "criteria changed", "record selected", "record_id=t-3"} {
		if !strings.Contains(s, want) {
			t.Fatalf("expected %q in log:\n%s", want, s)
		}
	}
}

func TestLogLevel_Invalid(t *testing.T) {
	t.Parallel()

	if _, _, err := runCLI(t, []string{"--log-level", "loud", "regions"}); err == nil {
		t.Fatalf("expected error for invalid log level")
	}
}

func TestDocs(t *testing.T) {
	t.Parallel()

	out, _, err := runCLI(t, []string{"docs"})
	if err != nil {
		t.Fatalf("docs error: %v", err)
	}
	topics, _ := decodeEnvelope(t, out).(map[string]any)["topics"].([]any)
	if len(topics) == 0 {
		t.Fatalf("expected docs topics")
	}

	out, _, err = runCLI(t, []string{"docs", "keys", "--raw"})
	if err != nil {
		t.Fatalf("docs keys error: %v", err)
	}
	if !strings.HasPrefix(string(out), "# Keys") {
		t.Fatalf("expected raw markdown; got %q", string(out))
	}

	if _, _, err := runCLI(t, []string{"docs", "nope"}); err == nil {
		t.Fatalf("expected error for unknown topic")
	}
}
