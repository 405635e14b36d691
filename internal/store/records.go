package store

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"jobfinder/internal/model"
)

//go:embed data/companies.json
var defaultDataset []byte

// DefaultSource names the embedded dataset in logs and errors.
const DefaultSource = "embedded:companies.json"

// wireRecord is the dataset format: one JSON object per company.
type wireRecord struct {
	CompanyID   wireID  `json:"companyId"`
	CompanyName string  `json:"companyName"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Address     string  `json:"address"`
	PhoneNumber string  `json:"phoneNumber"`
	Email       string  `json:"email"`
	State       string  `json:"state"`
	Industry    string  `json:"industry"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// wireID accepts both string and numeric company ids.
type wireID string

func (id *wireID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = wireID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("companyId: expected string or number, got %s", string(b))
	}
	*id = wireID(n.String())
	return nil
}

func (w wireRecord) toModel() model.Record {
	region, _ := model.ParseRegion(w.State)
	industry, _ := model.ParseIndustry(w.Industry)
	return model.Record{
		ID:          string(w.CompanyID),
		CompanyName: w.CompanyName,
		FirstName:   w.FirstName,
		LastName:    w.LastName,
		Address:     w.Address,
		Phone:       w.PhoneNumber,
		Email:       w.Email,
		Region:      region,
		Industry:    industry,
		Location:    model.Coordinates{Lat: w.Latitude, Lng: w.Longitude},
	}
}

func fromModel(r model.Record) wireRecord {
	state := string(r.Region)
	if r.Region == model.RegionUnspecified {
		state = ""
	}
	industry := string(r.Industry)
	if r.Industry == model.IndustryUnspecified {
		industry = ""
	}
	return wireRecord{
		CompanyID:   wireID(r.ID),
		CompanyName: r.CompanyName,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Address:     r.Address,
		PhoneNumber: r.Phone,
		Email:       r.Email,
		State:       state,
		Industry:    industry,
		Latitude:    r.Location.Lat,
		Longitude:   r.Location.Lng,
	}
}

// DecodeRecords reads a JSON dataset. Structural validation (unique ids,
// coordinate ranges) is left to directory.NewRecords.
func DecodeRecords(r io.Reader) ([]model.Record, error) {
	var wire []wireRecord
	if err := json.NewDecoder(r).Decode(&wire); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	out := make([]model.Record, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toModel())
	}
	return out, nil
}

// LoadRecords loads the record list from source:
//   - "" => the embedded dataset
//   - *.sqlite, *.sqlite3, *.db => a SQLite dataset (see ExportSQLite)
//   - anything else => a JSON dataset file
func LoadRecords(ctx context.Context, source string) ([]model.Record, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return DecodeRecords(bytes.NewReader(defaultDataset))
	}
	if isSQLitePath(source) {
		return LoadSQLite(ctx, source)
	}
	f, err := os.Open(source)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rs, err := DecodeRecords(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return rs, nil
}

func isSQLitePath(p string) bool {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".sqlite", ".sqlite3", ".db":
		return true
	}
	return false
}

var errNoDataset = errors.New("dataset not found")

// SourceLabel renders source for display.
func SourceLabel(source string) string {
	if strings.TrimSpace(source) == "" {
		return DefaultSource
	}
	return source
}
