package model

import (
	"fmt"
	"strings"
)

type Region string

const (
	RegionNSW Region = "NSW"
	RegionVIC Region = "VIC"
	RegionQLD Region = "QLD"
	RegionWA  Region = "WA"
	RegionSA  Region = "SA"
	RegionTAS Region = "TAS"
	RegionNT  Region = "NT"
	RegionACT Region = "ACT"

	// RegionUnspecified is used for records whose state is missing or unknown.
	RegionUnspecified Region = "unspecified"
)

// Regions lists the selectable regions in display order.
var Regions = []Region{
	RegionNSW,
	RegionVIC,
	RegionQLD,
	RegionWA,
	RegionSA,
	RegionTAS,
	RegionNT,
	RegionACT,
}

// ParseRegion maps a state code (case-insensitive) to a Region.
// Unknown or empty codes yield RegionUnspecified and ok=false.
func ParseRegion(s string) (Region, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, r := range Regions {
		if string(r) == s {
			return r, true
		}
	}
	return RegionUnspecified, false
}

type Industry string

const (
	IndustryRetailTourism Industry = "Retail & Tourism"
	IndustryHospitality   Industry = "Hospitality"
	IndustryTechnology    Industry = "Technology"
	IndustryAgriculture   Industry = "Agriculture"
	IndustryConstruction  Industry = "Construction"
	IndustryHealthcare    Industry = "Healthcare"

	IndustryUnspecified Industry = "unspecified"
)

var Industries = []Industry{
	IndustryRetailTourism,
	IndustryHospitality,
	IndustryTechnology,
	IndustryAgriculture,
	IndustryConstruction,
	IndustryHealthcare,
}

// ParseIndustry matches an industry label case-insensitively.
func ParseIndustry(s string) (Industry, bool) {
	s = strings.TrimSpace(s)
	for _, in := range Industries {
		if strings.EqualFold(string(in), s) {
			return in, true
		}
	}
	return IndustryUnspecified, false
}

type Coordinates struct {
	Lat float64 `json:"latitude"`
	Lng float64 `json:"longitude"`
}

func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%.4f, %.4f", c.Lat, c.Lng)
}

// Record is one company/contact entry of the directory. Records are immutable
// once loaded.
type Record struct {
	ID          string      `json:"id"`
	CompanyName string      `json:"companyName"`
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	Address     string      `json:"address"`
	Phone       string      `json:"phone"`
	Email       string      `json:"email"`
	Region      Region      `json:"region"`
	Industry    Industry    `json:"industry"`
	Location    Coordinates `json:"location"`
}

func (r Record) ContactName() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}
