package cli

import (
	"encoding/json"
	"strings"

	"jobfinder/internal/directory"
	"jobfinder/internal/model"

	"github.com/spf13/cobra"
)

// filterFlags are the criteria flags shared by list and map.
type filterFlags struct {
	region   string
	industry string
	search   string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.region, "region", "", "State code (NSW, VIC, QLD, WA, SA, TAS, NT, ACT); empty or 'all' for every state")
	cmd.Flags().StringVar(&f.industry, "industry", "", "Industry (case-insensitive); empty or 'all' for every industry")
	cmd.Flags().StringVar(&f.search, "search", "", "Case-insensitive text matched against company, address and contact name")
}

func (f filterFlags) criteria() (directory.Criteria, error) {
	var c directory.Criteria
	if v := strings.TrimSpace(f.region); v != "" && !strings.EqualFold(v, "all") {
		r, ok := model.ParseRegion(v)
		if !ok {
			return c, invalidValueError{flag: "region", value: f.region, want: joinRegions()}
		}
		c.Region = r
	}
	if v := strings.TrimSpace(f.industry); v != "" && !strings.EqualFold(v, "all") {
		in, ok := model.ParseIndustry(v)
		if !ok {
			return c, invalidValueError{flag: "industry", value: f.industry, want: joinIndustries()}
		}
		c.Industry = in
	}
	c.Search = f.search
	return c, nil
}

func joinRegions() string {
	out := make([]string, 0, len(model.Regions))
	for _, r := range model.Regions {
		out = append(out, string(r))
	}
	return strings.Join(out, "|")
}

func joinIndustries() string {
	out := make([]string, 0, len(model.Industries))
	for _, in := range model.Industries {
		out = append(out, string(in))
	}
	return strings.Join(out, "|")
}

// recordRows renders records as a table.
type recordRows []model.Record

func (r recordRows) Header() []string {
	return []string{"ID", "Company", "Contact", "State", "Industry", "Phone"}
}

func (r recordRows) Rows() [][]string {
	out := make([][]string, 0, len(r))
	for _, rec := range r {
		out = append(out, []string{rec.ID, rec.CompanyName, rec.ContactName(), string(rec.Region), string(rec.Industry), rec.Phone})
	}
	return out
}

// recordDetail renders a single record as field/value rows.
type recordDetail model.Record

func (r recordDetail) Header() []string { return []string{"Field", "Value"} }

func (r recordDetail) Rows() [][]string {
	return [][]string{
		{"ID", r.ID},
		{"Company", r.CompanyName},
		{"Contact", model.Record(r).ContactName()},
		{"Address", r.Address},
		{"Phone", r.Phone},
		{"Email", r.Email},
		{"State", string(r.Region)},
		{"Industry", string(r.Industry)},
		{"Location", r.Location.String()},
	}
}

// labelList renders an enumeration as a one-column table.
type labelList struct {
	title  string
	values []string
}

func (l labelList) Header() []string { return []string{l.title} }

func (l labelList) Rows() [][]string {
	out := make([][]string, 0, len(l.values))
	for _, v := range l.values {
		out = append(out, []string{v})
	}
	return out
}

func (l labelList) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.values)
}

func newListCmd(app *App) *cobra.Command {
	var filters filterFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the companies matching the filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := filters.criteria()
			if err != nil {
				return writeErr(cmd, err)
			}
			s, _, err := loadSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			s.SetCriteria(c)
			return writeOut(cmd, app, recordRows(s.Visible()))
		},
	}
	filters.register(cmd)
	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <record-id>",
		Short: "Show one company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, _, err := loadRecords(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id := strings.TrimSpace(args[0])
			r, ok := records.Find(id)
			if !ok {
				return writeErr(cmd, errNotFound("record", id))
			}
			return writeOut(cmd, app, recordDetail(r))
		},
	}
	return cmd
}

func newRegionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List the state codes accepted by --region",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]string, 0, len(model.Regions))
			for _, r := range model.Regions {
				values = append(values, string(r))
			}
			return writeOut(cmd, app, labelList{title: "State", values: values})
		},
	}
}

func newIndustriesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "industries",
		Short: "List the industries accepted by --industry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]string, 0, len(model.Industries))
			for _, in := range model.Industries {
				values = append(values, string(in))
			}
			return writeOut(cmd, app, labelList{title: "Industry", values: values})
		},
	}
}
