package style

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/svnext/pkg/errors"
	"github.com/arthur-debert/svnext/pkg/externals"
	"github.com/arthur-debert/svnext/pkg/reconcile"
	"github.com/arthur-debert/svnext/pkg/workflow"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

// Format selects how results are printed
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat validates an --output value
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatYAML, FormatJSON:
		return f, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown output format %q (want text, yaml or json)", s)
	}
}

type changeView struct {
	Action           reconcile.Action `yaml:"action" json:"action"`
	Dependency       string           `yaml:"dependency" json:"dependency"`
	Path             string           `yaml:"path" json:"path"`
	Location         string           `yaml:"location" json:"location"`
	PreviousLocation string           `yaml:"previousLocation,omitempty" json:"previousLocation,omitempty"`
	PreviousPath     string           `yaml:"previousPath,omitempty" json:"previousPath,omitempty"`
}

type resultView struct {
	ExternalsFile string            `yaml:"externalsFile,omitempty" json:"externalsFile,omitempty"`
	Changed       bool              `yaml:"changed" json:"changed"`
	Committed     bool              `yaml:"committed" json:"committed"`
	Changes       []changeView      `yaml:"changes" json:"changes"`
	Entries       []externals.Entry `yaml:"entries" json:"entries"`
}

type entriesView struct {
	Entries []externals.Entry `yaml:"entries" json:"entries"`
}

// Renderer prints stores and run results in one format
type Renderer struct {
	out    io.Writer
	format Format
}

// NewRenderer creates a Renderer writing to out
func NewRenderer(out io.Writer, format Format) *Renderer {
	return &Renderer{out: out, format: format}
}

// Entries prints the entries of s
func (r *Renderer) Entries(s *externals.Store) error {
	entries := s.Entries()
	if r.format != FormatText {
		return r.encode(entriesView{Entries: entries})
	}

	if len(entries) == 0 {
		_, err := fmt.Fprintln(r.out, MutedStyle.Render("No externals defined"))
		return err
	}
	data := pterm.TableData{{"Path", "Location"}}
	for _, e := range entries {
		data = append(data, []string{e.Path, e.Location})
	}
	return r.table(data)
}

// Result prints the changes of a run followed by its outcome
func (r *Renderer) Result(res *workflow.Result, dryRun bool) error {
	changes := changeViews(res.Report)
	if r.format != FormatText {
		view := resultView{
			ExternalsFile: res.ExternalsFile,
			Changed:       res.Changed,
			Committed:     res.Committed,
			Changes:       changes,
		}
		if res.After != nil {
			view.Entries = res.After.Entries()
		}
		return r.encode(view)
	}

	data := pterm.TableData{{"Action", "Dependency", "Path", "Location"}}
	for _, c := range changes {
		data = append(data, []string{
			ActionStyle(c.Action).Sprint(string(c.Action)),
			c.Dependency,
			c.Path,
			c.Location,
		})
	}
	if err := r.table(data); err != nil {
		return err
	}

	_, err := fmt.Fprintln(r.out, summary(res, dryRun))
	return err
}

func summary(res *workflow.Result, dryRun bool) string {
	var counts string
	if res.Report != nil {
		counts = fmt.Sprintf("%d added, %d updated, %d unchanged. ",
			res.Report.Count(reconcile.ActionAdded),
			res.Report.Count(reconcile.ActionUpdated),
			res.Report.Count(reconcile.ActionUnchanged))
	}
	switch {
	case dryRun:
		return counts + MutedStyle.Render("Dry run: wrote "+res.ExternalsFile+", nothing committed")
	case !res.Changed:
		return counts + MutedStyle.Render("svn:externals already up to date, nothing committed")
	case res.Committed:
		return counts + SuccessStyle.Render("Committed svn:externals")
	default:
		return counts
	}
}

func changeViews(report *reconcile.Report) []changeView {
	if report == nil {
		return nil
	}
	views := make([]changeView, 0, len(report.Changes))
	for _, c := range report.Changes {
		views = append(views, changeView{
			Action:           c.Action,
			Dependency:       c.Dependency.String(),
			Path:             c.Path,
			Location:         c.Location,
			PreviousLocation: c.PreviousLocation,
			PreviousPath:     c.PreviousPath,
		})
	}
	return views
}

func (r *Renderer) table(data pterm.TableData) error {
	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to render table")
	}
	_, err = fmt.Fprintln(r.out, s)
	return err
}

func (r *Renderer) encode(v interface{}) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode json")
		}
	default:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode yaml")
		}
		if err := enc.Close(); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode yaml")
		}
	}
	return nil
}
