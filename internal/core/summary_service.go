package core

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/checkdiff/checkdiff/internal/types"
)

// Fixed text markers scraped from a generated project diff page. The pages
// come from an external tool, so this is deliberately pattern search over a
// byte stream, not HTML parsing: the markers are stable, the surrounding
// markup is not.
var (
	totalDiffMarker = `totalDiff">`
	addedRegex      = regexp.MustCompile(`(\d+) added`)
	removedRegex    = regexp.MustCompile(`(\d+) removed`)
)

// SummaryService aggregates per-project diff statistics and renders the
// top-level summary index page.
type SummaryService struct {
	fs       FileSystem
	renderer ConfigRenderer
}

// NewSummaryService creates a new SummaryService
func NewSummaryService(fs FileSystem, renderer ConfigRenderer) *SummaryService {
	return &SummaryService{fs: fs, renderer: renderer}
}

// ParseDiffCounts scrapes the added/removed/total markers from one project
// diff page. Absent markers default to zero: a page with no marker at all
// yields {0,0,0} rather than an error, since the diff tool emits no counts
// for a project with no differences.
func ParseDiffCounts(project string, pageContent string) types.ProjectDiffStat {
	stat := types.ProjectDiffStat{Project: project}

	if idx := strings.Index(pageContent, totalDiffMarker); idx >= 0 {
		rest := pageContent[idx+len(totalDiffMarker):]
		end := 0
		for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
			end++
		}
		if end > 0 {
			stat.Total, _ = strconv.Atoi(rest[:end])
		}
	}

	if m := addedRegex.FindStringSubmatch(pageContent); m != nil {
		stat.Added, _ = strconv.Atoi(m[1])
	}
	if m := removedRegex.FindStringSubmatch(pageContent); m != nil {
		stat.Removed, _ = strconv.Atoi(m[1])
	}

	return stat
}

// CollectStats walks every project subdirectory under the diff output root
// and scrapes its index page. Projects whose page is missing get {0,0,0}.
func (s *SummaryService) CollectStats(diffRoot string) ([]types.ProjectDiffStat, error) {
	entries, err := os.ReadDir(diffRoot)
	if err != nil {
		return nil, fmt.Errorf("cannot read diff output tree: %w", err)
	}

	var stats []types.ProjectDiffStat
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		stat := types.ProjectDiffStat{Project: e.Name()}
		page, err := s.fs.ReadFile(filepath.Join(diffRoot, e.Name(), SummaryFileName))
		if err == nil {
			stat = ParseDiffCounts(e.Name(), string(page))
		}
		stats = append(stats, stat)
	}

	SortStats(stats)
	return stats, nil
}

// SortStats orders projects with any diff before projects with none, each
// group alphabetically case-insensitive, so regressions surface at the top
// of the summary.
func SortStats(stats []types.ProjectDiffStat) {
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].HasDiff() != stats[j].HasDiff() {
			return stats[i].HasDiff()
		}
		return strings.ToLower(stats[i].Project) < strings.ToLower(stats[j].Project)
	})
}

// SummaryData is the template payload for the summary index page.
type SummaryData struct {
	RunID         string
	Base          *types.CommitInfo // nil in single mode
	Patch         types.CommitInfo
	Projects      []summaryRow
	TotalDiff     int
	TotalAdded    int
	TotalRemoved  int
	Configs       []renderedConfig
	AllowExcludes bool
	ChartFile     string // empty when no chart page was generated
}

type summaryRow struct {
	Name    string
	Total   int
	Added   int
	Removed int
	HasDiff bool
}

type renderedConfig struct {
	Name string
	Page string
}

// Render writes the summary index.html at the diff output root and returns
// its path. Every distinct rule-config referenced by the run gets a rendered
// HTML copy linked from the header.
func (s *SummaryService) Render(ctx context.Context, diffRoot, runID string, base *types.CommitInfo, patch types.CommitInfo, configPaths []string, allowExcludes bool, chartFile string) (string, error) {
	stats, err := s.CollectStats(diffRoot)
	if err != nil {
		return "", err
	}

	data := SummaryData{
		RunID:         runID,
		Base:          base,
		Patch:         patch,
		AllowExcludes: allowExcludes,
		ChartFile:     chartFile,
	}
	for _, st := range stats {
		data.Projects = append(data.Projects, summaryRow{
			Name:    st.Project,
			Total:   st.Total,
			Added:   st.Added,
			Removed: st.Removed,
			HasDiff: st.HasDiff(),
		})
		data.TotalDiff += st.Total
		data.TotalAdded += st.Added
		data.TotalRemoved += st.Removed
	}

	for _, cfg := range dedupe(configPaths) {
		page, err := s.renderer.Render(ctx, cfg, diffRoot)
		if err != nil {
			return "", err
		}
		data.Configs = append(data.Configs, renderedConfig{
			Name: filepath.Base(cfg),
			Page: page,
		})
	}

	out := filepath.Join(diffRoot, SummaryFileName)
	f, err := os.Create(out)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	if err := summaryTemplate.Execute(f, data); err != nil {
		return "", fmt.Errorf("failed to render summary: %w", err)
	}
	return out, nil
}

// dedupe removes duplicate paths preserving first-seen order.
func dedupe(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	var out []string
	for _, p := range paths {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// summaryTemplate is the top-level report page. Plain HTML with inline
// styles so the page opens correctly from the filesystem with no assets.
var summaryTemplate = template.Must(template.New("summary").Parse(`<!DOCTYPE html>
<html>
<head>
<title>Regression diff summary</title>
<style>
body { font-family: sans-serif; margin: 2em; }
.added { color: #1a7f37; }
.removed { color: #cf222e; }
.zero { color: #777; }
td, th { padding: 2px 10px; text-align: left; }
</style>
</head>
<body>
<h1>Regression diff summary</h1>
<p>run {{.RunID}}</p>
{{if .Base}}<p><b>base</b>: {{.Base.Branch}} @ {{.Base.Hash}} - {{.Base.Subject}} ({{.Base.Timestamp}})</p>{{end}}
<p><b>patch</b>: {{.Patch.Branch}} @ {{.Patch.Hash}} - {{.Patch.Subject}} ({{.Patch.Timestamp}})</p>
<p>total: {{.TotalDiff}} (<span class="added">+{{.TotalAdded}}</span> / <span class="removed">&minus;{{.TotalRemoved}}</span>), excludes {{if .AllowExcludes}}honored{{else}}ignored{{end}}</p>
{{if .Configs}}<p>configs:{{range .Configs}} <a href="{{.Page}}">{{.Name}}</a>{{end}}</p>{{end}}
{{if .ChartFile}}<p><a href="{{.ChartFile}}">per-project chart</a></p>{{end}}
<table>
<tr><th>project</th><th>diffs</th></tr>
{{range .Projects}}<tr>
<td><a href="{{.Name}}/index.html">{{.Name}}</a></td>
{{if .HasDiff}}<td>{{.Total}} (<span class="added">+{{.Added}}</span> / <span class="removed">&minus;{{.Removed}}</span>)</td>
{{else}}<td class="zero">0</td>{{end}}
</tr>
{{end}}</table>
</body>
</html>
`))
