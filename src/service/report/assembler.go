package report

import (
	"sort"
	"time"

	"github.com/Vaibhav17t/codebase-review/src/model"
)

// Group is one finding kind with its displayed instances. Top is
// capped for presentation; Total is the true count.
type Group struct {
	Kind  model.Kind      `json:"kind"`
	Total int             `json:"total"`
	Top   []model.Finding `json:"top"`
}

// Snapshot is the assembled, presentation-independent analysis result.
// Console and document renderers both consume it; it is also the JSON
// export shape.
type Snapshot struct {
	ProjectName    string                 `json:"project_name"`
	GeneratedAt    time.Time              `json:"generated_at"`
	AnalysisDepth  string                 `json:"analysis_depth"`
	Summary        string                 `json:"summary"`
	HealthScore    int                    `json:"health_score"`
	HealthStatus   string                 `json:"health_status"`
	SeverityCounts map[model.Severity]int `json:"severity_counts"`
	Groups         []Group                `json:"groups"`
	Findings       []model.Finding        `json:"findings"`
	Metrics        []model.DebtMetric     `json:"metrics"`
}

// Assemble groups, sorts and summarizes findings and metrics for
// presentation. Groups are ordered by kind; within a group findings
// are ordered by descending severity and truncated to groupCap while
// Total keeps the true count.
func Assemble(projectName, depth string, findings []model.Finding, metrics []model.DebtMetric, groupCap int) *Snapshot {
	if groupCap < 1 {
		groupCap = 5
	}

	counts := make(map[model.Severity]int, len(model.SeverityOrder))
	for _, sev := range model.SeverityOrder {
		counts[sev] = 0
	}

	byKind := make(map[model.Kind][]model.Finding)
	for _, f := range findings {
		counts[f.Severity]++
		byKind[f.Kind] = append(byKind[f.Kind], f)
	}

	kinds := make([]model.Kind, 0, len(byKind))
	for kind := range byKind {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	groups := make([]Group, 0, len(kinds))
	for _, kind := range kinds {
		members := byKind[kind]
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].Severity.Rank() > members[j].Severity.Rank()
		})

		top := members
		if len(top) > groupCap {
			top = top[:groupCap]
		}

		groups = append(groups, Group{
			Kind:  kind,
			Total: len(members),
			Top:   top,
		})
	}

	score := HealthScore(findings)

	return &Snapshot{
		ProjectName:    projectName,
		GeneratedAt:    time.Now().UTC(),
		AnalysisDepth:  depth,
		HealthScore:    score,
		HealthStatus:   HealthStatus(score),
		SeverityCounts: counts,
		Groups:         groups,
		Findings:       findings,
		Metrics:        metrics,
	}
}

// TotalFindings returns the true finding count
func (s *Snapshot) TotalFindings() int {
	return len(s.Findings)
}
