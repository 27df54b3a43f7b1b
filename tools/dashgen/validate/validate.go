// Package validate checks generated dashboards and rules: every PromQL
// expression must parse and every metric it selects must be known.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/flight-price-tracker/tools/dashgen/rules"
)

// Result collects validation errors and warnings.
type Result struct {
	Errors   []error
	Warnings []string
}

// Ok reports whether validation produced no errors.
func (r *Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Errorf(format, args...))
}

// Dashboard validates every Prometheus target in every panel, including
// panels nested in rows.
func Dashboard(d dashboard.Dashboard, known map[string]bool) *Result {
	res := &Result{}
	for _, p := range d.Panels {
		switch {
		case p.Panel != nil:
			checkPanel(res, p.Panel, known)
		case p.RowPanel != nil:
			for i := range p.RowPanel.Panels {
				checkPanel(res, &p.RowPanel.Panels[i], known)
			}
		}
	}
	return res
}

// Rules validates every rule expression in a PrometheusRule.
func Rules(cr rules.PrometheusRule, known map[string]bool) *Result {
	res := &Result{}
	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			name := r.Record
			if name == "" {
				name = r.Alert
			}
			if name == "" {
				res.errorf("group %s: rule has neither record nor alert", g.Name)
				continue
			}
			checkExpr(res, fmt.Sprintf("%s/%s", g.Name, name), r.Expr, known)
		}
	}
	return res
}

func checkPanel(res *Result, p *dashboard.Panel, known map[string]bool) {
	title := "untitled"
	if p.Title != nil {
		title = *p.Title
	}
	if len(p.Targets) == 0 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("panel %q has no targets", title))
		return
	}
	for _, t := range p.Targets {
		expr, ok := targetExpr(t)
		if !ok {
			res.Warnings = append(res.Warnings, fmt.Sprintf("panel %q has a non-prometheus target", title))
			continue
		}
		checkExpr(res, fmt.Sprintf("panel %q", title), expr, known)
	}
}

func checkExpr(res *Result, where, expr string, known map[string]bool) {
	if strings.TrimSpace(expr) == "" {
		res.errorf("%s: empty expression", where)
		return
	}
	node, err := parser.ParseExpr(expr)
	if err != nil {
		res.errorf("%s: parsing %q: %w", where, expr, err)
		return
	}
	for _, name := range MetricNames(node) {
		if !known[baseName(name)] {
			res.errorf("%s: unknown metric %q", where, name)
		}
	}
}

// targetExpr extracts the PromQL expression from a panel target. Targets
// are variant types, so the expression is read back from their JSON form.
func targetExpr(t any) (string, bool) {
	data, err := json.Marshal(t)
	if err != nil {
		return "", false
	}
	var q struct {
		Expr *string `json:"expr"`
	}
	if err := json.Unmarshal(data, &q); err != nil || q.Expr == nil {
		return "", false
	}
	return *q.Expr, true
}

// MetricNames returns the metric names selected anywhere in an expression.
func MetricNames(node parser.Node) []string {
	var names []string
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		if vs, ok := n.(*parser.VectorSelector); ok && vs.Name != "" {
			names = append(names, vs.Name)
		}
		return nil
	})
	return names
}

// baseName strips the series suffixes a histogram exports.
func baseName(name string) string {
	for _, suffix := range []string{"_bucket", "_sum", "_count"} {
		if base, ok := strings.CutSuffix(name, suffix); ok {
			return base
		}
	}
	return name
}
