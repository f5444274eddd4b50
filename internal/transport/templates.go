package transport

import (
	"embed"
	"fmt"
	"html/template"
	"net/url"

	"github.com/Masterminds/sprig/v3"
	"github.com/goodnatureofminers/workernode-dashboard/internal/dashboard"
	"github.com/goodnatureofminers/workernode-dashboard/internal/estimator"
)

//go:embed templates/*.html
var templateFS embed.FS

func templateFuncs() template.FuncMap {
	fm := template.FuncMap{}
	for k, v := range sprig.FuncMap() {
		fm[k] = v
	}

	custom := template.FuncMap{
		"visible": func(columns map[string]bool, name string) bool {
			v, ok := columns[name]
			return !ok || v
		},
		"remaining": func(p estimator.Progress) string {
			return fmt.Sprintf("%d hours, %d minutes", p.RemainingHours, p.RemainingMinutes)
		},
		"sortLink": sortLink,
		"barWidth": func(count, total int) float64 {
			if total == 0 {
				return 0
			}
			return float64(count) / float64(total) * 100
		},
		"maxCount": func(h estimator.Histogram) int {
			m := 0
			for _, b := range h {
				m = max(m, b.Count)
			}
			return m
		},
		"maxLocation": func(l []dashboard.LocationCount) int {
			if len(l) == 0 {
				return 0
			}
			return l[0].Count
		},
	}
	for k, v := range custom {
		fm[k] = v
	}
	return fm
}

// sortLink builds the query string that orders the table by key, flipping the
// direction when the table is already ordered by it.
func sortLink(q dashboard.Query, key string) string {
	values := url.Values{}
	if q.Search != "" {
		values.Set("q", q.Search)
	}
	if q.Location != "" {
		values.Set("location", q.Location)
	}
	if q.Status != nil {
		values.Set("status", q.Status.String())
	}
	if q.FavoritesOnly {
		values.Set("favorites", "true")
	}
	values.Set("sort", key)
	if string(q.Sort) == key {
		order := dashboard.OrderDesc
		if q.Order == dashboard.OrderDesc {
			order = dashboard.OrderAsc
		}
		values.Set("order", string(order))
	}
	return "?" + values.Encode()
}

func parseTemplates() (*template.Template, error) {
	t, err := template.New("").Funcs(templateFuncs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}
