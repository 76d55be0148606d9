package analytics

import (
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/entity"
)

const (
	DefaultSnapshotLimit = 8
	DefaultNameBudget    = 15
	ellipsis             = "..."
)

// SnapshotOptions límites del snapshot. Valores <= 0 usan los defaults.
type SnapshotOptions struct {
	Limit      int
	NameBudget int
}

// StockEntry fila del snapshot de stock actual.
type StockEntry struct {
	ProductID    string
	Name         string
	FullName     string
	CurrentStock int64
}

// Snapshot cruza los productos (en el orden del store) con el stock actual.
// Un producto sin fila de stock cuenta como 0. No ordena por magnitud.
func Snapshot(products []entity.Product, levels []entity.StockLevel, opts SnapshotOptions) []StockEntry {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultSnapshotLimit
	}
	budget := opts.NameBudget
	if budget <= 0 {
		budget = DefaultNameBudget
	}

	stock := make(map[string]int64, len(levels))
	for _, lv := range levels {
		if _, seen := stock[lv.ProductID]; !seen {
			stock[lv.ProductID] = lv.CurrentStock
		}
	}

	n := min(limit, len(products))
	out := make([]StockEntry, 0, n)
	for _, p := range products[:n] {
		out = append(out, StockEntry{
			ProductID:    p.ID,
			Name:         TruncateName(p.Name, budget),
			FullName:     p.Name,
			CurrentStock: stock[p.ID],
		})
	}
	return out
}

// TruncateName recorta name a budget runas y agrega "..." si lo excede.
func TruncateName(name string, budget int) string {
	if budget <= 0 {
		return name
	}
	runes := []rune(name)
	if len(runes) <= budget {
		return name
	}
	return string(runes[:budget]) + ellipsis
}
