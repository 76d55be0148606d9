package analytics

// DefaultPageStep incremento de "ver más".
const DefaultPageStep = 5

// Window devuelve los primeros visible elementos de una lista ya ordenada.
func Window[T any](items []T, visible int) []T {
	if visible <= 0 {
		return items[:0:0]
	}
	return items[:min(visible, len(items))]
}

// NextVisible amplía la cantidad visible en step, sin pasar de total.
func NextVisible(current, step, total int) int {
	if step <= 0 {
		step = DefaultPageStep
	}
	current = max(current, 0)
	return min(current+step, max(total, 0))
}
