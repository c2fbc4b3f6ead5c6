package block

// Vote3 — медиана трёх кандидатов (голосование по среднему значению).
func Vote3(a, b, c float64) float64 {
	if a < b {
		if b < c {
			return b
		} else if a < c {
			return c
		}
		return a
	}
	if a < c {
		return a
	} else if b < c {
		return c
	}
	return b
}
