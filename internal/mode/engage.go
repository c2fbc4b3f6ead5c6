package mode

// Engagement — результат арбитража одной функции FAC.
type Engagement struct {
	CanEngage   bool
	HasPriority bool
	Engaged     bool
}

// Arbitrate: функция включается, если она исправна, FAC включён кнопкой и
// либо это основной блок, либо противоположный блок её не держит.
func Arbitrate(healthy, masterEngage, primary, oppEngaged bool) Engagement {
	e := Engagement{
		CanEngage:   healthy && masterEngage,
		HasPriority: primary || !oppEngaged,
	}
	e.Engaged = e.CanEngage && e.HasPriority
	return e
}
