// Package sourcesel — выбор источника данных по приоритету: сначала primary,
// при недостоверности — secondary, иначе нейтральное значение.
package sourcesel

// Candidate — источник с признаком достоверности на текущем кадре.
type Candidate[T any] struct {
	Name   string
	Data   T
	Usable bool
}

// Election помнит активный источник между кадрами, чтобы сообщать о переключениях.
type Election[T any] struct {
	active  string
	changed bool
}

// Select выбирает первый достоверный источник из primary, затем из secondary.
// Если достоверных нет, возвращает нулевое T и false.
func (e *Election[T]) Select(primary []Candidate[T], secondary ...Candidate[T]) (T, bool) {
	for _, c := range primary {
		if c.Usable {
			return e.pick(c.Name, c.Data, true)
		}
	}
	for _, c := range secondary {
		if c.Usable {
			return e.pick(c.Name, c.Data, true)
		}
	}
	var zero T
	return e.pick("", zero, false)
}

func (e *Election[T]) pick(name string, data T, ok bool) (T, bool) {
	e.changed = name != e.active
	e.active = name
	return data, ok
}

// Active — имя активного источника после Select, пустая строка если нет.
func (e *Election[T]) Active() string { return e.active }

// Changed — активный источник сменился на последнем Select.
func (e *Election[T]) Changed() bool { return e.changed }

func (e *Election[T]) Reset() { e.active, e.changed = "", false }
