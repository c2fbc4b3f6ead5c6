package bus

import (
	"sort"
	"sync"

	"github.com/iancoleman/orderedmap"

	"github.com/flybywiresim/aircraft-sub011/internal/arinc"
)

// Memory — шина в памяти процесса. Безопасна для записи из горутины
// приёмника, пока кадр читает.
type Memory struct {
	mu     sync.RWMutex
	values map[string]float64
	words  map[string]arinc.Word
}

func NewMemory() *Memory {
	return &Memory{
		values: make(map[string]float64),
		words:  make(map[string]arinc.Word),
	}
}

func (m *Memory) Value(name string) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[name]
}

func (m *Memory) ValueIndexed(name string, i int) float64 {
	return m.Value(Indexed(name, i))
}

// Word возвращает слово; незаписанное слово имеет SSM FailureWarning (нулевое значение).
func (m *Memory) Word(name string) arinc.Word {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.words[name]
}

func (m *Memory) Set(name string, v float64) {
	m.mu.Lock()
	m.values[name] = v
	m.mu.Unlock()
}

func (m *Memory) SetIndexed(name string, i int, v float64) {
	m.Set(Indexed(name, i), v)
}

func (m *Memory) SetWord(name string, w arinc.Word) {
	m.mu.Lock()
	m.words[name] = w
	m.mu.Unlock()
}

// SetBool — дискрет как 0/1.
func (m *Memory) SetBool(name string, b bool) {
	v := 0.0
	if b {
		v = 1
	}
	m.Set(name, v)
}

// Snapshot — копия шины с отсортированными именами: сначала значения,
// затем слова (как {"ssm": ..., "data": ...}).
func (m *Memory) Snapshot() *orderedmap.OrderedMap {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := orderedmap.New()
	for _, k := range sortedKeys(m.values) {
		out.Set(k, m.values[k])
	}
	for _, k := range sortedKeys(m.words) {
		w := m.words[k]
		o := orderedmap.New()
		o.Set("ssm", w.SSM.String())
		o.Set("data", w.Data)
		out.Set(k, o)
	}
	return out
}

func (m *Memory) Close() error { return nil }

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
