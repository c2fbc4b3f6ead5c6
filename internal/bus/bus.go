// Package bus — именованные входы и выходы вычислителей: память процесса,
// адаптер ARINC-429 на последовательном порту и SimConnect.
package bus

import (
	"errors"
	"fmt"

	"github.com/flybywiresim/aircraft-sub011/internal/arinc"
)

// ErrUnsupported — шина недоступна на этой платформе.
var ErrUnsupported = errors.New("bus: not supported on this platform")

// Reader — чтение входов кадра. Отсутствующее имя читается как 0 / слово в FailureWarning.
type Reader interface {
	Value(name string) float64
	ValueIndexed(name string, i int) float64
	Word(name string) arinc.Word
}

// Writer — запись выходов; вызывается один раз за кадр после Step.
type Writer interface {
	Set(name string, v float64)
}

// Bus — шина кадра целиком.
type Bus interface {
	Reader
	Writer
	SetWord(name string, w arinc.Word)
	Close() error
}

// Indexed — имя элемента массива, как у переменных симулятора: "n1:2".
func Indexed(name string, i int) string {
	return fmt.Sprintf("%s:%d", name, i)
}
