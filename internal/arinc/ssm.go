// Package arinc — слова шины ARINC-429: матрица знака/состояния (SSM), данные,
// дискретные слова и кадр последовательного адаптера.
package arinc

// SSM — Sign/Status Matrix слова (как в BNR-словах ARINC-429).
type SSM uint32

const (
	FailureWarning SSM = iota
	NoComputedData
	FunctionalTest
	NormalOperation
)

func (s SSM) String() string {
	switch s {
	case FailureWarning:
		return "failure_warning"
	case NoComputedData:
		return "no_computed_data"
	case FunctionalTest:
		return "functional_test"
	case NormalOperation:
		return "normal_operation"
	default:
		return "unknown"
	}
}

// IsUsable возвращает true, если данным можно доверять.
func (s SSM) IsUsable() bool {
	return s == NormalOperation
}

// IsFailed — слово помечено как отказ (данные недостоверны совсем).
func (s SSM) IsFailed() bool {
	return s == FailureWarning
}
