package arinc

import (
	"fmt"

	bugserial "go.bug.st/serial"
)

// ListPorts возвращает последовательные порты системы (для выбора адаптера).
func ListPorts() ([]string, error) {
	ports, err := bugserial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("list serial ports: %w", err)
	}
	return ports, nil
}
