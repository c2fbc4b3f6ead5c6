package arinc

import (
	"fmt"
	"io"
	"time"

	"github.com/tarm/serial"
)

// Port — последовательный порт адаптера ARINC-429.
type Port struct {
	rw io.ReadWriteCloser
}

// Open открывает последовательный порт адаптера.
func Open(device string, baud int) (*Port, error) {
	c := &serial.Config{
		Name:        device,
		Baud:        baud,
		ReadTimeout: 500 * time.Millisecond,
	}
	p, err := serial.OpenPort(c)
	if err != nil {
		return nil, fmt.Errorf("serial open %s: %w", device, err)
	}
	return &Port{rw: p}, nil
}

// NewPort оборачивает уже открытый поток (тесты, pty, TCP-мост).
func NewPort(rw io.ReadWriteCloser) *Port {
	return &Port{rw: rw}
}

// WriteFrame отправляет кадр на передающий канал адаптера.
func (p *Port) WriteFrame(f Frame) error {
	_, err := p.rw.Write(EncodeFrame(f))
	return err
}

// ReadFrame читает один кадр: ищет sync, затем заголовок, слова и контрольную сумму.
func (p *Port) ReadFrame() (Frame, error) {
	var win [2]byte
	var b [1]byte
	for {
		if _, err := io.ReadFull(p.rw, b[:]); err != nil {
			return Frame{}, err
		}
		win[0], win[1] = win[1], b[0]
		if win[0] == Sync1 && win[1] == Sync2 {
			break
		}
	}
	hdr := make([]byte, 2)
	if _, err := io.ReadFull(p.rw, hdr); err != nil {
		return Frame{}, err
	}
	rest := make([]byte, 4*int(hdr[1])+2)
	if _, err := io.ReadFull(p.rw, rest); err != nil {
		return Frame{}, err
	}
	buf := make([]byte, 0, HeaderSize+len(rest))
	buf = append(buf, Sync1, Sync2)
	buf = append(buf, hdr...)
	buf = append(buf, rest...)
	return DecodeFrame(buf)
}

// Close закрывает порт
func (p *Port) Close() error {
	if p.rw == nil {
		return nil
	}
	return p.rw.Close()
}
