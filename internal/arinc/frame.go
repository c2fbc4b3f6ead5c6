package arinc

import (
	"encoding/binary"
	"errors"
)

// Sync-байты кадра адаптера ARINC-429 → USB/UART.
const (
	Sync1 = 0xA4
	Sync2 = 0x29
)

// HeaderSize — sync(2) + канал(1) + число слов(1).
const HeaderSize = 4

// MaxWords — предел слов в одном кадре (поле count — один байт).
const MaxWords = 255

var (
	ErrShortFrame = errors.New("arinc: short frame")
	ErrChecksum   = errors.New("arinc: checksum mismatch")
	ErrSync       = errors.New("arinc: bad sync")
)

// Frame — пачка слов, принятых одним приёмным каналом адаптера.
type Frame struct {
	Channel uint8
	Words   []Raw
}

// Checksum — 8-битный Fletcher (тот же, что у UBX), без sync-байтов.
func Checksum(data []byte) (ckA, ckB uint8) {
	for _, b := range data {
		ckA += b
		ckB += ckA
	}
	return ckA, ckB
}

// EncodeFrame собирает кадр: заголовок + слова (LE) + контрольная сумма.
func EncodeFrame(f Frame) []byte {
	words := f.Words
	if len(words) > MaxWords {
		words = words[:MaxWords]
	}
	buf := make([]byte, 0, HeaderSize+4*len(words)+2)
	buf = append(buf, Sync1, Sync2, f.Channel, uint8(len(words)))
	for _, w := range words {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(w))
	}
	ckA, ckB := Checksum(buf[2:])
	return append(buf, ckA, ckB)
}

// DecodeFrame разбирает полный кадр, проверяя sync, длину и контрольную сумму.
func DecodeFrame(buf []byte) (Frame, error) {
	if len(buf) < HeaderSize+2 {
		return Frame{}, ErrShortFrame
	}
	if buf[0] != Sync1 || buf[1] != Sync2 {
		return Frame{}, ErrSync
	}
	n := int(buf[3])
	if len(buf) < HeaderSize+4*n+2 {
		return Frame{}, ErrShortFrame
	}
	buf = buf[:HeaderSize+4*n+2]
	ckA, ckB := Checksum(buf[2 : len(buf)-2])
	if buf[len(buf)-2] != ckA || buf[len(buf)-1] != ckB {
		return Frame{}, ErrChecksum
	}
	f := Frame{Channel: buf[2], Words: make([]Raw, n)}
	for i := range f.Words {
		f.Words[i] = Raw(binary.LittleEndian.Uint32(buf[HeaderSize+4*i:]))
	}
	return f, nil
}
