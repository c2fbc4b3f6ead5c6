package arinc

import "math"

// Word — декодированное слово шины: состояние и значение в инженерных единицах.
type Word struct {
	SSM  SSM     `msgpack:"s"`
	Data float64 `msgpack:"d"`
}

// NewWord — удобный конструктор.
func NewWord(ssm SSM, data float64) Word { return Word{SSM: ssm, Data: data} }

// Valid — слово в нормальной работе.
func (w Word) Valid() bool { return w.SSM.IsUsable() }

// ValueOr возвращает Data, если слово валидно, иначе def.
func (w Word) ValueOr(def float64) float64 {
	if w.Valid() {
		return w.Data
	}
	return def
}

// Bit возвращает бит с номером bit (нумерация с 1) дискретного слова.
func (w Word) Bit(bit int) bool {
	return (uint32(math.Round(w.Data))>>(bit-1))&1 != 0
}

// BitValid — бит установлен и слово валидно.
func (w Word) BitValid(bit int) bool {
	return w.Valid() && w.Bit(bit)
}

// DiscreteBits — количество бит в поле данных дискретного слова (11..29).
const DiscreteBits = 19

// Discrete упаковывает до 19 дискретов в поле данных: bits[i] попадает в бит i+11.
func Discrete(ssm SSM, bits ...bool) Word {
	var out uint32
	for i, b := range bits {
		if i >= DiscreteBits {
			break
		}
		if b {
			out |= 1 << (i + 10)
		}
	}
	return Word{SSM: ssm, Data: float64(out)}
}

// Raw — 32-битное слово как на проводе: метка 8 бит, SDI 2, данные 19, SSM 2, чётность 1.
type Raw uint32

// Pack собирает слово; data — 19-битное поле (дополнительный код для BNR).
func Pack(label uint8, sdi uint8, data int32, ssm SSM) Raw {
	v := uint32(label) |
		uint32(sdi&0x3)<<8 |
		(uint32(data)&0x7ffff)<<10 |
		uint32(ssm&0x3)<<29
	if parity(v)%2 == 0 {
		v |= 1 << 31
	}
	return Raw(v)
}

func parity(v uint32) int {
	n := 0
	for v != 0 {
		n += int(v & 1)
		v >>= 1
	}
	return n
}

func (r Raw) Label() uint8 { return uint8(r) }
func (r Raw) SDI() uint8   { return uint8(r>>8) & 0x3 }
func (r Raw) SSM() SSM     { return SSM(r>>29) & 0x3 }

// Data возвращает 19-битное поле данных с расширением знака.
func (r Raw) Data() int32 {
	d := int32(uint32(r)>>10) & 0x7ffff
	if d&0x40000 != 0 {
		d -= 1 << 19
	}
	return d
}

// ParityOK — нечётная чётность по всем 32 битам.
func (r Raw) ParityOK() bool { return parity(uint32(r))%2 == 1 }

// FromBNR кодирует значение с шагом resolution в BNR-слово.
func FromBNR(label uint8, value, resolution float64, ssm SSM) Raw {
	n := math.Round(value / resolution)
	n = math.Max(math.Min(n, 1<<18-1), -(1 << 18))
	return Pack(label, 0, int32(n), ssm)
}

// Decode переводит сырое слово в Word; resolution == 0 означает дискретное слово.
func (r Raw) Decode(resolution float64) Word {
	if resolution == 0 {
		return Word{SSM: r.SSM(), Data: float64((uint32(r) >> 10 & 0x7ffff) << 10)}
	}
	return Word{SSM: r.SSM(), Data: float64(r.Data()) * resolution}
}

// Raw кодирует слово для передачи; resolution == 0 — дискретное слово.
func (w Word) Raw(label uint8, resolution float64) Raw {
	if resolution == 0 {
		return Pack(label, 0, int32(uint32(math.Round(w.Data))>>10), w.SSM)
	}
	return FromBNR(label, w.Data, resolution, w.SSM)
}
