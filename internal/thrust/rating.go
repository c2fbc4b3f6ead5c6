package thrust

import "math"

// Состояние ISA.
const (
	isaSeaLevelDegC = 15.0
	isaLapseDegCFt  = 0.0019812
	isaTropoDegC    = -56.5
	isaSeaLevelHPa  = 1013.25
	kelvin          = 273.15
)

// isaTemp — температура МСА на высоте hFt.
func isaTemp(hFt float64) float64 {
	return math.Max(isaSeaLevelDegC-isaLapseDegCFt*hFt, isaTropoDegC)
}

// isaPressure — давление МСА (гПа) в тропосфере.
func isaPressure(hFt float64) float64 {
	return isaSeaLevelHPa * math.Pow(1-6.8756e-6*math.Min(hFt, 36089), 5.2559)
}

// casToMach переводит приборную скорость в число M при давлении pHPa.
func casToMach(casKn, pHPa float64) float64 {
	const k = 2188648.141
	d := pHPa / 1013
	return math.Sqrt(5*math.Pow(math.Pow(casKn*casKn/k+1, 3.5)/d-1/d+1, 0.285714286) - 5)
}

// theta2 — отношение полной температуры к стандартной.
func theta2(mach, tempDegC float64) float64 {
	return (tempDegC + kelvin) / (isaSeaLevelDegC + kelvin) * (1 + 0.2*mach*mach)
}

// row интерполирует строку кривой по высоте, за краями держит крайнюю строку.
func (r *Rating) row(hFt float64) [rowLen]float64 {
	var out [rowLen]float64
	rows := r.Rows
	n := len(rows)
	switch {
	case hFt <= rows[0][colAlt]:
		copy(out[:], rows[0])
		return out
	case hFt >= rows[n-1][colAlt]:
		copy(out[:], rows[n-1])
		return out
	}
	hi := 1
	for hFt >= rows[hi][colAlt] {
		hi++
	}
	lo := rows[hi-1]
	f := (hFt - lo[colAlt]) / (rows[hi][colAlt] - lo[colAlt])
	for c := range out {
		out[c] = lo[c] + (rows[hi][c]-lo[c])*f
	}
	return out
}

func (r *Rating) mach(hFt float64) float64 {
	if r.CasKn == 0 {
		return r.Mach
	}
	cas := r.CasKn
	if r.CasHighKn > 0 && hFt > r.CasHighAbove {
		cas = r.CasHighKn
	}
	m := casToMach(cas, isaPressure(hFt))
	if r.MachMax > 0 {
		m = math.Min(m, r.MachMax)
	}
	return m
}

// Bleeds — активные потребители отбора.
type Bleeds struct {
	Packs   bool
	Nacelle bool
	Wing    bool
}

func (b *BleedParams) total(hFt, tatDegC, cp, lp, flexDegC float64, flexible bool, on Bleeds) float64 {
	var set BleedSet
	high := b.HighAltFt > 0 && hFt >= b.HighAltFt
	switch {
	case flexible && flexDegC > lp:
		set = b.FlexOver
	case high && tatDegC < cp:
		set = b.HighBelow
	case high:
		set = b.HighAbove
	case tatDegC < cp:
		set = b.BelowCorner
	default:
		set = b.AboveCorner
	}
	var n1 float64
	if on.Packs {
		n1 += set.Packs
	}
	if on.Nacelle {
		n1 += set.Nacelle
	}
	if on.Wing {
		n1 += set.Wing
	}
	return n1
}

// N1 — предел оборотов по кривой номинала: до угловой точки CN1 постоянен,
// дальше линейно падает к LP, для FLEX — от LP к CN1 flex при 100 °C.
// Набор поправок на отбор выбирается по TAT относительно угловой точки.
func (r *Rating) N1(hFt, oatDegC, tatDegC, flexDegC float64, on Bleeds) float64 {
	row := r.row(hFt)
	cp, lp := row[colCorner], row[colLimit]
	flat, last, flex := row[colFlat], row[colLast], row[colFlex]

	t := oatDegC
	useFlex := r.Flexible && flexDegC > 0
	if useFlex {
		t = flexDegC
	}
	var cn1 float64
	switch {
	case t <= cp:
		cn1 = flat
	case useFlex && t > lp:
		cn1 = last + (flex-last)*(t-lp)/(100-lp)
	default:
		cn1 = flat + (last-flat)*(t-cp)/(lp-cp)
	}

	bleed := r.Bleed.total(hFt, tatDegC, cp, lp, flexDegC, r.Flexible, on)
	return cn1*math.Sqrt(theta2(r.mach(hFt), oatDegC)) + bleed
}
