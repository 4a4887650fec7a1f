package units

import (
	"math"
	"strconv"
	"strings"
)

const (
	LbPerKg = 2.20462
	KgPerLb = 0.453592
)

// Round1 rounds to one decimal place
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func KgToLb(kg float64) float64 {
	return Round1(kg * LbPerKg)
}

func LbToKg(lb float64) float64 {
	return Round1(lb * KgPerLb)
}

// Format renders a weight with one decimal
func Format(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// WeightPair keeps a kg field and an lb field consistent as either is edited.
// Only the kg value is persisted; lb is for display.
type WeightPair struct {
	kg string
	lb string
}

// SetKg sets the kg text and recomputes lb
func (p *WeightPair) SetKg(s string) {
	v, ok := parse(s)
	if !ok {
		p.Clear()
		return
	}
	p.kg = strings.TrimSpace(s)
	p.lb = Format(KgToLb(v))
}

// SetLb sets the lb text and recomputes kg
func (p *WeightPair) SetLb(s string) {
	v, ok := parse(s)
	if !ok {
		p.Clear()
		return
	}
	p.lb = strings.TrimSpace(s)
	p.kg = Format(LbToKg(v))
}

func (p *WeightPair) Clear() {
	p.kg = ""
	p.lb = ""
}

func (p WeightPair) KgText() string { return p.kg }
func (p WeightPair) LbText() string { return p.lb }

// Kg returns the value to persist. ok is false when the field is empty.
func (p WeightPair) Kg() (float64, bool) {
	return parse(p.kg)
}

func parse(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
