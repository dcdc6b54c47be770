package pricing

import (
	"fmt"
	"strconv"
	"strings"
)

// PaperFamily groups paper stocks by surcharge rule.
type PaperFamily int

const (
	PaperOther PaperFamily = iota
	PaperOffset
	PaperCoated
)

// PaperFinish is the surface of a coated stock.
type PaperFinish int

const (
	FinishMatte PaperFinish = iota
	FinishGloss
)

// Paper is a paper stock resolved from its code.
type Paper struct {
	Family   PaperFamily
	Grammage int
	Finish   PaperFinish
	Code     string
}

var (
	PaperOffset80  = Paper{Family: PaperOffset, Grammage: 80, Code: "offset-80"}
	PaperOffset100 = Paper{Family: PaperOffset, Grammage: 100, Code: "offset-100"}
)

// CoatedPaper builds a coated stock of the given grammage and finish.
func CoatedPaper(grammage int, finish PaperFinish) Paper {
	suffix := "mat"
	if finish == FinishGloss {
		suffix = "brillant"
	}
	return Paper{
		Family:   PaperCoated,
		Grammage: grammage,
		Finish:   finish,
		Code:     fmt.Sprintf("couche-%d-%s", grammage, suffix),
	}
}

// ParsePaper resolves a paper code such as "offset-80", "couche-135-mat" or
// "coated-250-gloss". Codes that match no known family resolve to PaperOther
// and keep the raw code.
func ParsePaper(code string) Paper {
	code = strings.TrimSpace(code)
	lower := strings.ToLower(code)

	switch lower {
	case "offset-80":
		return PaperOffset80
	case "offset-100":
		return PaperOffset100
	}

	parts := strings.Split(lower, "-")
	if len(parts) >= 2 && (parts[0] == "couche" || parts[0] == "coated") {
		g, ok := leadingInt(parts[1])
		if !ok {
			return Paper{Family: PaperOther, Code: code}
		}
		finish := FinishGloss
		if len(parts) >= 3 && (parts[2] == "mat" || parts[2] == "matte") {
			finish = FinishMatte
		}
		return Paper{Family: PaperCoated, Grammage: g, Finish: finish, Code: code}
	}

	return Paper{Family: PaperOther, Code: code}
}

// leadingInt parses the leading decimal digits of s.
func leadingInt(s string) (int, bool) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// DisplayName returns the paper name printed on quotes.
func (p Paper) DisplayName() string {
	switch p.Family {
	case PaperOffset:
		if p.Grammage == 80 {
			return "Offset 80gr Standard"
		}
		return "Offset 100gr Premium"
	case PaperCoated:
		finish := "Brillant"
		if p.Finish == FinishMatte {
			finish = "Mat"
		}
		return fmt.Sprintf("Couché %dgr %s", p.Grammage, finish)
	}
	return p.Code
}

// Surcharge returns the extra cost of printing sheets on this stock.
func (p Paper) Surcharge(sheets int, fixed FixedCosts) float64 {
	if sheets <= 0 {
		return 0
	}
	switch p.Family {
	case PaperOffset:
		if p.Grammage == 100 {
			return float64(sheets) * fixed.Offset100Rate
		}
	case PaperCoated:
		if p.Grammage > 90 {
			return float64(sheets) * float64(p.Grammage-90) * fixed.CoatedGramRate
		}
	}
	return 0
}

// PaperSurcharge is a convenience wrapper that parses the code first.
func PaperSurcharge(code string, sheets int, fixed FixedCosts) float64 {
	if code == "" {
		return 0
	}
	return ParsePaper(code).Surcharge(sheets, fixed)
}

// PaperDisplayName resolves a code to its display name.
func PaperDisplayName(code string) string {
	if code == "" {
		return ""
	}
	return ParsePaper(code).DisplayName()
}
