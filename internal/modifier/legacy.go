package modifier

import (
	"strconv"
	"strings"
	"unicode"
)

type tokenKind uint8

const (
	tokWord tokenKind = iota
	tokNumber
	tokSymbol
)

type token struct {
	kind tokenKind
	text string
	num  float64
}

// lex splits an option line into words, numbers and the symbols + % : . -
// Everything else (spaces, commas, brackets) separates tokens.
func lex(line string) []token {
	var (
		toks []token
		buf  strings.Builder
		kind tokenKind
	)
	flush := func() {
		if buf.Len() == 0 {
			return
		}
		t := token{kind: kind, text: buf.String()}
		if kind == tokNumber {
			t.num, _ = strconv.ParseFloat(t.text, 64)
		}
		toks = append(toks, t)
		buf.Reset()
	}

	runes := []rune(line)
	for i, r := range runes {
		switch {
		case unicode.IsDigit(r):
			if buf.Len() > 0 && kind != tokNumber {
				flush()
			}
			kind = tokNumber
			buf.WriteRune(r)
		case r == '.' && kind == tokNumber && buf.Len() > 0 && i+1 < len(runes) && unicode.IsDigit(runes[i+1]):
			buf.WriteRune(r)
		case unicode.IsLetter(r):
			if buf.Len() > 0 && kind != tokWord {
				flush()
			}
			kind = tokWord
			buf.WriteRune(r)
		case r == '+' || r == '%' || r == ':' || r == '.' || r == '-':
			flush()
			toks = append(toks, token{kind: tokSymbol, text: string(r)})
		default:
			flush()
		}
	}
	flush()
	return toks
}

type elemKind uint8

const (
	elWord   elemKind = iota // exact word, case-insensitive
	elPrefix                 // word starting with one of words (Korean particles attach to nouns)
	elPhrase                 // consecutive words whose concatenation starts with one of words
	elSymbol
	elNumber // captured operand
	elGap    // any tokens, shortest first
)

type elem struct {
	kind  elemKind
	words []string
	sym   string
}

func word(ws ...string) elem   { return elem{kind: elWord, words: ws} }
func prefix(ws ...string) elem { return elem{kind: elPrefix, words: ws} }
func phrase(ws ...string) elem { return elem{kind: elPhrase, words: ws} }
func sym(s string) elem        { return elem{kind: elSymbol, sym: s} }

var (
	num  = elem{kind: elNumber}
	gap  = elem{kind: elGap}
	plus = sym("+")
	pct  = sym("%")
)

func (e elem) accepts(t token) bool {
	switch e.kind {
	case elWord:
		if t.kind != tokWord {
			return false
		}
		for _, w := range e.words {
			if strings.EqualFold(t.text, w) {
				return true
			}
		}
	case elPrefix:
		if t.kind != tokWord {
			return false
		}
		for _, w := range e.words {
			if strings.HasPrefix(strings.ToUpper(t.text), strings.ToUpper(w)) {
				return true
			}
		}
	case elSymbol:
		return t.kind == tokSymbol && t.text == e.sym
	case elNumber:
		return t.kind == tokNumber
	}
	return false
}

// acceptsPhrase joins words from pos until the joined text is at least as
// long as the phrase, so "원거리 물리 데미지" and "원거리물리데미지" match alike.
func (e elem) acceptsPhrase(toks []token, pos int) (int, bool) {
	for _, w := range e.words {
		want := strings.ToUpper(w)
		var joined strings.Builder
		for i := pos; i < len(toks) && toks[i].kind == tokWord; i++ {
			joined.WriteString(strings.ToUpper(toks[i].text))
			if joined.Len() < len(want) {
				continue
			}
			if strings.HasPrefix(joined.String(), want) {
				return i + 1, true
			}
			break
		}
	}
	return pos, false
}

// match reports whether pattern matches toks starting exactly at pos.
// The last captured number is stored in v.
func match(pattern []elem, toks []token, pos int, v *float64) bool {
	if len(pattern) == 0 {
		return true
	}
	e := pattern[0]
	if e.kind == elGap {
		for skip := pos; skip <= len(toks); skip++ {
			if match(pattern[1:], toks, skip, v) {
				return true
			}
		}
		return false
	}
	if e.kind == elPhrase {
		next, ok := e.acceptsPhrase(toks, pos)
		return ok && match(pattern[1:], toks, next, v)
	}
	if pos >= len(toks) || !e.accepts(toks[pos]) {
		return false
	}
	if e.kind == elNumber {
		prev := *v
		*v = toks[pos].num
		if match(pattern[1:], toks, pos+1, v) {
			return true
		}
		*v = prev
		return false
	}
	return match(pattern[1:], toks, pos+1, v)
}

// find searches pattern anywhere in toks.
func find(pattern []elem, toks []token) (float64, bool) {
	for start := range toks {
		var v float64
		if match(pattern, toks, start, &v) {
			return v, true
		}
	}
	return 0, false
}

type optionRule struct {
	name    string
	pattern []elem
	apply   func(src *Source, v float64)
}

// bonusRule builds a rule adding the operand to one Bonus field.
// A nil field consumes the line without recording anything.
func bonusRule(name string, pattern []elem, field func(b *Bonus) *float64) optionRule {
	if field == nil {
		return optionRule{name: name, pattern: pattern}
	}
	return optionRule{
		name:    name,
		pattern: pattern,
		apply:   func(src *Source, v float64) { *field(src.Base) += v },
	}
}

// optionRules is evaluated top to bottom; the first matching rule consumes
// the line. Percent forms precede flat forms of the same stat, trait forms
// (P.ATK, S.MATK) precede plain ATK/MATK.
var optionRules = []optionRule{
	bonusRule("p_atk", []elem{word("P"), sym("."), word("ATK"), plus, num}, func(b *Bonus) *float64 { return &b.PAtk }),
	bonusRule("s_matk", []elem{word("S"), sym("."), word("MATK"), plus, num}, func(b *Bonus) *float64 { return &b.SMatk }),

	bonusRule("atk_percent", []elem{word("ATK"), plus, num, pct}, func(b *Bonus) *float64 { return &b.AtkPercent }),
	bonusRule("matk_percent", []elem{word("MATK"), plus, num, pct}, func(b *Bonus) *float64 { return &b.MatkPercent }),
	bonusRule("maxhp_percent", []elem{word("MaxHP", "HP"), plus, num, pct}, func(b *Bonus) *float64 { return &b.MaxHPPercent }),
	bonusRule("maxsp_percent", []elem{word("MaxSP", "SP"), plus, num, pct}, func(b *Bonus) *float64 { return &b.MaxSPPercent }),
	bonusRule("aspd_percent", []elem{word("ASPD"), plus, num, pct}, nil),

	bonusRule("range_dmg", []elem{phrase("원거리물리데미지"), gap, num, pct}, func(b *Bonus) *float64 { return &b.RangeDmg }),
	bonusRule("melee_dmg", []elem{phrase("근접물리데미지"), gap, num, pct}, func(b *Bonus) *float64 { return &b.MeleeDmg }),
	bonusRule("size_all_dmg", []elem{phrase("모든크기", "전체크기"), gap, num, pct}, func(b *Bonus) *float64 { return &b.SizeAllDmg }),
	bonusRule("race_all_dmg", []elem{phrase("모든종족", "전체종족"), gap, num, pct}, func(b *Bonus) *float64 { return &b.RaceAllDmg }),
	bonusRule("ele_all_dmg", []elem{phrase("모든속성", "전체속성"), gap, num, pct}, func(b *Bonus) *float64 { return &b.EleAllDmg }),
	bonusRule("ignore_def", []elem{prefix("방어력"), gap, prefix("무시"), num, pct}, func(b *Bonus) *float64 { return &b.IgnoreDef }),
	bonusRule("cri_dmg", []elem{prefix("크리"), gap, prefix("데미지"), num, pct}, func(b *Bonus) *float64 { return &b.CriDmg }),
	bonusRule("boss_dmg", []elem{prefix("보스"), gap, num, pct}, func(b *Bonus) *float64 { return &b.BossDmg }),
	bonusRule("cooldown_reduction", []elem{prefix("재사용", "쿨타임"), gap, num, pct, gap, prefix("감소")}, func(b *Bonus) *float64 { return &b.CooldownReduction }),

	bonusRule("str", []elem{word("STR"), plus, num}, func(b *Bonus) *float64 { return &b.Str }),
	bonusRule("agi", []elem{word("AGI"), plus, num}, func(b *Bonus) *float64 { return &b.Agi }),
	bonusRule("vit", []elem{word("VIT"), plus, num}, func(b *Bonus) *float64 { return &b.Vit }),
	bonusRule("int", []elem{word("INT"), plus, num}, func(b *Bonus) *float64 { return &b.Int }),
	bonusRule("dex", []elem{word("DEX"), plus, num}, func(b *Bonus) *float64 { return &b.Dex }),
	bonusRule("luk", []elem{word("LUK"), plus, num}, func(b *Bonus) *float64 { return &b.Luk }),
	bonusRule("atk", []elem{word("ATK"), plus, num}, func(b *Bonus) *float64 { return &b.Atk }),
	bonusRule("matk", []elem{word("MATK"), plus, num}, func(b *Bonus) *float64 { return &b.Matk }),
	bonusRule("def", []elem{word("DEF"), plus, num}, func(b *Bonus) *float64 { return &b.Def }),
	bonusRule("mdef", []elem{word("MDEF"), plus, num}, func(b *Bonus) *float64 { return &b.Mdef }),
	bonusRule("hit", []elem{word("HIT"), plus, num}, func(b *Bonus) *float64 { return &b.Hit }),
	bonusRule("flee", []elem{word("FLEE"), plus, num}, func(b *Bonus) *float64 { return &b.Flee }),
	bonusRule("cri", []elem{word("CRI", "Critical"), plus, num}, func(b *Bonus) *float64 { return &b.Cri }),
	bonusRule("aspd", []elem{word("ASPD"), plus, num}, func(b *Bonus) *float64 { return &b.Aspd }),
	bonusRule("maxhp", []elem{word("MaxHP", "HP"), plus, num}, func(b *Bonus) *float64 { return &b.MaxHP }),
	bonusRule("maxsp", []elem{word("MaxSP", "SP"), plus, num}, func(b *Bonus) *float64 { return &b.MaxSP }),

	{
		name:    "weapon_atk",
		pattern: []elem{word("공격"), sym(":"), num},
		apply: func(src *Source, v float64) {
			weaponHint(src).Atk = int(v)
		},
	},
	{
		name:    "weapon_level",
		pattern: []elem{word("무기레벨"), sym(":"), num},
		apply: func(src *Source, v float64) {
			weaponHint(src).Level = int(v)
		},
	},
}

func weaponHint(src *Source) *WeaponHint {
	if src.Weapon == nil {
		src.Weapon = &WeaponHint{}
	}
	return src.Weapon
}

// ParseOptions runs the legacy option tokenizer over free-text lines.
// Each line contributes at most one field; unrecognized lines are ignored.
func ParseOptions(lines []string) *Source {
	src := &Source{Base: &Bonus{}}
	for _, line := range lines {
		toks := lex(line)
		if len(toks) == 0 {
			continue
		}
		for _, r := range optionRules {
			v, ok := find(r.pattern, toks)
			if !ok {
				continue
			}
			if r.apply != nil {
				r.apply(src, v)
			}
			break
		}
	}
	return src
}
