package services

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/atendezap/atendezap/modules/catalog/domain/entities/product"
)

// MaxRelatedProducts caps the related list; discovery order is preserved,
// first found first kept.
const MaxRelatedProducts = 5

// codePattern matches product-code candidates: a run of 3+ alphanumerics,
// optionally followed by a hyphen and more alphanumerics. Deliberately
// permissive; ordinary words also match and are simply discarded when no
// product carries that code.
var codePattern = regexp.MustCompile(`\b[a-zA-Z0-9]{3,}(?:-[a-zA-Z0-9]+)?\b`)

// stopwords are common Portuguese filler words that never count as keywords.
var stopwords = map[string]struct{}{
	"que": {}, "com": {}, "para": {}, "tem": {}, "quero": {},
	"gostaria": {}, "você": {}, "voce": {}, "ola": {}, "olá": {},
	"bom": {}, "dia": {}, "boa": {}, "tarde": {}, "noite": {},
	"por": {}, "favor": {}, "uma": {}, "preciso": {}, "saber": {},
	"qual": {}, "quais": {}, "sobre": {}, "mais": {}, "como": {},
	"meu": {}, "minha": {}, "seu": {}, "sua": {}, "dos": {}, "das": {},
	"nos": {}, "nas": {}, "pelo": {}, "pela": {}, "essa": {}, "esse": {},
	"esta": {}, "este": {}, "isso": {}, "tenho": {}, "queria": {},
}

// Resolution is the outcome of matching a customer message against the
// tenant's catalog.
type Resolution struct {
	Focused product.Product
	Related []product.Product
}

func (r Resolution) Empty() bool {
	return r.Focused == nil && len(r.Related) == 0
}

type ProductResolver struct{}

func NewProductResolver() *ProductResolver {
	return &ProductResolver{}
}

// Resolve finds at most one focused product referenced by code and up to
// MaxRelatedProducts related products matched by keyword. Code resolution is
// first-match-wins over candidates in order of appearance; keyword matching
// is exact case-insensitive substring, no stemming.
func (r *ProductResolver) Resolve(message string, products []product.Product) Resolution {
	resolution := Resolution{}
	seen := make(map[uuid.UUID]struct{})

	if focused := r.resolveByCode(message, products); focused != nil {
		resolution.Focused = focused
		seen[focused.ID()] = struct{}{}
	}

	for _, token := range Keywords(message) {
		if len(resolution.Related) >= MaxRelatedProducts {
			break
		}
		for _, p := range products {
			if len(resolution.Related) >= MaxRelatedProducts {
				break
			}
			if _, ok := seen[p.ID()]; ok {
				continue
			}
			if productMatchesToken(p, token) {
				resolution.Related = append(resolution.Related, p)
				seen[p.ID()] = struct{}{}
			}
		}
	}

	return resolution
}

func (r *ProductResolver) resolveByCode(message string, products []product.Product) product.Product {
	for _, candidate := range codePattern.FindAllString(message, -1) {
		code := strings.ToUpper(candidate)
		for _, p := range products {
			if p.Code() != "" && p.Code() == code {
				return p
			}
		}
	}
	return nil
}

// Keywords normalizes a message into searchable tokens: lowercase, strip
// punctuation, split on whitespace, drop stopwords and tokens of length 2 or
// less.
func Keywords(message string) []string {
	normalized := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, message)

	var tokens []string
	for _, token := range strings.Fields(normalized) {
		if len([]rune(token)) <= 2 {
			continue
		}
		if _, ok := stopwords[token]; ok {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

func productMatchesToken(p product.Product, token string) bool {
	return strings.Contains(strings.ToLower(p.Name()), token) ||
		strings.Contains(strings.ToLower(p.Description()), token) ||
		strings.Contains(strings.ToLower(p.Code()), token)
}
