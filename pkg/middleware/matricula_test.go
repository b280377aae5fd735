package middleware_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atendezap/atendezap/pkg/middleware"
)

func TestNormalizeMatricula(t *testing.T) {
	cases := map[string]string{
		"12345678900":      "12345678900",
		"123.456.789-00":   "12345678900",
		"  123 456 789  ":  "123456789",
		"":                 "",
		"sem-digitos":      "",
		"matricula: 42":    "42",
	}
	for input, expected := range cases {
		assert.Equal(t, expected, middleware.NormalizeMatricula(input), "input %q", input)
	}
}
