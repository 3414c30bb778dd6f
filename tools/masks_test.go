package tools_test

import (
	"strings"
	"testing"

	"torneio/tools"

	"github.com/stretchr/testify/assert"
)

func TestMaskRG(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"", ""},
		{"1", "1"},
		{"12", "12"},
		{"123", "12.3"},
		{"12345", "12.345"},
		{"123456", "12.345.6"},
		{"12345678", "12.345.678"},
		{"123456789", "12.345.678-9"},
		// trunca além de 9 dígitos
		{"1234567890123", "12.345.678-9"},
		// ignora tudo que não é dígito
		{"ab12.345xx678--9", "12.345.678-9"},
		{"   ", ""},
	}

	for _, c := range casos {
		assert.Equal(t, c.esperado, tools.MaskRG(c.entrada), "entrada %q", c.entrada)
	}
}

func TestMaskRG_Propriedades(t *testing.T) {
	const digitos = "987654321"

	for n := 0; n <= len(digitos); n++ {
		entrada := digitos[:n]
		saida := tools.MaskRG(entrada)

		// preserva exatamente os dígitos da entrada
		assert.Equal(t, entrada, tools.OnlyDigits(saida))

		// nunca mais de um hífen, e só com os 9 dígitos completos
		assert.LessOrEqual(t, strings.Count(saida, "-"), 1)
		if n < 9 {
			assert.NotContains(t, saida, "-")
		}

		// idempotente sobre o próprio resultado
		assert.Equal(t, saida, tools.MaskRG(saida))
	}
}

func TestMaskTelefone(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"", ""},
		{"1", "(1"},
		{"11", "(11"},
		{"119", "(11) 9"},
		{"119999", "(11) 9999"},
		{"1199998", "(11) 9999-8"},
		// 10 dígitos: fixo, grupos 4+4
		{"1199998888", "(11) 9999-8888"},
		// 11 dígitos: celular, grupos 5+4
		{"11999998888", "(11) 99999-8888"},
		// trunca além de 11 dígitos
		{"119999988887777", "(11) 99999-8888"},
		// ignora formatação pré-existente
		{"(11) 99999-8888", "(11) 99999-8888"},
		{"11 9999-8888", "(11) 9999-8888"},
	}

	for _, c := range casos {
		assert.Equal(t, c.esperado, tools.MaskTelefone(c.entrada), "entrada %q", c.entrada)
	}
}

func TestMaskTelefone_Agrupamento(t *testing.T) {
	const digitos = "11987654321"

	for n := 0; n <= len(digitos); n++ {
		entrada := digitos[:n]
		saida := tools.MaskTelefone(entrada)

		assert.Equal(t, entrada, tools.OnlyDigits(saida))

		// hífen separa grupos 4+4 até 10 dígitos e 5+4 com 11
		if i := strings.Index(saida, "-"); i >= 0 {
			grupos := strings.SplitN(saida[strings.Index(saida, ") ")+2:], "-", 2)
			if n == 11 {
				assert.Len(t, grupos[0], 5)
			} else {
				assert.Len(t, grupos[0], 4)
			}
			assert.LessOrEqual(t, len(grupos[1]), 4)
		}
	}
}
