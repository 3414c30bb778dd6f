package tools

import (
	"strings"
	"unicode"
)

// OnlyDigits mantém apenas os dígitos de uma string.
func OnlyDigits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MaskRG formata um RG progressivamente no padrão NN.NNN.NNN-N.
// Remove tudo que não é dígito, trunca em 9 dígitos e insere os separadores
// conforme os dígitos existem ("123" -> "12.3"). Idempotente: aplicar sobre
// um valor já mascarado produz o mesmo resultado.
func MaskRG(raw string) string {
	digits := OnlyDigits(raw)
	if len(digits) > 9 {
		digits = digits[:9]
	}

	var b strings.Builder
	for i := 0; i < len(digits); i++ {
		switch i {
		case 2, 5:
			b.WriteByte('.')
		case 8:
			b.WriteByte('-')
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}

// MaskTelefone formata um telefone BR progressivamente: DDD entre parênteses
// e o restante agrupado 4+4 (fixo, até 10 dígitos) ou 5+4 (celular, 11).
// O hífen só aparece quando o segundo grupo tem ao menos um dígito.
func MaskTelefone(raw string) string {
	digits := OnlyDigits(raw)
	if len(digits) > 11 {
		digits = digits[:11]
	}
	if digits == "" {
		return ""
	}
	if len(digits) <= 2 {
		return "(" + digits
	}

	rest := digits[2:]
	split := 4
	if len(digits) == 11 {
		split = 5
	}

	out := "(" + digits[:2] + ") "
	if len(rest) <= split {
		return out + rest
	}
	return out + rest[:split] + "-" + rest[split:]
}
