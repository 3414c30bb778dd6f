package tools

// ValidateRG valida o formato básico de um RG: ao menos 7 dígitos,
// ignorando pontuação.
func ValidateRG(rg string) bool {
	return len(OnlyDigits(rg)) >= 7
}

// ValidateIdade valida a faixa de idade aceita pelo torneio (inclusiva).
func ValidateIdade(idade int) bool {
	return idade >= 5 && idade <= 100
}
