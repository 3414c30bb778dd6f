package tools_test

import (
	"bytes"
	"testing"
	"time"

	"torneio/models"
	"torneio/tools"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGerarComprovantePDF_Adulto(t *testing.T) {
	agora := time.Now()
	insc := models.Inscricao{
		ID:           1,
		NomeCompleto: "João da Silva",
		Idade:        25,
		Telefone:     "(11) 99999-8888",
		RG:           "12.345.678-9",
		Status:       models.INSCRICAO_STATUS_PENDENTE,
		CreatedAt:    &agora,
	}

	pdf, err := tools.GerarComprovantePDF(insc, "Torneio de Basquete")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")), "deve começar com o header PDF")
	assert.Greater(t, len(pdf), 500)
}

func TestGerarComprovantePDF_Menor(t *testing.T) {
	nomeResp := "Maria da Silva"
	rgResp := "98.765.432-1"
	insc := models.Inscricao{
		ID:              2,
		NomeCompleto:    "Pedro da Silva",
		Idade:           12,
		RG:              "11.222.333-4",
		EhMenor:         true,
		NomeResponsavel: &nomeResp,
		RGResponsavel:   &rgResp,
		Status:          models.INSCRICAO_STATUS_PENDENTE,
	}

	pdf, err := tools.GerarComprovantePDF(insc, "Torneio de Basquete")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))

	// layout determinístico: mesma inscrição, mesmo documento
	pdf2, err := tools.GerarComprovantePDF(insc, "Torneio de Basquete")
	require.NoError(t, err)
	assert.Equal(t, len(pdf), len(pdf2))
}
