package tools_test

import (
	"bytes"
	"testing"
	"time"

	"torneio/models"
	"torneio/tools"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestGerarPlanilhaInscritos(t *testing.T) {
	agora := time.Now()
	nomeResp := "Maria da Silva"
	rgResp := "98.765.432-1"

	inscricoes := []models.Inscricao{
		{
			ID: 1, NomeCompleto: "João da Silva", Idade: 25,
			Telefone: "(11) 99999-8888", RG: "12.345.678-9",
			Status: models.INSCRICAO_STATUS_PENDENTE, CreatedAt: &agora,
		},
		{
			ID: 2, NomeCompleto: "Pedro da Silva", Idade: 12,
			RG: "11.222.333-4", EhMenor: true,
			NomeResponsavel: &nomeResp, RGResponsavel: &rgResp,
			Status: models.INSCRICAO_STATUS_PENDENTE,
		},
	}

	b, err := tools.GerarPlanilhaInscritos(inscricoes)
	require.NoError(t, err)
	require.NotEmpty(t, b)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	const sheet = "Inscritos"

	valor := func(cell string) string {
		v, err := f.GetCellValue(sheet, cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "ID", valor("A1"))
	assert.Equal(t, "Nome Completo", valor("B1"))

	assert.Equal(t, "João da Silva", valor("B2"))
	assert.Equal(t, "Não", valor("F2"))
	assert.Equal(t, "", valor("G2"))

	assert.Equal(t, "Pedro da Silva", valor("B3"))
	assert.Equal(t, "Sim", valor("F3"))
	assert.Equal(t, "Maria da Silva", valor("G3"))
	assert.Equal(t, "98.765.432-1", valor("H3"))
}

func TestGerarPlanilhaInscritos_Vazia(t *testing.T) {
	b, err := tools.GerarPlanilhaInscritos(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue("Inscritos", "A1")
	require.NoError(t, err)
	assert.Equal(t, "ID", v)
}
