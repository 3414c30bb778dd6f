package tools

import (
	"fmt"

	"torneio/models"

	"github.com/xuri/excelize/v2"
)

var colunasPlanilha = []string{
	"ID", "Nome Completo", "Idade", "Telefone", "RG",
	"Menor de 18", "Nome do Responsável", "RG do Responsável",
	"Status", "Data da Inscrição",
}

// GerarPlanilhaInscritos monta a planilha xlsx com todas as inscrições,
// uma linha por inscrito, na ordem recebida.
func GerarPlanilhaInscritos(inscricoes []models.Inscricao) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Inscritos"
	f.SetSheetName("Sheet1", sheet)

	for i, titulo := range colunasPlanilha {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, titulo); err != nil {
			return nil, err
		}
	}

	for i, insc := range inscricoes {
		ehMenor := "Não"
		if insc.EhMenor {
			ehMenor = "Sim"
		}
		nomeResp := ""
		if insc.NomeResponsavel != nil {
			nomeResp = *insc.NomeResponsavel
		}
		rgResp := ""
		if insc.RGResponsavel != nil {
			rgResp = *insc.RGResponsavel
		}
		dataInscricao := ""
		if insc.CreatedAt != nil {
			dataInscricao = insc.CreatedAt.Format("02/01/2006 15:04")
		}

		valores := []any{
			insc.ID, insc.NomeCompleto, insc.Idade, insc.Telefone, insc.RG,
			ehMenor, nomeResp, rgResp, insc.Status, dataInscricao,
		}
		for j, v := range valores {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar planilha: %w", err)
	}
	return buf.Bytes(), nil
}
