package tools

import (
	"bytes"
	"fmt"

	"torneio/models"

	"github.com/jung-kurt/gofpdf"
)

// GerarComprovantePDF monta o comprovante de inscrição em página única:
// dados do participante, responsável quando menor, e a declaração de
// confirmação. Layout determinístico, sem estado externo.
func GerarComprovantePDF(insc models.Inscricao, nomeEvento string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, tr(nomeEvento), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 14)
	pdf.CellFormat(0, 10, tr("Comprovante de Inscrição"), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	linha := func(rotulo, valor string) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(55, 8, tr(rotulo), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 8, tr(valor), "", 1, "L", false, 0, "")
	}

	linha("Número da inscrição:", fmt.Sprintf("%d", insc.ID))
	linha("Nome completo:", insc.NomeCompleto)
	linha("Idade:", fmt.Sprintf("%d anos", insc.Idade))
	if insc.Telefone != "" {
		linha("Telefone:", insc.Telefone)
	}
	linha("RG:", insc.RG)
	linha("Status:", insc.Status)
	if insc.CreatedAt != nil {
		linha("Data da inscrição:", insc.CreatedAt.Format("02/01/2006 15:04"))
	}

	if insc.EhMenor {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, tr("Responsável legal"), "", 1, "L", false, 0, "")
		if insc.NomeResponsavel != nil {
			linha("Nome:", *insc.NomeResponsavel)
		}
		if insc.RGResponsavel != nil {
			linha("RG:", *insc.RGResponsavel)
		}
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, tr("Inscrição registrada com sucesso. Apresente este "+
		"comprovante no dia do evento junto com um documento com foto."), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
