package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	dbpkg "torneio/db"
	"torneio/models"
	"torneio/tools"

	"github.com/gin-gonic/gin"
)

type InscricaoPayload struct {
	NomeCompleto    string `json:"nome_completo" form:"nome_completo"`
	Idade           int    `json:"idade" form:"idade"`
	Telefone        string `json:"telefone" form:"telefone"`
	RG              string `json:"rg" form:"rg"`
	NomeResponsavel string `json:"nome_responsavel" form:"nome_responsavel"`
	RGResponsavel   string `json:"rg_responsavel" form:"rg_responsavel"`
}

func CheckRGExists(c *gin.Context, rg string) bool {
	db := dbpkg.DBInstance(c)
	if db == nil {
		return false
	}

	var insc models.Inscricao
	if err := db.Where("rg = ?", rg).First(&insc).Error; err != nil {
		return false
	}
	return true
}

// POST /api/inscrever
//
// Valida o payload na ordem: nome, idade, RG, duplicidade, responsável.
// Nenhuma escrita acontece antes de toda a validação passar. Em caso de
// sucesso a resposta é o comprovante em PDF para download.
func Inscrever(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var payload InscricaoPayload
	if err := c.Bind(&payload); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	payload.NomeCompleto = strings.TrimSpace(payload.NomeCompleto)
	if payload.NomeCompleto == "" {
		RespondError(c, "Nome completo é obrigatório", http.StatusBadRequest)
		return
	}
	if !tools.ValidateIdade(payload.Idade) {
		RespondError(c, "Idade inválida", http.StatusBadRequest)
		return
	}
	if !tools.ValidateRG(payload.RG) {
		RespondError(c, "RG inválido", http.StatusBadRequest)
		return
	}

	// RG e telefone são persistidos já mascarados: é a forma canônica
	// usada na comparação de duplicidade e no comprovante.
	rg := tools.MaskRG(payload.RG)
	if CheckRGExists(c, rg) {
		RespondError(c, "Este RG já foi inscrito", http.StatusConflict)
		return
	}

	insc := models.Inscricao{
		NomeCompleto: payload.NomeCompleto,
		Idade:        payload.Idade,
		Telefone:     tools.MaskTelefone(payload.Telefone),
		RG:           rg,
		EhMenor:      payload.Idade < 18,
		Status:       models.INSCRICAO_STATUS_PENDENTE,
	}

	if insc.EhMenor {
		nomeResp := strings.TrimSpace(payload.NomeResponsavel)
		if nomeResp == "" {
			RespondError(c, "Nome do responsável é obrigatório", http.StatusBadRequest)
			return
		}
		if !tools.ValidateRG(payload.RGResponsavel) {
			RespondError(c, "RG do responsável inválido", http.StatusBadRequest)
			return
		}
		rgResp := tools.MaskRG(payload.RGResponsavel)
		insc.NomeResponsavel = &nomeResp
		insc.RGResponsavel = &rgResp
	}

	if err := db.Create(&insc).Error; err != nil {
		// A constraint unique do banco arbitra duas submissões concorrentes
		// com o mesmo RG: a segunda falha aqui, não no pré-check acima.
		if isUniqueViolation(err) {
			RespondError(c, "Este RG já foi inscrito", http.StatusConflict)
			return
		}
		log.Printf("inscrição: erro ao salvar: %v", err)
		RespondError(c, "Erro ao salvar inscrição", http.StatusInternalServerError)
		return
	}

	pdf, err := tools.GerarComprovantePDF(insc, conf.Torneio.NomeEvento)
	if err != nil {
		// A inscrição já está salva e permanece salva; só o comprovante falhou.
		log.Printf("inscrição %d: erro ao gerar comprovante: %v", insc.ID, err)
		RespondError(c, "Inscrição salva, mas houve erro ao gerar o comprovante", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("comprovante_inscricao_%d.pdf", insc.ID)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusCreated, "application/pdf", pdf)
}

// GET /api/inscritos
func ListarInscritos(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var inscricoes []models.Inscricao
	if err := db.Order("id asc").Find(&inscricoes).Error; err != nil {
		log.Printf("inscritos: erro ao listar: %v", err)
		RespondError(c, "Erro ao listar inscrições", http.StatusInternalServerError)
		return
	}
	if inscricoes == nil {
		inscricoes = []models.Inscricao{}
	}
	RespondSuccess(c, inscricoes)
}

// GET /api/estatisticas
func ObterEstatisticas(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var total, menores int
	if err := db.Model(&models.Inscricao{}).Count(&total).Error; err != nil {
		log.Printf("estatísticas: erro ao contar: %v", err)
		RespondError(c, "Erro ao obter estatísticas", http.StatusInternalServerError)
		return
	}
	if err := db.Model(&models.Inscricao{}).Where("eh_menor = ?", true).Count(&menores).Error; err != nil {
		log.Printf("estatísticas: erro ao contar menores: %v", err)
		RespondError(c, "Erro ao obter estatísticas", http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, gin.H{
		"total_inscritos": total,
		"menores_de_18":   menores,
		"maiores_de_18":   total - menores,
	})
}

// GET /api/exportar-excel
func ExportarExcel(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var inscricoes []models.Inscricao
	if err := db.Order("id asc").Find(&inscricoes).Error; err != nil {
		log.Printf("exportar: erro ao listar: %v", err)
		RespondError(c, "Erro ao exportar inscrições", http.StatusInternalServerError)
		return
	}

	planilha, err := tools.GerarPlanilhaInscritos(inscricoes)
	if err != nil {
		log.Printf("exportar: erro ao gerar planilha: %v", err)
		RespondError(c, "Erro ao gerar planilha", http.StatusInternalServerError)
		return
	}

	filename := conf.Torneio.ArquivoPlanilha
	if filename == "" {
		filename = "inscritos_torneio.xlsx"
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", planilha)
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // sqlite3
		strings.Contains(msg, "duplicate key value") // postgres
}
