package models

import "time"

/************************************************
/**** MARK: INSCRICAO STATUS ****/
/************************************************/
const INSCRICAO_STATUS_PENDENTE = "pendente"
const INSCRICAO_STATUS_CONFIRMADA = "confirmada"
const INSCRICAO_STATUS_CANCELADA = "cancelada"

// Inscricao representa uma inscrição no torneio.
// O RG é a chave de negócio: a constraint unique do banco é quem arbitra
// inscrições duplicadas, inclusive em submissões concorrentes.
// Linhas são append-only: nenhum endpoint atualiza ou remove inscrições
// (o campo status existe para ferramentas administrativas fora deste sistema).
type Inscricao struct {
	ID              int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	NomeCompleto    string     `gorm:"column:nome_completo;not null" json:"nome_completo" form:"nome_completo"`
	Idade           int        `gorm:"not null" json:"idade" form:"idade"`
	Telefone        string     `gorm:"default:''" json:"telefone" form:"telefone"`
	RG              string     `gorm:"column:rg;not null;unique" json:"rg" form:"rg"`
	EhMenor         bool       `gorm:"column:eh_menor;not null" json:"eh_menor"`
	NomeResponsavel *string    `gorm:"column:nome_responsavel" json:"nome_responsavel"`
	RGResponsavel   *string    `gorm:"column:rg_responsavel" json:"rg_responsavel"`
	Status          string     `gorm:"not null;default:'pendente'" json:"status"`
	CreatedAt       *time.Time `gorm:"column:data_inscricao" json:"data_inscricao"`
}

func (Inscricao) TableName() string {
	return "inscricoes"
}
