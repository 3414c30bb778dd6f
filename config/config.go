package config

import (
	"encoding/json"
	"log"
	"os"
)

type Configuration struct {
	ApiPort string `json:"api_port"`
	LogPath string `json:"log_path"`

	Database string `json:"database"` // "sqlite3" ou "postgres"
	DbFile   string `json:"db_file"`  // caminho do arquivo sqlite3
	DbHost   string `json:"db_host"`
	DbPort   string `json:"db_port"`
	DbUser   string `json:"db_user"`
	DbName   string `json:"db_name"`
	DbPass   string `json:"db_pass"`

	Torneio struct {
		NomeEvento      string `json:"nome_evento"`
		ArquivoPlanilha string `json:"arquivo_planilha"`
	} `json:"torneio"`
}

func Get(path string) Configuration {
	var c Configuration

	b, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Fatal(err)
		}
		log.Printf("Arquivo de configuração %s não encontrado, usando defaults", path)
	} else if err := json.Unmarshal(b, &c); err != nil {
		log.Fatal(err)
	}

	// defaults (pra evitar nil/zero chato)
	if c.ApiPort == "" {
		c.ApiPort = "8080"
	}
	if c.LogPath == "" {
		c.LogPath = "logs/server.log"
	}
	if c.Database == "" {
		c.Database = "sqlite3"
	}
	if c.DbFile == "" {
		c.DbFile = "db/torneio_basquete.db"
	}
	if c.Torneio.NomeEvento == "" {
		c.Torneio.NomeEvento = "Torneio de Basquete"
	}
	if c.Torneio.ArquivoPlanilha == "" {
		c.Torneio.ArquivoPlanilha = "inscritos_torneio.xlsx"
	}

	return c
}
