package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// MinioConfig regroupe les paramètres du stockage objet (S3-compatible)
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// ScyllaConfig regroupe les paramètres de la table produits
type ScyllaConfig struct {
	Hosts      []string
	Keyspace   string
	Username   string
	Password   string
	SSLEnabled bool
	CACertPath string
	Timeout    time.Duration
	NumConns   int
}

// Config est passée explicitement aux constructeurs — pas de clients globaux
type Config struct {
	Port   string
	Minio  MinioConfig
	Scylla ScyllaConfig
}

func Load() *Config {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	return &Config{
		Port: port,
		Minio: MinioConfig{
			Endpoint:  os.Getenv("MINIO_ENDPOINT"),
			AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
			SecretKey: os.Getenv("MINIO_SECRET_KEY"),
			Bucket:    os.Getenv("MINIO_BUCKET"),
			UseSSL:    os.Getenv("MINIO_USE_SSL") == "true",
		},
		Scylla: ScyllaConfig{
			Hosts:      strings.Split(os.Getenv("SCYLLA_HOSTS"), ","),
			Keyspace:   os.Getenv("SCYLLA_KEYSPACE"),
			Username:   os.Getenv("SCYLLA_ROLE"),
			Password:   os.Getenv("SCYLLA_PASSWORD"),
			SSLEnabled: strings.ToLower(os.Getenv("SCYLLA_SSL_ENABLED")) == "true",
			CACertPath: os.Getenv("SCYLLA_SSL_CA_PATH"),
			Timeout:    5 * time.Second,
			NumConns:   20,
		},
	}
}
