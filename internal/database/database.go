package database

import (
	"crypto/x509"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gocql/gocql"

	"cms_back_end/internal/config"
)

// createScyllaCluster crée une configuration de cluster pour le keyspace produits
func createScyllaCluster(cfg config.ScyllaConfig) (*gocql.ClusterConfig, error) {
	cluster := gocql.NewCluster(cfg.Hosts...)
	cluster.Keyspace = cfg.Keyspace
	cluster.Consistency = gocql.Quorum
	cluster.Timeout = cfg.Timeout
	cluster.NumConns = cfg.NumConns

	cluster.MaxWaitSchemaAgreement = 30 * time.Second
	cluster.ReconnectInterval = 1 * time.Second

	if cfg.Username != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: cfg.Username,
			Password: cfg.Password,
		}
	}

	// Configuration SSL si activé
	if cfg.SSLEnabled && cfg.CACertPath != "" {
		caCert, err := os.ReadFile(cfg.CACertPath)
		if err != nil {
			return nil, fmt.Errorf("impossible de lire le certificat CA: %v", err)
		}

		caCertPool := x509.NewCertPool()
		if !caCertPool.AppendCertsFromPEM(caCert) {
			return nil, fmt.Errorf("impossible de parser le certificat CA")
		}
	}

	cluster.PoolConfig.HostSelectionPolicy = gocql.TokenAwareHostPolicy(gocql.RoundRobinHostPolicy())

	return cluster, nil
}

// Connect ouvre la session ScyllaDB pour le keyspace produits.
// Note: Les tables doivent être créées manuellement via scripts/scylladb_init.cql
func Connect(cfg config.ScyllaConfig) (*gocql.Session, error) {
	if cfg.Keyspace == "" {
		return nil, fmt.Errorf("SCYLLA_KEYSPACE non configuré")
	}

	cluster, err := createScyllaCluster(cfg)
	if err != nil {
		return nil, fmt.Errorf("erreur configuration cluster pour %s: %v", cfg.Keyspace, err)
	}

	session, err := cluster.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("erreur création session pour %s: %v", cfg.Keyspace, err)
	}

	log.Printf("✅ Session ScyllaDB ouverte pour keyspace '%s' (utilisateur: %s)",
		cfg.Keyspace, cfg.Username)

	return session, nil
}
