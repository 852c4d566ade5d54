package config

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/viper"
)

// Config regroupe la configuration de l'application (lecture via Viper depuis
// les variables d'environnement et optionnellement un fichier .env).
type Config struct {
	App  AppConfig
	DB   DBConfig
	HTTP HTTPConfig
	Auth AuthConfig
}

// AppConfig configuration générale de l'application.
type AppConfig struct {
	Env  string // dev, production
	Name string
}

// DBConfig configuration PostgreSQL du service.
// Mode sélectionne la connexion: "dev" -> hôte TCP classique, sinon socket unix
// Cloud SQL. Le choix est résolu une seule fois au chargement, pas à chaque requête.
type DBConfig struct {
	Mode           string // "dev" ou "cloud"
	Host           string
	Port           int
	User           string
	Password       string
	DBName         string
	SSLMode        string
	UnixSocketPath string // chemin du socket Cloud SQL (mode cloud)
}

// DSN construit la chaîne de connexion selon le mode résolu.
// En mode cloud, pgx attend le répertoire du socket dans le paramètre host.
func (c DBConfig) DSN() string {
	userInfo := url.UserPassword(c.User, c.Password)
	if c.Mode == "dev" {
		u := &url.URL{
			Scheme:   "postgres",
			User:     userInfo,
			Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
			Path:     "/" + c.DBName,
			RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
		}
		return u.String()
	}
	u := &url.URL{
		Scheme:   "postgres",
		User:     userInfo,
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("host=%s", url.QueryEscape(c.UnixSocketPath)),
	}
	return u.String()
}

// HTTPConfig configuration du serveur HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr renvoie l'adresse d'écoute (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AuthConfig configuration de l'API d'authentification externe.
// ServiceKey est l'identifiant de ce service auprès de l'API (chargé au démarrage).
type AuthConfig struct {
	URL        string // hôte de l'API d'authentification (AUTHURL)
	ServiceKey string // clé de service (SERVICEKEY)
}

// Load lit la configuration depuis les variables d'environnement
// (et optionnellement un fichier .env). Les env vars ont priorité.
// Noms attendus: ENVIRONMENT_MODE, DATABASE_USERNAME, DATABASE_HOST, AUTHURL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Optionnel: fichier .env à la racine
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // on ignore l'erreur si le fichier n'existe pas

	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "ENVIRONMENT_MODE", "dev"),
			Name: getString(v, "APP_NAME", "api-produit"),
		},
		DB: DBConfig{
			Mode:           getString(v, "ENVIRONMENT_MODE", "dev"),
			Host:           getString(v, "DATABASE_HOST", "localhost"),
			Port:           getInt(v, "DATABASE_PORT", 5432),
			User:           getString(v, "DATABASE_USERNAME", "postgres"),
			Password:       getString(v, "DATABASE_PASSWORD", ""),
			DBName:         getString(v, "DATABASE_NAME", "paye-ton-kawa-produit"),
			SSLMode:        getString(v, "DATABASE_SSLMODE", "disable"),
			UnixSocketPath: getString(v, "INSTANCE_UNIX_SOCKET", ""),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Auth: AuthConfig{
			URL:        getString(v, "AUTHURL", ""),
			ServiceKey: getString(v, "SERVICEKEY", ""),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
