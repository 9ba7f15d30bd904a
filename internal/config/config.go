package config

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DataDir     string
	ImagesDir   string
	OutboxDir   string
	MailFrom    string
	InvoiceFont string
	LogFile     string
	AdminEmails []string
}

// Load charge .env puis lit les variables SHOP_*
func Load() *Config {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé, on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
	return FromEnv()
}

func FromEnv() *Config {
	cfg := &Config{
		DataDir:     getEnv("SHOP_DATA_DIR", "Data"),
		ImagesDir:   getEnv("SHOP_IMAGES_DIR", "Images"),
		OutboxDir:   os.Getenv("SHOP_OUTBOX_DIR"),
		MailFrom:    getEnv("SHOP_MAIL_FROM", "noreply@brandedshop.ua"),
		InvoiceFont: os.Getenv("SHOP_INVOICE_FONT"),
		LogFile:     os.Getenv("SHOP_LOG_FILE"),
		AdminEmails: splitList(os.Getenv("SHOP_ADMIN_EMAILS")),
	}
	cfg.Normalize()
	return cfg
}

// Normalize complète les chemins dérivés (outbox sous le dossier de données)
func (c *Config) Normalize() {
	if c.DataDir == "" {
		c.DataDir = "Data"
	}
	if c.ImagesDir == "" {
		c.ImagesDir = "Images"
	}
	if c.OutboxDir == "" {
		c.OutboxDir = filepath.Join(c.DataDir, "outbox")
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// IsAdmin indique si l'email fait partie de SHOP_ADMIN_EMAILS
func (c *Config) IsAdmin(email string) bool {
	for _, admin := range c.AdminEmails {
		if strings.EqualFold(admin, email) {
			return true
		}
	}
	return false
}

func splitList(raw string) []string {
	var out []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
