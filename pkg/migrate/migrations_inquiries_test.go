package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mayarosales/cakecafe-backend/pkg/migrate"
)

func TestInquiriesMigrationContainsConstraints(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_inquiries.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no inquiries migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE IF NOT EXISTS inquiries",
		"CHECK (type IN ('ORDER', 'CUSTOM_ORDER', 'GENERAL'))",
		"CHECK (status IN ('OPEN', 'RESOLVED'))",
		"CHECK (payment_status IN ('PENDING', 'PAID', 'CANCELED'))",
		"CHECK (amount_cents IS NULL OR amount_cents >= 0)",
		"DROP TABLE IF EXISTS inquiries",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestProductsMigrationContainsConstraints(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_products.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no products migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE IF NOT EXISTS products",
		"CHECK (price_cents >= 0)",
		"CHECK (category IN ('Cakes', 'Cupcakes', 'Custom Made'))",
		"DROP TABLE IF EXISTS products",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestMigrationsDirValidates(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("validate migrations dir: %v", err)
	}
}
