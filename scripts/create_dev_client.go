package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/franciscosanchezn/pizzeria-api/internal/database"
	"github.com/franciscosanchezn/pizzeria-api/internal/models"
	"github.com/franciscosanchezn/pizzeria-api/internal/services"
)

func main() {
	// Parse command line flags
	role := flag.String("role", models.RoleAdmin, "Staff role (admin or user)")
	scopes := flag.String("scopes", "read write", "Space separated client scopes")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}

	cfg, err := database.LoadConfig()
	if err != nil {
		log.Fatal("Invalid database configuration: ", err)
	}
	cfg.MaxRetries = 1
	db, err := database.InitDatabase(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	ctx := context.Background()
	staff, err := staffForRole(ctx, services.NewStaffService(db), *role)
	if err != nil {
		log.Fatal("Failed to get staff member for role ", *role, ": ", err)
	}

	client, secret, err := services.NewClientService(db).CreateClient(ctx, staff.ID, services.ClientRegistration{
		Name:   fmt.Sprintf("Development %s Client", *role),
		Domain: "http://localhost",
		Scopes: *scopes,
	})
	if err != nil {
		log.Fatal("Failed to create client: ", err)
	}

	fmt.Printf("✓ Development OAuth client created for role '%s'!\n", *role)
	fmt.Printf("Client ID: %s\n", client.ID)
	fmt.Printf("Client Secret: %s\n", secret)
	fmt.Printf("Staff ID: %d\n", staff.ID)
	fmt.Println("\nUse these credentials for testing:")
	fmt.Printf("curl -X POST http://localhost:8080/api/v1/oauth/token \\\n")
	fmt.Printf("  -d 'grant_type=client_credentials' \\\n")
	fmt.Printf("  -d 'client_id=%s' \\\n", client.ID)
	fmt.Printf("  -d 'client_secret=%s'\n", secret)
}

// staffForRole gets or creates the development staff member with the given role
func staffForRole(ctx context.Context, staffService services.StaffService, role string) (*models.Staff, error) {
	email := fmt.Sprintf("%s@pizza.com", role)

	staff, err := staffService.GetStaffByEmail(ctx, email)
	if err == nil {
		fmt.Printf("Found existing staff member: %s (ID: %d, Role: %s)\n", staff.Email, staff.ID, staff.Role)
		return staff, nil
	}
	if !errors.Is(err, services.ErrStaffNotFound) {
		return nil, err
	}

	staff = &models.Staff{Email: email, Name: fmt.Sprintf("%s User", role), Role: role}
	if err := staffService.CreateStaff(ctx, staff); err != nil {
		return nil, err
	}
	fmt.Printf("Created new staff member: %s (ID: %d, Role: %s)\n", staff.Email, staff.ID, staff.Role)
	return staff, nil
}
