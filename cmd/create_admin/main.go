// Command create_admin generates the bcrypt hash for the admin credential
// pair and optionally seeds the file store with empty collections.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/vishal1412/PropScan-sub000/internal/config"
	"github.com/vishal1412/PropScan-sub000/internal/store"
	"github.com/vishal1412/PropScan-sub000/internal/util"
)

var collections = []string{"properties", "leads", "testimonials", "resale-properties", "cities"}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <password> [--seed]\n", os.Args[0])
		os.Exit(2)
	}
	password := os.Args[1]

	hashedPassword, err := util.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	fmt.Println("Add the following to your environment or .env file:")
	fmt.Printf("ADMIN_PASSWORD_HASH=%s\n", hashedPassword)

	if len(os.Args) > 2 && os.Args[2] == "--seed" {
		cfg, err := config.Load()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		if cfg.Storage.Driver != config.DriverFile {
			log.Fatalf("--seed only applies to the file storage driver (got %s)", cfg.Storage.Driver)
		}

		fs, err := store.NewFileStore(cfg.Storage.DataDir)
		if err != nil {
			log.Fatalf("Failed to open data directory: %v", err)
		}

		ctx := context.Background()
		for _, name := range collections {
			existing, err := fs.Read(ctx, name)
			if err != nil {
				log.Fatalf("Failed to read collection %s: %v", name, err)
			}
			if existing != nil {
				fmt.Printf("Collection %s already exists, skipping\n", name)
				continue
			}
			if err := fs.Write(ctx, name, []byte("[]")); err != nil {
				log.Fatalf("Failed to seed collection %s: %v", name, err)
			}
			fmt.Printf("Seeded empty collection %s\n", name)
		}
	}
}
