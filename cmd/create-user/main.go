package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"warehouse-inventory/internal/db"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	username := flag.String("username", "", "username for the new user")
	password := flag.String("password", "", "password for the new user")
	role := flag.String("role", "staff", "role for the new user (staff or admin)")
	flag.Parse()

	if *username == "" || *password == "" {
		fmt.Println("Usage: create-user -username <name> -password <pass> [-role admin]")
		os.Exit(1)
	}

	_ = godotenv.Load()
	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		fmt.Printf("Failed to connect to DB: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Printf("Failed to hash password: %v\n", err)
		os.Exit(1)
	}

	var id int
	err = pool.QueryRow(ctx, `
		INSERT INTO users (username, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id
	`, *username, string(hash), *role).Scan(&id)
	if err != nil {
		fmt.Printf("Failed to create user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Created user %s (id=%d, role=%s)\n", *username, id, *role)
}
