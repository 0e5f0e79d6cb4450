// Command token mints an admin bearer token for WRITE_AUTH=token deployments.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"time"

	"folio/internal/auth"
	"folio/internal/env"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	subject := flag.String("sub", "admin", "token subject")
	ttl := flag.Duration("ttl", 30*24*time.Hour, "token lifetime")
	flag.Parse()

	secret := env.GetString("AUTH_TOKEN_SECRET", "")
	if secret == "" {
		log.Fatal("AUTH_TOKEN_SECRET is not set")
	}

	authenticator := auth.NewJWTAuthenticator(secret, "folio", "folio")
	token, err := authenticator.GenerateToken(*subject, auth.RoleAdmin, *ttl)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(token)
}
