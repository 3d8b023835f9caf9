// Command token mints a signed access token, typically for the service
// role used by backend callers of the notification endpoint.
package main

import (
	"flag"
	"fmt"
	"job-chat/auth"
	"job-chat/domain"
	"os"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	userID := flag.String("user", "backend", "Subject of the token")
	name := flag.String("name", "Backend", "Display name carried by the token")
	role := flag.String("role", string(domain.RoleService), "candidate, employer, admin or service")
	duration := flag.Duration("ttl", 24*time.Hour, "Token lifetime")
	flag.Parse()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET is not set")
		os.Exit(2)
	}
	issuer := os.Getenv("JWT_ISSUER")
	if issuer == "" {
		issuer = "job-chat"
	}

	tokens := auth.NewTokenManager(secret, issuer, *duration)
	token, err := tokens.GenerateFor(domain.Identity{UserID: *userID, Name: *name, Role: domain.Role(*role)}, *duration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "token generation failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
