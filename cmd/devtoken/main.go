// Command devtoken mints a session token signed with JWT_SECRET so the API
// can be exercised locally without the external auth provider.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/SscSPs/bizbooks/internal/platform/config"
	"github.com/SscSPs/bizbooks/internal/utils"
	"github.com/google/uuid"
)

func main() {
	userID := flag.String("user", "", "user id to put in the token subject (random when empty)")
	email := flag.String("email", "", "optional email claim")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}

	if *userID == "" {
		*userID = uuid.NewString()
	}

	token, err := utils.GenerateJWT(*userID, *email, cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer)
	if err != nil {
		fmt.Fprintln(os.Stderr, "sign token:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
