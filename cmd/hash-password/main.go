package main

import (
	"fmt"
	"syscall"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	"github.com/AlfonsoMarC/RogalikLessons/internal/config"
)

// hash-password generates a bcrypt hash for the ADMIN_PASSWORD_HASH
// environment variable, so the plaintext admin password never has to live
// in the server's environment.
func main() {
	cfg := config.Load()

	fmt.Println("=== Generate Admin Password Hash ===")

	fmt.Print("Enter Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nError reading password")
		return
	}
	fmt.Println() // Newline after password input

	if len(bytePassword) < 6 {
		fmt.Println("Error: Password must be at least 6 characters")
		return
	}

	hash, err := bcrypt.GenerateFromPassword(bytePassword, cfg.BcryptCost)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("\nADMIN_PASSWORD_HASH=%s\n", string(hash))
}
