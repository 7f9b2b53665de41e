// Command boardauth-secrets generates the board password, its hash, an API
// key and AUTH_SECRET, and prints them as environment assignments.
//
//	boardauth-secrets [-cost 12] [-algo bcrypt|argon2id] [-password existing]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Printf("boardauth-secrets: %v", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("boardauth-secrets", flag.ContinueOnError)
	cost := fs.Int("cost", 12, "bcrypt cost")
	algo := fs.String("algo", algoBcrypt, "hash algorithm: bcrypt or argon2id")
	existing := fs.String("password", "", "hash this password instead of generating one")
	if err := fs.Parse(args); err != nil {
		return err
	}

	creds, err := generate(options{
		Algorithm: *algo,
		Cost:      *cost,
		Password:  *existing,
	})
	if err != nil {
		return err
	}

	rule := strings.Repeat("=", 60)
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "BOARD AUTH CREDENTIALS")
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out)
	if *existing == "" {
		fmt.Fprintln(out, "Board password (store it somewhere safe):")
		fmt.Fprintf(out, "   %s\n\n", creds.Password)
	}
	fmt.Fprintln(out, "API key (for agent access):")
	fmt.Fprintf(out, "   %s\n\n", creds.APIKey)
	fmt.Fprintln(out, "Environment:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "BOARD_PASSWORD_HASH=%s\n", creds.PasswordHash)
	fmt.Fprintf(out, "BOARD_API_KEY=%s\n", creds.APIKey)
	fmt.Fprintf(out, "AUTH_SECRET=%s\n", creds.AuthSecret)
	fmt.Fprintln(out)
	fmt.Fprintln(out, rule)
	return nil
}
