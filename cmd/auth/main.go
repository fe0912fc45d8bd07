package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/aussiebroadwan/goalpost/internal/auth/app"
	"github.com/aussiebroadwan/goalpost/pkg/cryptox"
)

const usage = `usage: auth [command]

Commands:
  (none)          run the session service
  gen-secret      print a fresh 256-bit SESSION_SECRET
  hash-password   read a password from stdin and print its pbkdf2 hash
`

func main() {
	if len(os.Args) > 1 {
		if err := runCommand(os.Args[1], os.Stdin, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		return
	}

	cfg := app.LoadConfig()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}

var errEmptyPassword = errors.New("hash-password: empty password on stdin")

func runCommand(name string, in io.Reader, out io.Writer) error {
	switch name {
	case "gen-secret":
		secret, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, secret)
		return err

	case "hash-password":
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("hash-password: %w", err)
		}
		password := strings.TrimRight(line, "\r\n")
		if password == "" {
			return errEmptyPassword
		}
		hash, err := cryptox.HashPassword(password)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, hash)
		return err

	case "help", "-h", "--help":
		_, err := io.WriteString(out, usage)
		return err

	default:
		return fmt.Errorf("unknown command %q\n\n%s", name, usage)
	}
}
