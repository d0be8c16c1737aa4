// Command hashpw hashes or verifies a password with the same bcrypt settings as the server.
//
//	hashpw [-cost 10]            print a hash for the password read from stdin
//	hashpw -verify '<hash>'      exit 0 when the password matches the hash
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"autoserv/internal/errors"
	"autoserv/internal/infra/auth"

	"golang.org/x/term"
)

// readPassword is replaced in tests to avoid touching the terminal.
var readPassword = term.ReadPassword

var isTerminal = term.IsTerminal

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "hashpw:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin *os.File, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("hashpw", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cost := fs.Int("cost", 10, "bcrypt cost factor")
	verify := fs.String("verify", "", "hash to verify the password against")
	if err := fs.Parse(args); err != nil {
		return err
	}

	secret, err := readSecret(stdin, stderr)
	if err != nil {
		return err
	}

	hasher := auth.NewBcryptHasherWithCost(*cost)

	if *verify != "" {
		if !hasher.Verify(secret, *verify) {
			return errors.New("password does not match")
		}
		fmt.Fprintln(stdout, "OK")

		return nil
	}

	hash, err := hasher.Hash(secret)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, hash)

	return nil
}

func readSecret(stdin *os.File, prompt io.Writer) (string, error) {
	fd := int(stdin.Fd())
	if isTerminal(fd) {
		fmt.Fprint(prompt, "Password: ")
		pw, err := readPassword(fd)
		fmt.Fprintln(prompt)
		if err != nil {
			return "", errors.Wrap(err, "read password")
		}

		return string(pw), nil
	}

	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", errors.Wrap(err, "read stdin")
	}

	return strings.TrimRight(line, "\r\n"), nil
}
