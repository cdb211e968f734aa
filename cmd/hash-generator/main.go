// Command hash-generator prints bcrypt hashes for passwords, for seeding
// users directly into MongoDB. Passwords come from arguments, or from stdin
// one per line when no arguments are given.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/phrazzld/wtwr-api/internal/service/auth"
	"github.com/spf13/pflag"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "hash-generator: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	flags := pflag.NewFlagSet("hash-generator", pflag.ContinueOnError)
	cost := flags.IntP("cost", "c", bcrypt.DefaultCost, "bcrypt work factor")
	quiet := flags.BoolP("quiet", "q", false, "print hashes only")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *cost < bcrypt.MinCost || *cost > bcrypt.MaxCost {
		return fmt.Errorf("cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	hasher := auth.NewBcryptHasher(*cost)

	emit := func(password string) error {
		hash, err := hasher.Hash(password)
		if err != nil {
			return err
		}
		if *quiet {
			_, err = fmt.Fprintln(stdout, hash)
		} else {
			_, err = fmt.Fprintf(stdout, "Password: %s\nHash: %s\n\n", password, hash)
		}
		return err
	}

	if flags.NArg() > 0 {
		for _, password := range flags.Args() {
			if err := emit(password); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			if err := emit(line); err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}
