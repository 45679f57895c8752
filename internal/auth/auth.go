// Package auth resolves the Authorization token before any request is made.
package auth

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// EnvToken is the environment variable consulted for the token.
const EnvToken = "LEVA_AUTH_TOKEN"

// ErrTokenMissing is returned when no source produced a token.
var ErrTokenMissing = errors.New("auth: token missing")

// Provider supplies the auth token.
type Provider interface {
	Token(ctx context.Context) (string, error)
}

// Static always returns the same token; empty means "not configured".
type Static string

// Token implements Provider.
func (s Static) Token(context.Context) (string, error) {
	return strings.TrimSpace(string(s)), nil
}

// Env reads the token from an environment variable.
type Env string

// Token implements Provider.
func (e Env) Token(context.Context) (string, error) {
	return strings.TrimSpace(os.Getenv(string(e))), nil
}

// Chain tries providers in order and returns the first non-empty token.
type Chain []Provider

// Token implements Provider.
func (c Chain) Token(ctx context.Context) (string, error) {
	for _, p := range c {
		tok, err := p.Token(ctx)
		if err != nil {
			return "", err
		}
		if tok != "" {
			return tok, nil
		}
	}
	return "", ErrTokenMissing
}

// Prompt asks the operator for the token, once.
//
// When In is a terminal the input is not echoed.
type Prompt struct {
	In  *os.File
	Out io.Writer

	asked bool
	token string
}

// NewPrompt returns a Prompt on stdin/stderr.
func NewPrompt() *Prompt {
	return &Prompt{In: os.Stdin, Out: os.Stderr}
}

// Token implements Provider.
func (p *Prompt) Token(ctx context.Context) (string, error) {
	if p.asked {
		return p.token, nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p.asked = true

	fmt.Fprint(p.Out, "Enter your authentication token: ")

	fd := int(p.In.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(p.Out)
		if err != nil {
			return "", fmt.Errorf("auth: cannot read token: %w", err)
		}
		p.token = strings.TrimSpace(string(raw))
		return p.token, nil
	}

	tok, err := readLine(p.In)
	if err != nil {
		return "", err
	}
	p.token = tok
	return p.token, nil
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("auth: cannot read token: %w", err)
	}
	return strings.TrimSpace(line), nil
}
