package explorer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/puzpuzpuz/xsync/v3"
)

// ErrUnknownToken is returned when a contract is neither registered nor resolvable.
var ErrUnknownToken = errors.New("unknown token")

// Token describes a token contract. Raw transfer amounts of the token are
// meaningless until divided by 10^Decimals.
type Token struct {
	Contract string `yaml:"contract"`
	Symbol   string `yaml:"symbol"`
	Decimals int32  `yaml:"decimals"`
}

// TokenResolver reads token metadata from the chain itself.
type TokenResolver interface {
	ResolveToken(ctx context.Context, contract string) (Token, error)
}

// TokenRegistry maps contract addresses to their Token. Lookups first hit the
// in-memory registry, then the optional resolver, whose answers are cached.
// Contract addresses are compared case-insensitively.
type TokenRegistry struct {
	tokens   *xsync.MapOf[string, Token]
	resolver TokenResolver
}

// NewTokenRegistry returns a registry holding tokens. resolver may be nil, in
// which case only registered tokens are known.
func NewTokenRegistry(resolver TokenResolver, tokens ...Token) *TokenRegistry {
	r := &TokenRegistry{
		tokens:   xsync.NewMapOf[string, Token](),
		resolver: resolver,
	}
	r.Register(tokens...)

	return r
}

func tokenKey(contract string) string {
	return strings.ToLower(strings.TrimSpace(contract))
}

// Register adds or replaces tokens.
func (r *TokenRegistry) Register(tokens ...Token) {
	for _, token := range tokens {
		r.tokens.Store(tokenKey(token.Contract), token)
	}
}

// Lookup returns the Token of contract.
func (r *TokenRegistry) Lookup(ctx context.Context, contract string) (Token, error) {
	key := tokenKey(contract)
	if token, ok := r.tokens.Load(key); ok {
		return token, nil
	}

	if r.resolver == nil {
		return Token{}, fmt.Errorf("%w: %s", ErrUnknownToken, contract)
	}

	token, err := r.resolver.ResolveToken(ctx, contract)
	if err != nil {
		return Token{}, err
	}

	token, _ = r.tokens.LoadOrStore(key, token)
	return token, nil
}

// Decimals returns the declared decimal precision of contract.
func (r *TokenRegistry) Decimals(ctx context.Context, contract string) (int32, error) {
	token, err := r.Lookup(ctx, contract)
	if err != nil {
		return 0, err
	}

	return token.Decimals, nil
}

// Len returns the number of known tokens.
func (r *TokenRegistry) Len() int {
	return r.tokens.Size()
}
