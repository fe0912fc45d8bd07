/*
Package sessionx issues and verifies the stateless session tokens carried in the
session cookie.

A token is two base64url segments joined by a dot:

	base64url(payload JSON) "." base64url(HMAC-SHA256(secret, encoded payload))

The payload carries uid, email, an optional name, iat and exp (unix seconds).
There is exactly one algorithm and one payload shape; there is no header and no
algorithm negotiation.

# Two runtimes

Tokens are checked from two places that do not share a runtime: request
handlers (NativeVerifier, in-memory HMAC key, synchronous) and the perimeter
gateway that runs before routing (EdgeVerifier, imported key handle,
context-aware). Both accept and reject exactly the same set of tokens and
return identical identities. The conformance tests in this package run the
same property set against both.

# Usage

	cfg := sessionx.Config{Secret: os.Getenv("SESSION_SECRET")}

	issuer, err := sessionx.NewIssuer(cfg, nil)
	if err != nil {
		return err // missing secret is a configuration error
	}
	token, err := issuer.Issue(ctx, sessionx.Identity{ID: "u1", Email: "u1@example.com"})

	verifier, err := sessionx.NewCommonEdge(cfg)
	if id := sessionx.VerifyToken(ctx, verifier, token); id != nil {
		// authenticated
	}

Every verification failure wraps ErrNotAuthenticated. The finer sentinels
(ErrMalformed, ErrInvalidSig, ErrExpired, ErrInvalidClaims) exist for logs and
metrics only and should not be surfaced to clients.
*/
package sessionx
