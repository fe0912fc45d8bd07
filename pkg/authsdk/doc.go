/*
Package authsdk provides a client SDK for the goalpost authentication service.

# Overview

The service issues stateless session tokens in an HttpOnly cookie. The SDK
wraps the JSON endpoints and keeps the cookie for you:

  - SDKClient: unauthenticated calls (signup, login, health)
  - Session: calls that carry the session cookie

Create a client and start a session:

	client := authsdk.NewSDKClient("https://auth.example.com")

	session, err := client.Signup(ctx, authsdk.SignupRequest{
		Email:    "alice@example.com",
		Password: "correct horse battery",
		Name:     "Alice",
	})

	// or, for an existing account
	session, err = client.Login(ctx, "alice@example.com", "correct horse battery")

Use the session:

	me, err := session.Whoami(ctx)
	me, err = session.UpdateName(ctx, "Alice Liddell")
	err = session.Logout(ctx)

# Token Lifetime

Tokens are valid for the service's SESSION_TTL (14 days by default) and are
not refreshed automatically. A profile update reissues the token, and the
Session picks up the new cookie transparently. Logout clears the cookie but
the service keeps no revocation list, so a copied token remains valid until
it expires.

# Shared Types

The request and response types in this package are also used by the
service's HTTP handlers, so validation rules are identical on both sides:

	if errs := req.Validate(); errs != nil {
		for field, reason := range errs {
			fmt.Printf("%s: %s\n", field, reason)
		}
	}

# Error Handling

Every non-2xx response is returned as *APIError. The predefined values can
be matched with errors.Is:

	_, err := client.Login(ctx, email, password)
	if errors.Is(err, authsdk.ErrInvalidCredentials) {
		// wrong email or password
	}

# Thread Safety

Sessions are safe for concurrent use. The token is guarded by a read/write
lock and replaced atomically when the service sets a new cookie.
*/
package authsdk
