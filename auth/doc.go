// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides bearer tokens and password hashing.

# Tokens

Tokens are HS256 JWTs whose only custom claim is the user id ("id"):

	issuer := auth.NewTokenIssuer(cfg.TokenKey, cfg.TokenTTL)
	token, err := issuer.Issue(userID)
	userID, err := issuer.Verify(token)

Tokens are stateless; nothing is stored server side. With a zero TTL no exp
claim is written and a token stays valid until the signing key is rotated.
Setting TOKEN_TTL adds iat/exp claims and Verify rejects expired tokens.

Verify only accepts HS256. A forged, truncated, expired, or otherwise
unparseable token returns ErrInvalidToken; callers cannot tell them apart.

# Passwords

Passwords are stored as bcrypt hashes:

	hash, err := auth.HashPassword(password)
	ok := auth.CheckPassword(hash, password)

bcrypt refuses passwords longer than 72 bytes (ErrPasswordTooLong).

BurnPasswordCheck performs a comparison against a fixed dummy hash. Sign-in
calls it when the username does not exist so response time does not reveal
which usernames are registered.
*/
package auth
