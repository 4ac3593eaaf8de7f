// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin session tokens.

# Sessions

Admin sessions are stateless HS256 JWTs, so no session state is kept in
the process:

	mgr := auth.NewManager(cfg.AdminPassword, cfg.SessionSecret)
	token, err := mgr.Login(password)
	err = mgr.Validate(token)

Login compares the password in constant time and issues a token with a
random UUID as the JWT ID, subject "admin", and a 12-hour expiry.

Validate rejects anything malformed, signed with the wrong key or
method, expired, or carrying the wrong subject. All rejections surface
as ErrInvalidToken; Login failures surface as ErrInvalidPassword.

The ledger and reconciler never touch this package — admin gating lives
entirely at the HTTP layer.
*/
package auth
