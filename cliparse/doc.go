// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8000)
  - DataDir: Directory for the JSON documents (default: data)
  - GeminiAPIKey: Gemini API key (required)
  - GeminiModel: Gemini model name (default: gemini-2.5-flash)
  - AdminPassword: Password for admin login (required)
  - SessionSecret: Secret for session token signing (required)

# CLI Flags

	-p               Server port
	-d               Data directory
	--model          Gemini model name
	--api-key        Gemini API key
	--admin-password Admin password
	--session-secret Session signing secret

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATA_DIR       → -d
	GEMINI_MODEL   → --model
	GEMINI_API_KEY → --api-key
	ADMIN_PASSWORD → --admin-password
	SESSION_SECRET → --session-secret

CLI flags take precedence over environment variables. main loads a .env
file (if present) before parsing, so a local .env can supply the env
side of the fallback.

# Validation

ParseFlags returns an error if required values are missing:

  - GEMINI_API_KEY must be provided
  - ADMIN_PASSWORD must be provided
  - SESSION_SECRET must be provided
*/
package cliparse
