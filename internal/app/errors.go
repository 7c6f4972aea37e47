package app

import "errors"

// Static error definitions for better error handling.
var (
	// ErrUnknownOutputFormat indicates an output format other than yaml or json.
	ErrUnknownOutputFormat = errors.New("unknown output format")
	// ErrNotACollection indicates input data that is neither a list nor a mapping.
	ErrNotACollection = errors.New("input is not a list or a mapping")
	// ErrMissingInput indicates that neither an argument nor a file was given.
	ErrMissingInput = errors.New("no input given")
	// ErrInvalidKeyValue indicates a key=value argument without "=".
	ErrInvalidKeyValue = errors.New("expected key=value")
	// ErrSecretAlreadySet indicates that init-secret would overwrite an existing secret.
	ErrSecretAlreadySet = errors.New("jwt_secret is already set, use --force to replace it")
	// ErrRefreshFailed indicates that a refresh token could not be exchanged.
	ErrRefreshFailed = errors.New("token refresh failed")
	// ErrFileExists indicates that a download target already exists.
	ErrFileExists = errors.New("file already exists, use --overwrite to replace it")
	// ErrUnknownOperation indicates an unsupported text or number operation.
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrUnknownIDKind indicates an unsupported identifier kind.
	ErrUnknownIDKind = errors.New("unknown identifier kind")
	// ErrUnparsableTime indicates a time argument in none of the accepted forms.
	ErrUnparsableTime = errors.New("unparsable time")
	// ErrValidationFailed indicates that a value did not pass a text check.
	ErrValidationFailed = errors.New("validation failed")
)
