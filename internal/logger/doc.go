// Package logger wraps a process-wide zap logger behind context-first helpers.
// Fields attached with WithKV travel in the context and are added to every
// entry logged with that context.
package logger
