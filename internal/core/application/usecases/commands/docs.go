// Package commands contains the business operations that modify system
// state. Each command validates the raw client payload in its constructor,
// collecting every field violation rather than stopping at the first, and
// each handler runs its check-then-act sequence inside a single unit of work
// so concurrent writers cannot interleave between the check and the write.
package commands
