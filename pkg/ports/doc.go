/*
Package ports defines the driven-side interfaces of the nuskell engine.

Adapters (in-memory, Redis) implement these contracts so that compiled DSD
systems can be persisted and retrieved without the core knowing about any
particular backend. The package also ships reusable contract tests that
every adapter must pass.
*/
package ports
