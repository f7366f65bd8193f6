// Command noa is the CLI for the platform: it runs the stage pipeline over
// payloads, scaffolds new microservices through agents, and inspects the
// run ledger and environment health.
package main
