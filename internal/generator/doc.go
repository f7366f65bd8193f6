// Package generator scaffolds new microservices into the project workspace.
//
// The generator is an agent: it renders a runnable HTTP service (main.go,
// test stub, go.mod, Dockerfile) from embedded templates, registers the
// service in the docker-compose file, and records its actions in the ledger.
// A file lock on the project directory keeps concurrent generations from
// corrupting the compose file.
package generator
