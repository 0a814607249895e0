// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// The pipeline in internal/app depends only on these interfaces. Concrete
// implementations live in internal/network (factory), internal/loadflow
// (solver), internal/nad (renderer) and internal/adapters (logging, file
// system).
//
// # Port Interfaces
//
//   - [NetworkFactory]: Produces a network instance
//   - [LoadFlowSolver]: Solves a network in place
//   - [DiagramRenderer]: Draws a solved network to a file
//   - [FileWriter]: Writes a file atomically
//   - [Logger]: Structured logging abstraction
//   - [Recorder]: Pipeline metrics sink
//
// This separation enables:
//   - Testing the pipeline with fake collaborators
//   - Swapping a collaborator without changing the pipeline
package ports
