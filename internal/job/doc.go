// Package job defines the unit of work flowing through the pipeline.
//
// Each Job owns a uniquely named workspace directory created at construction
// and an ordered trace of completed stage names. Recording a step both
// appends to the in-memory trace and writes a marker file into the workspace,
// giving external harnesses on-disk evidence of execution independent of the
// returned value. Workspaces are never deleted by the Job itself; cleanup
// belongs to the caller.
package job
