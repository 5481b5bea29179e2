// Package interfaces documents the core abstractions used throughout the application.
//
// This package consolidates interface documentation to help code agents understand
// extension points and how to implement new functionality.
//
// # Interface Categories
//
// The application uses several categories of interfaces:
//
// ## Data Access Interfaces
//
//   - CorpusStore: Read-only access to the scripture corpus (internal/compiler/types.go)
//   - SearchStore: Ranked line search (internal/http/stores.go)
//   - RunStore: Compile run history (internal/http/stores.go)
//
// ## Pipeline Interfaces
//
//   - ArtifactSink: Receive compiled artifacts (internal/compiler/types.go)
//   - RunRecorder: Record run outcomes (internal/services/interfaces.go)
//
// ## Background Work Interfaces
//
//   - CompileRunner: Execute a compile run (internal/tasks/compile.go, internal/scheduler/compile.go)
//   - RunHistoryPruner: Delete old run records (internal/tasks/prune_runs.go)
//   - ScheduleInfo: Expose scheduler state to the API (internal/http/compile.go)
//
// # Adding a New Artifact Sink
//
// To publish compiled artifacts somewhere other than the local filesystem
// (e.g. object storage):
//
//  1. Implement ArtifactSink in internal/exporters/
//
//     type S3Exporter struct {
//         bucket string
//         client *s3.Client
//     }
//
//     func (e *S3Exporter) Save(name string, artifact any) error {
//         // Marshal and upload under the run prefix
//     }
//
//     var _ compiler.ArtifactSink = (*S3Exporter)(nil)
//
//  2. Construct it in internal/services/compile_service.go alongside the
//     JSON exporter, or swap it in behind configuration
//
// # Adding a New Background Task
//
// To add a new queued task:
//
//  1. Define the task and its processor in internal/tasks/
//
//     type ReindexTask struct {
//         Source string `json:"source"`
//     }
//
//     func (t ReindexTask) Config() backlite.QueueConfig {
//         return backlite.QueueConfig{Name: "reindex", MaxAttempts: 3}
//     }
//
//     func ReindexProcessor(store SearchIndexer) backlite.QueueProcessor[ReindexTask]
//
//  2. Register the queue in internal/entrypoint/entrypoint.go
//
//     client.Register(tasks.NewReindexQueue(store))
//
//  3. Enqueue from a controller or scheduler
//
//     client.Add(tasks.ReindexTask{Source: "sggs"}).Save()
//
// # Adding a New Database Domain
//
// To add a new data domain (e.g. analytics):
//
//  1. Create sub-package: internal/database/analytics/
//
//  2. Define repository:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. Implement interface methods
//
//  4. Add compile-time check:
//
//     var _ AnalyticsStore = (*Repository)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// This pattern is used throughout the codebase. See checks.go for examples.
package interfaces
